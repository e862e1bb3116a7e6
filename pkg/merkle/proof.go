package merkle

import "fmt"

// BuildProof returns the sibling steps needed to rebuild the root of level
// from the digest at index.
//
// The walk mirrors ReduceLevel exactly. At every level the chunk holding the
// target is found from the live index, and the index is halved (floor) before
// moving up, including across an orphan carry. An orphan on the path emits no
// step for that level.
func BuildProof(h Hasher, level []Digest, index int) ([]ProofStep, error) {
	if index < 0 || index >= len(level) {
		return nil, fmt.Errorf("%w: index %d, tree has %d leaves", ErrIndexOutOfRange, index, len(level))
	}

	steps := make([]ProofStep, 0)
	for len(level) > 1 {
		prev := saturatingSub(index, 1)
		for c := 0; c+1 < len(level); c += 2 {
			if c == index {
				steps = append(steps, ProofStep{Sibling: level[c+1], Side: SideRight})
				break
			}
			if c == prev {
				steps = append(steps, ProofStep{Sibling: level[c], Side: SideLeft})
				break
			}
		}

		level = ReduceLevel(h, level)
		index /= 2
	}
	return steps, nil
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
