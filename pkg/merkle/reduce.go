package merkle

// HashLeaves hashes every raw leaf to produce level 0 of the tree.
func HashLeaves(h Hasher, leaves [][]byte) ([]Digest, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}

	level := make([]Digest, len(leaves))
	for i, leaf := range leaves {
		level[i] = h.Hash(leaf)
	}
	return level, nil
}

// ReduceLevel applies the pairwise-reduction rule once.
//
// Consecutive pairs are merged left to right as H(left || right). When the
// level has an odd length the trailing digest is carried into the next level
// unchanged; it is never duplicated or merged with itself.
func ReduceLevel(h Hasher, level []Digest) []Digest {
	next := make([]Digest, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 == len(level) {
			next = append(next, level[i])
			continue
		}
		next = append(next, Merge(h, level[i], level[i+1]))
	}
	return next
}

// ComputeRoot reduces level until a single digest remains and returns it.
func ComputeRoot(h Hasher, level []Digest) (Digest, error) {
	if len(level) == 0 {
		return Digest{}, ErrEmptyTree
	}

	for len(level) > 1 {
		level = ReduceLevel(h, level)
	}
	return level[0], nil
}

// buildLevels returns every level from the leaf digests (levels[0]) to the
// root (levels[len-1]).
func buildLevels(h Hasher, level []Digest) [][]Digest {
	levels := [][]Digest{level}
	for len(level) > 1 {
		level = ReduceLevel(h, level)
		levels = append(levels, level)
	}
	return levels
}
