package merkle

import "fmt"

// NewMerkleTree creates a tree over leaves using Keccak-256.
// Leaves are copied, so later changes to the caller's slices do not affect the tree.
func NewMerkleTree(leaves [][]byte) (*MerkleTree, error) {
	return NewMerkleTreeWithHasher(leaves, DefaultHasher)
}

// NewMerkleTreeWithHasher creates a tree over leaves using h.
func NewMerkleTreeWithHasher(leaves [][]byte, h Hasher) (*MerkleTree, error) {
	if len(leaves) == 0 {
		return nil, ErrEmptyTree
	}
	if h == nil {
		return nil, fmt.Errorf("hasher cannot be nil")
	}

	copied := make([][]byte, len(leaves))
	for i, leaf := range leaves {
		copied[i] = append([]byte{}, leaf...)
	}

	return &MerkleTree{
		leaves: copied,
		hasher: h,
	}, nil
}

// Len returns the number of leaves in the tree.
func (mt *MerkleTree) Len() int {
	return len(mt.leaves)
}

// Hasher returns the hash primitive the tree was built with.
func (mt *MerkleTree) Hasher() Hasher {
	return mt.hasher
}

// Leaf returns a copy of the raw leaf at index.
func (mt *MerkleTree) Leaf(index int) ([]byte, error) {
	if index < 0 || index >= len(mt.leaves) {
		return nil, fmt.Errorf("%w: index %d, tree has %d leaves", ErrIndexOutOfRange, index, len(mt.leaves))
	}
	return append([]byte{}, mt.leaves[index]...), nil
}

// GetRoot computes the merkle root from the leaves.
// It panics with ErrEmptyTree on a tree not built by a constructor.
func (mt *MerkleTree) GetRoot() Digest {
	root, err := ComputeRoot(mt.hasher, mt.mustHashLeaves())
	if err != nil {
		panic(err)
	}
	return root
}

// GetProof creates an inclusion proof for the leaf at leafIndex.
func (mt *MerkleTree) GetProof(leafIndex int) (*MerkleProof, error) {
	if leafIndex < 0 || leafIndex >= len(mt.leaves) {
		return nil, fmt.Errorf("%w: index %d, tree has %d leaves", ErrIndexOutOfRange, leafIndex, len(mt.leaves))
	}

	level, err := HashLeaves(mt.hasher, mt.leaves)
	if err != nil {
		return nil, err
	}

	steps, err := BuildProof(mt.hasher, level, leafIndex)
	if err != nil {
		return nil, err
	}

	return &MerkleProof{
		LeafIndex: leafIndex,
		Leaf:      level[leafIndex],
		Steps:     steps,
	}, nil
}

// Levels returns every level of the reduction, leaf digests first and the
// single-element root level last. Like GetRoot it panics on a zero-value tree.
func (mt *MerkleTree) Levels() [][]Digest {
	return buildLevels(mt.hasher, mt.mustHashLeaves())
}

// mustHashLeaves returns level 0. Constructors guarantee at least one leaf and
// a hasher, so only a zero-value MerkleTree reaches the panic.
func (mt *MerkleTree) mustHashLeaves() []Digest {
	if len(mt.leaves) == 0 || mt.hasher == nil {
		panic(ErrEmptyTree)
	}
	level, err := HashLeaves(mt.hasher, mt.leaves)
	if err != nil {
		panic(err)
	}
	return level
}
