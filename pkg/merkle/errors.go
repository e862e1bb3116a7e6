package merkle

import "errors"

var (
	// ErrEmptyTree is returned when a tree or level is built from zero leaves.
	ErrEmptyTree = errors.New("cannot build merkle tree from empty leaf list")

	// ErrIndexOutOfRange is returned when a proof is requested for a leaf index
	// outside [0, leaf count).
	ErrIndexOutOfRange = errors.New("leaf index out of range")

	// ErrUnknownHashAlgorithm is returned by HasherForAlgorithm for unregistered names.
	ErrUnknownHashAlgorithm = errors.New("unknown hash algorithm")
)
