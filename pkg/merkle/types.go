package merkle

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DigestLength is the width in bytes of every digest produced by a Hasher.
const DigestLength = 32

// Digest is a fixed-width hash output. Digests are compared by byte equality.
type Digest [DigestLength]byte

// Hex returns the 0x-prefixed hex encoding of the digest.
func (d Digest) Hex() string {
	return hexutil.Encode(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// Bytes returns a copy of the digest as a byte slice.
func (d Digest) Bytes() []byte {
	b := make([]byte, DigestLength)
	copy(b, d[:])
	return b
}

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDigest decodes a 0x-prefixed hex string into a Digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	b, err := hexutil.Decode(s)
	if err != nil {
		return d, fmt.Errorf("invalid digest %q: %w", s, err)
	}
	if len(b) != DigestLength {
		return d, fmt.Errorf("invalid digest length: expected %d bytes, got %d", DigestLength, len(b))
	}
	copy(d[:], b)
	return d, nil
}

// Side is the position of a sibling relative to the node on the proof path.
// The zero value is not a valid side.
type Side uint8

const (
	// SideLeft places the sibling before the accumulated digest when folding.
	SideLeft Side = iota + 1
	// SideRight places the sibling after the accumulated digest when folding.
	SideRight
)

// Valid reports whether s is SideLeft or SideRight.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown side %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*s = SideLeft
	case "right":
		*s = SideRight
	default:
		return fmt.Errorf("unknown side %q", string(text))
	}
	return nil
}

// ProofStep is one sibling digest on the path from a leaf to the root.
type ProofStep struct {
	Sibling Digest `json:"sibling"`
	Side    Side   `json:"side"`
}

// MerkleTree is a binary merkle tree over an ordered sequence of leaves.
//
// Leaf order is part of the tree's identity. The tree never caches derived
// levels: GetRoot and GetProof recompute them from the leaves on every call,
// so a MerkleTree is safe for concurrent use without locking.
//
// A MerkleTree must be created with NewMerkleTree or NewMerkleTreeWithHasher.
// The zero value holds no leaves; GetRoot and Levels panic with ErrEmptyTree
// on it, and GetProof returns ErrIndexOutOfRange.
type MerkleTree struct {
	leaves [][]byte
	hasher Hasher
}

// MerkleProof represents a proof that a leaf is included in the tree.
type MerkleProof struct {
	// LeafIndex is the index of the leaf in the tree's leaf sequence
	LeafIndex int `json:"leafIndex"`

	// Leaf is the digest of the leaf being proven
	Leaf Digest `json:"leaf"`

	// Steps are ordered from the leaf's level up to the level just below the root
	Steps []ProofStep `json:"steps"`
}
