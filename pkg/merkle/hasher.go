package merkle

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hash algorithm names accepted by HasherForAlgorithm.
const (
	AlgorithmKeccak256  = "keccak256"
	AlgorithmSHA3_256   = "sha3-256"
	AlgorithmBlake2b256 = "blake2b-256"
)

// Hasher is the hash primitive H used for both leaves and node pairs.
// Hash must be deterministic and treat its arguments as one concatenated input.
type Hasher interface {
	Hash(data ...[]byte) Digest
	Name() string
}

// Keccak256Hasher hashes with Keccak-256, matching Solidity's keccak256.
type Keccak256Hasher struct{}

func (Keccak256Hasher) Hash(data ...[]byte) Digest {
	return Digest(crypto.Keccak256Hash(data...))
}

func (Keccak256Hasher) Name() string { return AlgorithmKeccak256 }

// SHA3Hasher hashes with FIPS-202 SHA3-256.
type SHA3Hasher struct{}

func (SHA3Hasher) Hash(data ...[]byte) Digest {
	h := sha3.New256()
	for _, b := range data {
		h.Write(b)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (SHA3Hasher) Name() string { return AlgorithmSHA3_256 }

// Blake2bHasher hashes with unkeyed BLAKE2b-256.
type Blake2bHasher struct{}

func (Blake2bHasher) Hash(data ...[]byte) Digest {
	// New256 only fails for keys longer than 64 bytes
	h, _ := blake2b.New256(nil)
	for _, b := range data {
		h.Write(b)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (Blake2bHasher) Name() string { return AlgorithmBlake2b256 }

// DefaultHasher is the hasher used by NewMerkleTree and VerifyProof.
var DefaultHasher Hasher = Keccak256Hasher{}

// HasherForAlgorithm returns the Hasher registered under name.
func HasherForAlgorithm(name string) (Hasher, error) {
	switch name {
	case AlgorithmKeccak256:
		return Keccak256Hasher{}, nil
	case AlgorithmSHA3_256:
		return SHA3Hasher{}, nil
	case AlgorithmBlake2b256:
		return Blake2bHasher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashAlgorithm, name)
	}
}

// SupportedAlgorithms lists every name HasherForAlgorithm accepts.
func SupportedAlgorithms() []string {
	return []string{AlgorithmKeccak256, AlgorithmSHA3_256, AlgorithmBlake2b256}
}

// Merge computes H(left || right). The order of the arguments matters.
func Merge(h Hasher, left, right Digest) Digest {
	return h.Hash(left[:], right[:])
}
