package config

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/Layr-Labs/merkle-proof-go/pkg/merkle"
)

// Environment variable names for the merkle CLI
const (
	EnvMerkleHash         = "MERKLE_HASH"
	EnvMerkleLeafEncoding = "MERKLE_LEAF_ENCODING"
	EnvMerkleVerbose      = "MERKLE_VERBOSE"
)

// LeafEncoding describes how leaf values given on the command line or in a
// leaves file are turned into raw leaf bytes.
type LeafEncoding string

func (e LeafEncoding) String() string {
	return string(e)
}

const (
	// LeafEncodingRaw uses the UTF-8 bytes of the value as-is
	LeafEncodingRaw LeafEncoding = "raw"
	// LeafEncodingHex decodes a 0x-prefixed hex value
	LeafEncodingHex LeafEncoding = "hex"
	// LeafEncodingABIString ABI-encodes the value as a Solidity string
	LeafEncodingABIString LeafEncoding = "abi-string"
)

const (
	DefaultHashAlgorithm = merkle.AlgorithmKeccak256
	DefaultLeafEncoding  = LeafEncodingRaw
)

// GetSupportedLeafEncodings returns all supported leaf encodings
func GetSupportedLeafEncodings() []LeafEncoding {
	return []LeafEncoding{LeafEncodingRaw, LeafEncodingHex, LeafEncodingABIString}
}

// GetSupportedLeafEncodingsString returns supported leaf encodings for CLI help
func GetSupportedLeafEncodingsString() string {
	names := make([]string, 0, len(GetSupportedLeafEncodings()))
	for _, e := range GetSupportedLeafEncodings() {
		names = append(names, e.String())
	}
	return strings.Join(names, ", ")
}

// GetSupportedHashAlgorithmsString returns supported hash algorithms for CLI help
func GetSupportedHashAlgorithmsString() string {
	return strings.Join(merkle.SupportedAlgorithms(), ", ")
}

// MerkleConfig represents the configuration shared by every merkle CLI command
type MerkleConfig struct {
	HashAlgorithm string       `json:"hash_algorithm" yaml:"hashAlgorithm"`
	LeafEncoding  LeafEncoding `json:"leaf_encoding" yaml:"leafEncoding"`
	Verbose       bool         `json:"verbose" yaml:"verbose"`
}

// NewDefaultMerkleConfig returns a config using Keccak-256 and raw leaves
func NewDefaultMerkleConfig() *MerkleConfig {
	return &MerkleConfig{
		HashAlgorithm: DefaultHashAlgorithm,
		LeafEncoding:  DefaultLeafEncoding,
	}
}

// Validate validates the merkle configuration
func (c *MerkleConfig) Validate() error {
	var allErrors field.ErrorList

	if c.HashAlgorithm == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("hashAlgorithm"), "hashAlgorithm is required"))
	} else if _, err := merkle.HasherForAlgorithm(c.HashAlgorithm); err != nil {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("hashAlgorithm"), c.HashAlgorithm, merkle.SupportedAlgorithms()))
	}

	switch c.LeafEncoding {
	case LeafEncodingRaw, LeafEncodingHex, LeafEncodingABIString:
	case "":
		allErrors = append(allErrors, field.Required(field.NewPath("leafEncoding"), "leafEncoding is required"))
	default:
		allErrors = append(allErrors, field.NotSupported(field.NewPath("leafEncoding"), c.LeafEncoding, GetSupportedLeafEncodings()))
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// Hasher returns the merkle.Hasher selected by HashAlgorithm
func (c *MerkleConfig) Hasher() (merkle.Hasher, error) {
	h, err := merkle.HasherForAlgorithm(c.HashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to select hasher: %w", err)
	}
	return h, nil
}
