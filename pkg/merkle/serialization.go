package merkle

import (
	"encoding/json"
	"fmt"
)

// ProofDocument is the self-describing JSON form of a proof, carrying the
// root it was generated against and the hash algorithm of the tree.
type ProofDocument struct {
	HashAlgorithm string       `json:"hash"`
	Root          Digest       `json:"root"`
	Proof         *MerkleProof `json:"proof"`
}

// MarshalProof serializes a MerkleProof to JSON bytes.
func MarshalProof(proof *MerkleProof) ([]byte, error) {
	if proof == nil {
		return nil, fmt.Errorf("cannot marshal nil MerkleProof")
	}

	data, err := json.Marshal(proof)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal MerkleProof to JSON: %w", err)
	}

	return data, nil
}

// UnmarshalProof deserializes a MerkleProof from JSON bytes.
func UnmarshalProof(data []byte) (*MerkleProof, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var proof MerkleProof
	if err := json.Unmarshal(data, &proof); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to MerkleProof: %w", err)
	}
	if err := validateSteps(proof.Steps); err != nil {
		return nil, err
	}
	if proof.Steps == nil {
		proof.Steps = []ProofStep{}
	}

	return &proof, nil
}

// MarshalProofDocument serializes a ProofDocument to indented JSON bytes.
func MarshalProofDocument(doc *ProofDocument) ([]byte, error) {
	if doc == nil || doc.Proof == nil {
		return nil, fmt.Errorf("cannot marshal nil ProofDocument")
	}

	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalProofDocument deserializes a ProofDocument from JSON bytes.
func UnmarshalProofDocument(data []byte) (*ProofDocument, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("cannot unmarshal empty data")
	}

	var doc ProofDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON to ProofDocument: %w", err)
	}
	if doc.Proof == nil {
		return nil, fmt.Errorf("proof document is missing the proof")
	}
	if err := validateSteps(doc.Proof.Steps); err != nil {
		return nil, err
	}
	if doc.Proof.Steps == nil {
		doc.Proof.Steps = []ProofStep{}
	}

	return &doc, nil
}

// validateSteps rejects steps whose side was missing from the JSON input
func validateSteps(steps []ProofStep) error {
	for i, step := range steps {
		if !step.Side.Valid() {
			return fmt.Errorf("proof step %d has no valid side", i)
		}
	}
	return nil
}
