package merkle

// ComputeRootFromProof folds leafDigest with every step in order and returns
// the candidate root. ok is false when a step carries an unknown side tag.
func ComputeRootFromProof(h Hasher, leafDigest Digest, steps []ProofStep) (root Digest, ok bool) {
	acc := leafDigest
	for _, step := range steps {
		switch step.Side {
		case SideLeft:
			acc = Merge(h, step.Sibling, acc)
		case SideRight:
			acc = Merge(h, acc, step.Sibling)
		default:
			return Digest{}, false
		}
	}
	return acc, true
}

// VerifyProof reports whether leaf is included in the Keccak-256 tree with
// the given root. A malformed proof yields false; it never errors.
func VerifyProof(leaf []byte, proof *MerkleProof, root Digest) bool {
	return VerifyProofWithHasher(DefaultHasher, leaf, proof, root)
}

// VerifyProofWithHasher is VerifyProof for trees built with h.
//
// The leaf is hashed here rather than trusted from proof.Leaf, so a proof
// whose recorded leaf digest disagrees with the raw leaf is rejected.
func VerifyProofWithHasher(h Hasher, leaf []byte, proof *MerkleProof, root Digest) bool {
	if proof == nil || h == nil {
		return false
	}

	leafDigest := h.Hash(leaf)
	if proof.Leaf != (Digest{}) && proof.Leaf != leafDigest {
		return false
	}

	candidate, ok := ComputeRootFromProof(h, leafDigest, proof.Steps)
	if !ok {
		return false
	}
	return candidate == root
}
