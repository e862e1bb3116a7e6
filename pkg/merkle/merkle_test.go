package merkle

import (
	"crypto/rand"
	"fmt"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// keccak hashes s independently of the package's Hasher implementations
func keccak(s string) Digest {
	return Digest(crypto.Keccak256Hash([]byte(s)))
}

// merge is the fixture form of Merge for Keccak-256
func merge(left, right Digest) Digest {
	return Digest(crypto.Keccak256Hash(left[:], right[:]))
}

// stringLeaves converts fixture strings into raw leaves
func stringLeaves(values ...string) [][]byte {
	leaves := make([][]byte, len(values))
	for i, v := range values {
		leaves[i] = []byte(v)
	}
	return leaves
}

// randomLeaves generates n random leaves of varying length
func randomLeaves(n int) [][]byte {
	leaves := make([][]byte, n)
	for i := 0; i < n; i++ {
		leaves[i] = make([]byte, 1+i%40)
		_, _ = rand.Read(leaves[i]) // Ignore error in test helper
	}
	return leaves
}

func mustTree(t testing.TB, leaves [][]byte) *MerkleTree {
	t.Helper()
	tree, err := NewMerkleTree(leaves)
	require.NoError(t, err)
	return tree
}

func TestGetRoot_Fixtures(t *testing.T) {
	a, b, c, d := keccak("A"), keccak("B"), keccak("C"), keccak("D")
	e, f, g, h := keccak("E"), keccak("F"), keccak("G"), keccak("H")

	testCases := []struct {
		name     string
		leaves   [][]byte
		expected Digest
	}{
		{"1 leaf", stringLeaves("A"), a},
		{"2 leaves", stringLeaves("A", "B"), merge(a, b)},
		{"3 leaves", stringLeaves("A", "B", "C"), merge(merge(a, b), c)},
		{"4 leaves", stringLeaves("A", "B", "C", "D"), merge(merge(a, b), merge(c, d))},
		{
			"5 leaves",
			stringLeaves("A", "B", "C", "D", "D"),
			merge(merge(merge(a, b), merge(c, d)), d),
		},
		{
			"7 leaves",
			stringLeaves("A", "B", "C", "D", "E", "F", "G"),
			merge(merge(merge(a, b), merge(c, d)), merge(merge(e, f), g)),
		},
		{
			"8 leaves",
			stringLeaves("A", "B", "C", "D", "E", "F", "G", "H"),
			merge(merge(merge(a, b), merge(c, d)), merge(merge(e, f), merge(g, h))),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := mustTree(t, tc.leaves)
			require.Equal(t, tc.expected, tree.GetRoot())
		})
	}
}

func TestNewMerkleTree_Empty(t *testing.T) {
	tree, err := NewMerkleTree([][]byte{})
	require.ErrorIs(t, err, ErrEmptyTree)
	require.Nil(t, tree)

	tree, err = NewMerkleTree(nil)
	require.ErrorIs(t, err, ErrEmptyTree)
	require.Nil(t, tree)
}

func TestNewMerkleTree_NilHasher(t *testing.T) {
	tree, err := NewMerkleTreeWithHasher(stringLeaves("A"), nil)
	require.Error(t, err)
	require.Nil(t, tree)
}

func TestNewMerkleTree_CopiesLeaves(t *testing.T) {
	leaves := stringLeaves("A", "B", "C")
	tree := mustTree(t, leaves)
	before := tree.GetRoot()

	leaves[1][0] = 'Z'
	leaves[2] = []byte("other")

	require.Equal(t, before, tree.GetRoot())

	leaf, err := tree.Leaf(1)
	require.NoError(t, err)
	require.Equal(t, []byte("B"), leaf)

	// Mutating the returned leaf must not reach the tree either
	leaf[0] = 'Q'
	require.Equal(t, before, tree.GetRoot())
}

func TestGetRoot_Deterministic(t *testing.T) {
	leaves := randomLeaves(10)

	tree1 := mustTree(t, leaves)
	tree2 := mustTree(t, leaves)

	require.Equal(t, tree1.GetRoot(), tree2.GetRoot())
	require.Equal(t, tree1.GetRoot(), tree1.GetRoot())
}

func TestGetRoot_OrderSensitive(t *testing.T) {
	tree1 := mustTree(t, stringLeaves("A", "B"))
	tree2 := mustTree(t, stringLeaves("B", "A"))
	require.NotEqual(t, tree1.GetRoot(), tree2.GetRoot())
}

func TestGetRoot_NoSelfMerge(t *testing.T) {
	// A carried orphan must not be hashed with a copy of itself
	tree := mustTree(t, stringLeaves("A", "B", "C"))
	ab := merge(keccak("A"), keccak("B"))
	cc := merge(keccak("C"), keccak("C"))
	require.NotEqual(t, merge(ab, cc), tree.GetRoot())
}

func TestLevels(t *testing.T) {
	tree := mustTree(t, stringLeaves("A", "B", "C", "D", "E"))
	levels := tree.Levels()

	a, b, c, d, e := keccak("A"), keccak("B"), keccak("C"), keccak("D"), keccak("E")
	require.Len(t, levels, 4)
	require.Equal(t, []Digest{a, b, c, d, e}, levels[0])
	require.Equal(t, []Digest{merge(a, b), merge(c, d), e}, levels[1])
	require.Equal(t, []Digest{merge(merge(a, b), merge(c, d)), e}, levels[2])
	require.Equal(t, []Digest{tree.GetRoot()}, levels[3])

	single := mustTree(t, stringLeaves("A"))
	require.Equal(t, [][]Digest{{a}}, single.Levels())
}

func TestMerkleTree_ZeroValue(t *testing.T) {
	var tree MerkleTree

	require.Equal(t, 0, tree.Len())
	require.PanicsWithError(t, ErrEmptyTree.Error(), func() { tree.GetRoot() })
	require.PanicsWithError(t, ErrEmptyTree.Error(), func() { tree.Levels() })

	proof, err := tree.GetProof(0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.Nil(t, proof)
}

func TestLeafAccessors(t *testing.T) {
	tree := mustTree(t, stringLeaves("A", "B"))
	require.Equal(t, 2, tree.Len())
	require.Equal(t, AlgorithmKeccak256, tree.Hasher().Name())

	_, err := tree.Leaf(2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = tree.Leaf(-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestTamperDetection(t *testing.T) {
	for n := 2; n <= 16; n++ {
		t.Run(fmt.Sprintf("%d_leaves", n), func(t *testing.T) {
			leaves := randomLeaves(n)
			tree := mustTree(t, leaves)
			root := tree.GetRoot()

			oldProofs := make([]*MerkleProof, n)
			for j := 0; j < n; j++ {
				proof, err := tree.GetProof(j)
				require.NoError(t, err)
				oldProofs[j] = proof
			}

			for i := 0; i < n; i++ {
				mutated := cloneLeaves(leaves)
				mutated[i][0] ^= 0xFF
				mutatedTree := mustTree(t, mutated)
				newRoot := mutatedTree.GetRoot()

				require.NotEqual(t, root, newRoot, "mutating leaf %d must change the root", i)
				require.False(t, VerifyProof(mutated[i], oldProofs[i], root))

				// Every proof path ends at the root, so each old proof crosses the change
				for j := 0; j < n; j++ {
					require.False(t, VerifyProof(leaves[j], oldProofs[j], newRoot),
						"old proof for leaf %d must fail after mutating leaf %d", j, i)
				}
			}

			swapped := cloneLeaves(leaves)
			swapped[0], swapped[n-1] = swapped[n-1], swapped[0]
			require.NotEqual(t, root, mustTree(t, swapped).GetRoot())
		})
	}
}

func TestConcurrentAccess(t *testing.T) {
	leaves := randomLeaves(13)
	tree := mustTree(t, leaves)
	root := tree.GetRoot()

	var wg sync.WaitGroup
	errs := make(chan error, len(leaves))
	for i := range leaves {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			proof, err := tree.GetProof(i)
			if err != nil {
				errs <- err
				return
			}
			if tree.GetRoot() != root || !VerifyProof(leaves[i], proof, root) {
				errs <- fmt.Errorf("proof for leaf %d failed", i)
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestMerkleTreeLargeSet(t *testing.T) {
	sizes := []int{50, 100, 200, 1023}

	for _, size := range sizes {
		t.Run(fmt.Sprintf("Size_%d", size), func(t *testing.T) {
			leaves := randomLeaves(size)
			tree := mustTree(t, leaves)
			root := tree.GetRoot()

			testIndices := []int{0, size / 4, size / 2, size - 1}
			for _, idx := range testIndices {
				proof, err := tree.GetProof(idx)
				require.NoError(t, err)
				require.True(t, VerifyProof(leaves[idx], proof, root))
			}
		})
	}
}

func cloneLeaves(leaves [][]byte) [][]byte {
	out := make([][]byte, len(leaves))
	for i, l := range leaves {
		out[i] = append([]byte{}, l...)
	}
	return out
}
