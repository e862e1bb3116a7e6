package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Layr-Labs/merkle-proof-go/pkg/config"
	"github.com/Layr-Labs/merkle-proof-go/pkg/logger"
	"github.com/Layr-Labs/merkle-proof-go/pkg/merkle"
	"github.com/Layr-Labs/merkle-proof-go/pkg/util"
)

func parseMerkleConfig(c *cli.Context) (*config.MerkleConfig, error) {
	cfg := &config.MerkleConfig{
		HashAlgorithm: c.String("hash"),
		LeafEncoding:  config.LeafEncoding(c.String("leaf-encoding")),
		Verbose:       c.Bool("verbose"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func newCommandLogger(cfg *config.MerkleConfig) (*zap.Logger, error) {
	l, err := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Verbose})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}
	return l, nil
}

// loadTree collects leaf values from --leaf and --leaves-file (flag values
// first), decodes them and builds the tree.
func loadTree(c *cli.Context, cfg *config.MerkleConfig, l *zap.Logger) (*merkle.MerkleTree, error) {
	values := append([]string{}, c.StringSlice("leaf")...)
	if path := c.String("leaves-file"); path != "" {
		fileValues, err := util.ReadLeafValuesFile(path)
		if err != nil {
			return nil, err
		}
		values = append(values, fileValues...)
	}

	leaves, err := util.DecodeLeaves(values, cfg.LeafEncoding)
	if err != nil {
		return nil, err
	}

	h, err := cfg.Hasher()
	if err != nil {
		return nil, err
	}

	tree, err := merkle.NewMerkleTreeWithHasher(leaves, h)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build merkle tree")
	}

	l.Sugar().Debugw("Built merkle tree",
		"leaves", tree.Len(),
		"hash", h.Name(),
		"leaf_encoding", cfg.LeafEncoding)
	return tree, nil
}

func rootCommand(c *cli.Context) error {
	cfg, err := parseMerkleConfig(c)
	if err != nil {
		return err
	}
	l, err := newCommandLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	tree, err := loadTree(c, cfg, l)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.App.Writer, tree.GetRoot().Hex())
	return err
}

func proofCommand(c *cli.Context) error {
	cfg, err := parseMerkleConfig(c)
	if err != nil {
		return err
	}
	l, err := newCommandLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	tree, err := loadTree(c, cfg, l)
	if err != nil {
		return err
	}

	index := c.Int("index")
	proof, err := tree.GetProof(index)
	if err != nil {
		return errors.Wrapf(err, "failed to generate proof for leaf %d", index)
	}

	data, err := merkle.MarshalProofDocument(&merkle.ProofDocument{
		HashAlgorithm: tree.Hasher().Name(),
		Root:          tree.GetRoot(),
		Proof:         proof,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode proof")
	}

	if output := c.String("output"); output != "" {
		if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
			return errors.Wrapf(err, "failed to write proof to %s", output)
		}
		l.Sugar().Infow("Wrote proof", "path", output, "index", index, "steps", len(proof.Steps))
		return nil
	}

	_, err = fmt.Fprintln(c.App.Writer, string(data))
	return err
}

func verifyCommand(c *cli.Context) error {
	cfg, err := parseMerkleConfig(c)
	if err != nil {
		return err
	}
	l, err := newCommandLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	path := c.String("proof")
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read proof file %s", path)
	}
	doc, err := merkle.UnmarshalProofDocument(data)
	if err != nil {
		return errors.Wrapf(err, "failed to decode proof file %s", path)
	}

	// The proof file records its hash; an explicit --hash must agree with it
	if doc.HashAlgorithm != "" {
		if c.IsSet("hash") && doc.HashAlgorithm != cfg.HashAlgorithm {
			return errors.Errorf("proof was built with %s but --hash is %s", doc.HashAlgorithm, cfg.HashAlgorithm)
		}
		cfg.HashAlgorithm = doc.HashAlgorithm
	}
	h, err := cfg.Hasher()
	if err != nil {
		return err
	}

	// The root stored in the proof file is untrusted; only --root is checked
	root, err := merkle.ParseDigest(c.String("root"))
	if err != nil {
		return errors.Wrap(err, "invalid --root")
	}
	if doc.Root != root {
		l.Sugar().Debugw("Proof file root differs from --root", "file_root", doc.Root.Hex(), "root", root.Hex())
	}

	leaf, err := util.DecodeLeaf(c.String("leaf"), cfg.LeafEncoding)
	if err != nil {
		return err
	}

	if !merkle.VerifyProofWithHasher(h, leaf, doc.Proof, root) {
		l.Sugar().Debugw("Proof verification failed", "index", doc.Proof.LeafIndex, "root", root.Hex())
		return cli.Exit("proof is INVALID", 1)
	}

	_, err = fmt.Fprintln(c.App.Writer, "proof is valid")
	return err
}

func treeCommand(c *cli.Context) error {
	cfg, err := parseMerkleConfig(c)
	if err != nil {
		return err
	}
	l, err := newCommandLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = l.Sync() }()

	tree, err := loadTree(c, cfg, l)
	if err != nil {
		return err
	}

	for height, level := range tree.Levels() {
		if _, err := fmt.Fprintf(c.App.Writer, "level %d (%d nodes)\n", height, len(level)); err != nil {
			return err
		}
		for i, d := range level {
			if _, err := fmt.Fprintf(c.App.Writer, "  [%d] %s\n", i, d.Hex()); err != nil {
				return err
			}
		}
	}
	return nil
}
