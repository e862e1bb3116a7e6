package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Layr-Labs/merkle-proof-go/pkg/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func newApp() *cli.App {
	leafFlags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "leaf",
			Aliases: []string{"l"},
			Usage:   "Leaf value, in tree order (repeatable)",
		},
		&cli.StringFlag{
			Name:    "leaves-file",
			Aliases: []string{"f"},
			Usage:   "File with one leaf value per line",
		},
	}

	return &cli.App{
		Name:  "merkle",
		Usage: "Build merkle roots and inclusion proofs",
		Description: `A tool for binary merkle trees over an ordered list of leaves.

Pairs are hashed as H(left || right). An unpaired trailing node at any level is
carried to the next level unchanged. Leaf order is part of the tree's identity.`,
		Version:                   "1.0.0",
		DisableSliceFlagSeparator: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "hash",
				Usage:   fmt.Sprintf("Hash algorithm: %s", config.GetSupportedHashAlgorithmsString()),
				Value:   config.DefaultHashAlgorithm,
				EnvVars: []string{config.EnvMerkleHash},
			},
			&cli.StringFlag{
				Name:    "leaf-encoding",
				Aliases: []string{"encoding"},
				Usage:   fmt.Sprintf("Leaf value encoding: %s", config.GetSupportedLeafEncodingsString()),
				Value:   config.DefaultLeafEncoding.String(),
				EnvVars: []string{config.EnvMerkleLeafEncoding},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvMerkleVerbose},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "root",
				Usage:  "Print the merkle root of the leaves",
				Flags:  leafFlags,
				Action: rootCommand,
			},
			{
				Name:  "proof",
				Usage: "Print an inclusion proof for one leaf as JSON",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:     "index",
						Aliases:  []string{"i"},
						Usage:    "Index of the leaf to prove",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the proof to this file instead of stdout",
					},
				}, leafFlags...),
				Action: proofCommand,
			},
			{
				Name:  "verify",
				Usage: "Verify an inclusion proof against a root",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "proof",
						Aliases:  []string{"p"},
						Usage:    "Path to a proof JSON file produced by the proof command",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "leaf",
						Aliases:  []string{"l"},
						Usage:    "Leaf value being proven",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "root",
						Aliases:  []string{"r"},
						Usage:    "Trusted root (0x hex) the proof must rebuild",
						Required: true,
					},
				},
				Action: verifyCommand,
			},
			{
				Name:   "tree",
				Usage:  "Print every level of the reduction, leaves first",
				Flags:  leafFlags,
				Action: treeCommand,
			},
		},
	}
}
