package main

import (
	"os"

	"hashlife/pkg/rle"

	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var (
		inPath      string
		outPath     string
		generations uint64
		maxNodes    int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance a pattern loaded from an RLE file by N generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			uni, err := rle.Read(string(src))
			if err != nil {
				return err
			}
			uni.Arena.MaxNodes = maxNodes

			if err := uni.Simulate(generations); err != nil {
				return err
			}

			out, err := rle.Write(uni)
			if err != nil {
				return err
			}

			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write([]byte(out))
				return err
			}
			return os.WriteFile(outPath, []byte(out), 0o644)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input RLE pattern file (required)")
	cmd.Flags().StringVar(&outPath, "out", "-", "output RLE path, or - for stdout")
	cmd.Flags().Uint64Var(&generations, "generations", 1, "number of generations to advance")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "maximum interned arena nodes (0 = unbounded)")
	cmd.MarkFlagRequired("in")

	return cmd
}
