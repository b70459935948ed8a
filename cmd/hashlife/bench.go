package main

import (
	"fmt"
	"os"
	"time"

	"hashlife/pkg/quadtree"
	"hashlife/pkg/rle"

	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		inPath      string
		generations uint64
		cacheSize   int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Advance a pattern and report timing and node counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			uni, err := rle.Read(string(src))
			if err != nil {
				return err
			}
			uni.Cache.Close()
			cache, err := quadtree.NewCache(cacheSize, nil)
			if err != nil {
				return err
			}
			uni.Cache = cache
			defer cache.Close()

			start := time.Now()
			if err := uni.Simulate(generations); err != nil {
				return err
			}
			elapsed := time.Since(start)

			census := uni.DepthCensus()
			fmt.Fprintf(cmd.OutOrStdout(), "generations=%d elapsed=%s arena_nodes=%d generation=%d\n",
				generations, elapsed, uni.Arena.NumNodes(), uni.Generation())
			for level := quadtree.MinLevel; level <= quadtree.MinLevel+32; level++ {
				if n, ok := census[level]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "  level=%d nodes=%d\n", level, n)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input RLE pattern file (required)")
	cmd.Flags().Uint64Var(&generations, "generations", 1000, "number of generations to advance")
	cmd.Flags().Int64Var(&cacheSize, "cache-size", 1<<20, "maximum result cache entries")
	cmd.MarkFlagRequired("in")

	return cmd
}
