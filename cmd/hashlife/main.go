// Command hashlife is the headless CLI front end for pkg/quadtree: it
// drives a Universe directly from an RLE pattern file, without the
// ebiten-gated GUI host in cmd/ca.
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hashlife",
		Short: "Run and inspect HashLife universes from the command line",
	}
	root.AddCommand(newRunCmd(), newBenchCmd(), newServeMetricsCmd())
	return root
}
