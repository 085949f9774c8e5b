// Package command provides the hubctl root command and its sub-commands.
//
//	hubctl allocate [--xlsx orders.xlsx [--sheet name]] [--topology hubs.yaml] [--workers n]
//	hubctl bench [--sizes 10,100,500,1000] [--seed n] [--chart out.html]
package command

import (
	"fmt"
	"hub-allocation-service/internal/adapters/topology"
	"hub-allocation-service/internal/config"
	"os"

	"github.com/spf13/cobra"
)

var (
	topologyPath string
	workers      int
)

// NewRootCmd builds a fresh command tree so tests can run it in isolation.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hubctl",
		Short: "Allocate delivery orders to hub trucks from the terminal",
		Long: `hubctl assigns delivery orders to the nearest distribution hub and
packs each hub's trucks greedily. Orders are entered interactively or
imported from a spreadsheet; the bench command times allocation runs
over synthetic batches.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			config.LoadEnv()
			if topologyPath == "" {
				topologyPath = config.Get("TOPOLOGY_PATH", "")
			}
			if workers <= 0 {
				workers = config.GetInt("ALLOC_WORKERS", 1)
			}
		},
	}

	root.PersistentFlags().StringVarP(
		&topologyPath, "topology", "t", "", "topology YAML file (built-in dataset when empty)",
	)
	root.PersistentFlags().IntVarP(
		&workers, "workers", "w", 0, "hubs packed concurrently",
	)

	root.AddCommand(newAllocateCmd(), newBenchCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadTopology() (*topology.Topology, error) {
	topo, err := topology.Load(topologyPath)
	if err != nil {
		return nil, fmt.Errorf("topology.Load(%q): %w", topologyPath, err)
	}
	return topo, nil
}
