package command

import (
	"fmt"
	"hub-allocation-service/internal/bench"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		sizes     []int
		seed      int64
		chartPath string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time allocation runs over synthetic order batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			topo, err := loadTopology()
			if err != nil {
				return err
			}

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			results, err := bench.Run(cmd.Context(), topo, sizes, workers, rng)
			if err != nil {
				return err
			}
			bench.WriteTable(cmd.OutOrStdout(), results)

			if chartPath == "" {
				return nil
			}
			f, err := os.Create(chartPath)
			if err != nil {
				return fmt.Errorf("creating chart file: %w", err)
			}
			defer f.Close()
			if err := bench.RenderChart(f, results); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chart written to %s\n", chartPath)
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", bench.DefaultSizes, "batch sizes to time")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (time-based when 0)")
	cmd.Flags().StringVar(&chartPath, "chart", "", "write an HTML bar chart of the results")
	return cmd
}
