package command

import (
	"fmt"
	"hub-allocation-service/internal/adapters/orders"
	"hub-allocation-service/internal/domain"
	"hub-allocation-service/internal/report"
	"hub-allocation-service/internal/services"
	"time"

	"github.com/spf13/cobra"
)

func newAllocateCmd() *cobra.Command {
	var xlsxPath, sheet string

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Register orders and print the allocation report",
		Long: `Without --xlsx the orders are registered interactively: a batch size,
then a destination and a weight per order, repeated until a batch size of
zero. Destinations must be one of the topology's known locations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			topo, err := loadTopology()
			if err != nil {
				return err
			}

			var batch []domain.Order
			if xlsxPath != "" {
				batch, err = orders.ReadXLSX(xlsxPath, sheet, orders.DefaultDeadline(time.Now()))
			} else {
				batch, err = orders.NewCollector(cmd.InOrStdin(), cmd.OutOrStdout(), topo.Destinations()).Collect()
			}
			if err != nil {
				return fmt.Errorf("collecting orders: %w", err)
			}

			if err := orders.Validate(batch, topo.Destinations()); err != nil {
				return fmt.Errorf("invalid orders: %w", err)
			}

			run, err := services.NewAllocator(topo.Routes(), workers).Run(cmd.Context(), topo.Hubs(), batch)
			if err != nil {
				return fmt.Errorf("allocating: %w", err)
			}

			return report.Write(cmd.OutOrStdout(), run)
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "import orders from this spreadsheet instead of prompting")
	cmd.Flags().StringVar(&sheet, "sheet", "", "spreadsheet sheet name (first sheet when empty)")
	return cmd
}
