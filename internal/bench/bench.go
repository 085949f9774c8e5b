// Package bench times end-to-end allocation runs over synthetic order batches.
package bench

import (
	"context"
	"fmt"
	"hub-allocation-service/internal/adapters/orders"
	"hub-allocation-service/internal/adapters/topology"
	"hub-allocation-service/internal/domain"
	"hub-allocation-service/internal/services"
	"io"
	"math/rand"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// DefaultSizes are the batch sizes timed when none are given.
var DefaultSizes = []int{10, 100, 500, 1000}

// Synthetic weights are drawn uniformly from [MinWeightKg, MaxWeightKg).
const (
	MinWeightKg = 50
	MaxWeightKg = 1000
)

type Result struct {
	Orders      int
	Allocated   int
	Unallocated int
	Duration    time.Duration
}

// SyntheticOrders draws n orders with random known destinations.
func SyntheticOrders(rng *rand.Rand, destinations []string, n int, now time.Time) []domain.Order {
	deadline := orders.DefaultDeadline(now)
	out := make([]domain.Order, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Order{
			ID:          fmt.Sprintf("E%04d", i+1),
			Destination: destinations[rng.Intn(len(destinations))],
			Deadline:    deadline,
			WeightKg:    MinWeightKg + rng.Float64()*(MaxWeightKg-MinWeightKg),
		})
	}
	return out
}

// Run times one allocation per batch size. Every trial gets a fresh fleet
// from topo so trials never share truck state.
func Run(
	ctx context.Context,
	topo *topology.Topology,
	sizes []int,
	workers int,
	rng *rand.Rand,
) ([]Result, error) {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}

	destinations := topo.Destinations()
	if len(destinations) == 0 {
		return nil, fmt.Errorf("bench: topology has no destinations")
	}

	allocator := services.NewAllocator(topo.Table, workers)
	results := make([]Result, 0, len(sizes))

	for _, n := range sizes {
		if n < 0 {
			return nil, fmt.Errorf("bench: negative batch size %d", n)
		}

		batch := SyntheticOrders(rng, destinations, n, time.Now())
		hubs := topo.Hubs()

		start := time.Now()
		report, err := allocator.Run(ctx, hubs, batch)
		if err != nil {
			return nil, fmt.Errorf("bench: run with %d orders: %w", n, err)
		}
		elapsed := time.Since(start)

		results = append(results, Result{
			Orders:      n,
			Allocated:   report.Allocated,
			Unallocated: len(report.Unallocated),
			Duration:    elapsed,
		})
	}

	return results, nil
}

// WriteTable prints one line per result.
func WriteTable(w io.Writer, results []Result) {
	for _, r := range results {
		fmt.Fprintf(w, "orders=%d allocated=%d unallocated=%d dur=%.4fs\n",
			r.Orders, r.Allocated, r.Unallocated, r.Duration.Seconds())
	}
}

// RenderChart writes an HTML bar chart of run duration per batch size.
func RenderChart(w io.Writer, results []Result) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Allocation run duration",
			Subtitle: "milliseconds per batch size",
		}),
	)

	sizes := make([]string, 0, len(results))
	durations := make([]opts.BarData, 0, len(results))
	allocated := make([]opts.BarData, 0, len(results))
	for _, r := range results {
		sizes = append(sizes, fmt.Sprintf("%d orders", r.Orders))
		durations = append(durations, opts.BarData{Value: float64(r.Duration.Microseconds()) / 1000})
		allocated = append(allocated, opts.BarData{Value: r.Allocated})
	}

	bar.SetXAxis(sizes).
		AddSeries("duration (ms)", durations).
		AddSeries("allocated orders", allocated)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render bench chart: %w", err)
	}
	return nil
}
