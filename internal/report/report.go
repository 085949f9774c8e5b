// Package report renders allocation run reports as human-readable text.
package report

import (
	"fmt"
	"hub-allocation-service/internal/domain"
	"io"
	"text/tabwriter"
)

// Write renders r to w: the used trucks of every hub with their legs, the
// hubs that received no orders, and the unallocated orders with reasons.
func Write(w io.Writer, r *domain.RunReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Run %s\n", r.RunID)

	for _, h := range r.Hubs {
		if h.Pending == 0 {
			fmt.Fprintf(tw, "\n%s (%s): no orders\n", h.HubName, h.HubID)
			continue
		}

		fmt.Fprintf(tw, "\n%s (%s): %d of %d order(s) allocated\n", h.HubName, h.HubID, h.AllocatedCount(), h.Pending)
		for i, route := range h.Routes {
			if !route.Used() {
				continue
			}
			free := route.CapacityKg - route.LoadKg
			if i < len(h.Trucks) {
				free = h.Trucks[i].RemainingKg()
			}
			fmt.Fprintf(tw, "  Truck %s\tload %.2f / %.2f kg\tfree %.2f kg\t%.0f km\t%.2f h\n",
				route.TruckID, route.LoadKg, route.CapacityKg, free, route.TotalDistanceKm, route.TotalDurationHours)
			for _, s := range route.Stops {
				fmt.Fprintf(tw, "    -> %s\t%s\t%.2f kg\t%.0f km\t%.2f h\n",
					s.Leg.To, s.Order.ID, s.Order.WeightKg, s.Leg.DistanceKm, s.Leg.DurationHours)
			}
		}
	}

	if len(r.Unallocated) > 0 {
		fmt.Fprintf(tw, "\n%d order(s) not allocated:\n", len(r.Unallocated))
		for _, u := range r.Unallocated {
			hub := u.HubID
			if hub == "" {
				hub = "-"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%.2f kg\thub %s\t%s\n",
				u.Order.ID, u.Order.Destination, u.Order.WeightKg, hub, u.Reason)
		}
	}

	fmt.Fprintf(tw, "\nAllocated: %d  Unallocated: %d  Distance: %.0f km\n",
		r.Allocated, len(r.Unallocated), r.TotalDistanceKm)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
