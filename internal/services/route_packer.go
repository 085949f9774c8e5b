package services

import (
	"hub-allocation-service/internal/domain"
	"hub-allocation-service/internal/ports"
)

// Pack loads one hub's fleet with its pending orders using a greedy heuristic.
//
// Trucks are filled one at a time in fleet order. For each truck the pool of
// remaining orders is scanned in the given order and every order that has a
// direct route from the truck's current location and still fits its capacity
// is taken; the truck then continues from that order's destination. Orders
// skipped by one truck stay in the pool for the next one. Whatever is left
// after the last truck is reported as unallocated.
//
// Pack is first-fit in both dimensions and makes no optimality claim. It
// works on copies of the hub's trucks: the caller's hub is never mutated,
// and packing the same input twice yields the same allocation.
func Pack(hub domain.Hub, orders []domain.Order, table ports.RouteTable) domain.HubAllocation {
	alloc := domain.HubAllocation{
		HubID:    hub.ID,
		HubName:  hub.Name,
		Location: hub.Location,
		Pending:  len(orders),
		Trucks:   make([]domain.Truck, 0, len(hub.Trucks)),
		Routes:   make([]domain.TruckRoute, 0, len(hub.Trucks)),
	}

	remaining := append([]domain.Order(nil), orders...)

	for _, t := range hub.Trucks {
		truck := t.Clone()
		truck.Reset()

		route := domain.TruckRoute{
			TruckID:    truck.ID,
			CapacityKg: truck.CapacityKg,
		}
		current := hub.Location

		// Partition the pool instead of removing from it while scanning.
		kept := make([]domain.Order, 0, len(remaining))
		for _, o := range remaining {
			leg, ok := table.Lookup(current, o.Destination)
			if !ok {
				kept = append(kept, o)
				continue
			}
			if !truck.Fits(o) {
				kept = append(kept, o)
				continue
			}
			if err := truck.Load(o); err != nil {
				kept = append(kept, o)
				continue
			}

			route.Stops = append(route.Stops, domain.Stop{
				Order: o,
				Leg: domain.Leg{
					From:          current,
					To:            o.Destination,
					DistanceKm:    leg.DistanceKm,
					DurationHours: leg.DurationHours,
				},
			})
			route.TotalDistanceKm += leg.DistanceKm
			route.TotalDurationHours += leg.DurationHours
			current = o.Destination
		}
		remaining = kept

		route.LoadKg = truck.LoadKg
		alloc.Trucks = append(alloc.Trucks, truck)
		alloc.Routes = append(alloc.Routes, route)
	}

	for _, o := range remaining {
		alloc.Unallocated = append(alloc.Unallocated, domain.Unallocated{
			Order:  o,
			HubID:  hub.ID,
			Reason: domain.ReasonNoTruck,
		})
	}

	return alloc
}
