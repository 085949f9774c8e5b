package services

import (
	"hub-allocation-service/internal/domain"
	"hub-allocation-service/internal/ports"
)

// SelectNearestHub picks the hub with the shortest direct route to destination.
//
// Hubs with no direct route are skipped. Only a strictly shorter distance
// replaces the current best, so ties resolve to the first hub in input order.
// ok is false when no hub can reach the destination.
func SelectNearestHub(
	destination string,
	hubs []domain.Hub,
	table ports.RouteTable,
) (domain.Hub, ports.DirectRoute, bool) {
	i, route, ok := nearestHubIndex(destination, hubs, table)
	if !ok {
		return domain.Hub{}, ports.DirectRoute{}, false
	}
	return hubs[i], route, true
}

func nearestHubIndex(
	destination string,
	hubs []domain.Hub,
	table ports.RouteTable,
) (int, ports.DirectRoute, bool) {
	best := -1
	var bestRoute ports.DirectRoute

	for i, hub := range hubs {
		route, ok := table.Lookup(hub.Location, destination)
		if !ok {
			continue
		}
		if best == -1 || route.DistanceKm < bestRoute.DistanceKm {
			best = i
			bestRoute = route
		}
	}

	if best == -1 {
		return -1, ports.DirectRoute{}, false
	}
	return best, bestRoute, true
}
