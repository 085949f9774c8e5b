package ports

import "hub-allocation-service/internal/domain"

// Distance and estimated travel time of a direct route.
type DirectRoute struct {
	DistanceKm    float64
	DurationHours float64
}

// Contract for read-only direct route lookups between location keys.
// Routes are directed: origin->destination says nothing about the reverse.
type RouteTable interface {
	// Return the direct route, or ok=false when none was ever added.
	Lookup(origin string, destination string) (DirectRoute, bool)
}

// A directed edge of the distance dataset, as stored or loaded.
type RouteEdge struct {
	Origin      string
	Destination string
	DistanceKm  float64
}

// Read-only view of the static topology shared by request handlers.
type Topology interface {
	// Return a fresh copy of the hub fleet for one run.
	Hubs() []domain.Hub
	// Return the location keys an order may target.
	Destinations() []string
	Routes() RouteTable
}
