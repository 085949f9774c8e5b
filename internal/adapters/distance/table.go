package distance

import (
	"hub-allocation-service/internal/ports"
	"math"
	"sort"
)

// AverageSpeedKmh is the fixed truck speed used to estimate travel time.
const AverageSpeedKmh = 80

type edgeKey struct {
	origin      string
	destination string
}

// Table is the static directed distance table.
//
// It is built once at startup with AddEdge and is read-only afterwards, so a
// built Table is safe for concurrent Lookup calls.
type Table struct {
	edges map[edgeKey]ports.DirectRoute
}

func NewTable() *Table {
	return &Table{edges: make(map[edgeKey]ports.DirectRoute)}
}

// EstimateHours converts a distance into travel hours at AverageSpeedKmh,
// rounded to two decimals with exact halves going to the even digit.
func EstimateHours(distanceKm float64) float64 {
	return math.RoundToEven(distanceKm/AverageSpeedKmh*100) / 100
}

// AddEdge stores or overwrites the origin->destination route.
// Negative distances are not rejected.
func (t *Table) AddEdge(origin, destination string, distanceKm float64) {
	t.edges[edgeKey{origin: origin, destination: destination}] = ports.DirectRoute{
		DistanceKm:    distanceKm,
		DurationHours: EstimateHours(distanceKm),
	}
}

func (t *Table) Lookup(origin, destination string) (ports.DirectRoute, bool) {
	r, ok := t.edges[edgeKey{origin: origin, destination: destination}]
	return r, ok
}

func (t *Table) Len() int { return len(t.edges) }

// Origins returns every location with at least one outgoing route, sorted.
func (t *Table) Origins() []string {
	return t.keys(func(k edgeKey) string { return k.origin })
}

// Destinations returns every location reachable by some direct route, sorted.
func (t *Table) Destinations() []string {
	return t.keys(func(k edgeKey) string { return k.destination })
}

// From returns the routes leaving origin keyed by destination.
func (t *Table) From(origin string) map[string]ports.DirectRoute {
	out := make(map[string]ports.DirectRoute)
	for k, r := range t.edges {
		if k.origin == origin {
			out[k.destination] = r
		}
	}
	return out
}

func (t *Table) keys(pick func(edgeKey) string) []string {
	seen := make(map[string]struct{}, len(t.edges))
	out := make([]string, 0, len(t.edges))
	for k := range t.edges {
		v := pick(k)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
