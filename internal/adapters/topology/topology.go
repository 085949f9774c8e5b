package topology

import (
	"errors"
	"fmt"
	"hub-allocation-service/internal/adapters/distance"
	"hub-allocation-service/internal/domain"
	"hub-allocation-service/internal/ports"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTopology = errors.New("invalid topology")

type TruckSpec struct {
	ID         string  `yaml:"id"`
	CapacityKg float64 `yaml:"capacity_kg"`
	DailyHours float64 `yaml:"daily_hours"`
}

type HubSpec struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Location string      `yaml:"location"`
	Trucks   []TruckSpec `yaml:"trucks"`
}

type EdgeSpec struct {
	Origin      string  `yaml:"origin"`
	Destination string  `yaml:"destination"`
	DistanceKm  float64 `yaml:"distance_km"`
}

// File is the YAML layout accepted by LoadYAML.
type File struct {
	Hubs  []HubSpec  `yaml:"hubs"`
	Edges []EdgeSpec `yaml:"edges"`
}

// Topology is the static input of every allocation run: the hub fleet and
// the distance table. It is read-only once built.
type Topology struct {
	Table *distance.Table
	hubs  []domain.Hub
}

// New validates hubs and builds the distance table from edges.
func New(hubs []HubSpec, edges []ports.RouteEdge) (*Topology, error) {
	if len(hubs) == 0 {
		return nil, fmt.Errorf("%w: at least one hub is required", ErrInvalidTopology)
	}

	seenHubs := make(map[string]struct{}, len(hubs))
	built := make([]domain.Hub, 0, len(hubs))
	for i, h := range hubs {
		id := strings.TrimSpace(h.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: hub at index %d has empty id", ErrInvalidTopology, i)
		}
		if _, ok := seenHubs[id]; ok {
			return nil, fmt.Errorf("%w: duplicate hub id %q", ErrInvalidTopology, id)
		}
		seenHubs[id] = struct{}{}

		loc := strings.TrimSpace(h.Location)
		if loc == "" {
			return nil, fmt.Errorf("%w: hub %q has empty location", ErrInvalidTopology, id)
		}

		hub := domain.Hub{ID: id, Name: h.Name, Location: loc}
		seenTrucks := make(map[string]struct{}, len(h.Trucks))
		for _, t := range h.Trucks {
			if t.ID == "" {
				return nil, fmt.Errorf("%w: hub %q has a truck with empty id", ErrInvalidTopology, id)
			}
			if _, ok := seenTrucks[t.ID]; ok {
				return nil, fmt.Errorf("%w: hub %q: duplicate truck id %q", ErrInvalidTopology, id, t.ID)
			}
			seenTrucks[t.ID] = struct{}{}

			if t.CapacityKg <= 0 {
				return nil, fmt.Errorf("%w: truck %q capacity must be positive", ErrInvalidTopology, t.ID)
			}
			hub.Trucks = append(hub.Trucks, domain.NewTruck(t.ID, t.CapacityKg, t.DailyHours, loc))
		}
		built = append(built, hub)
	}

	table := distance.NewTable()
	for _, e := range edges {
		table.AddEdge(e.Origin, e.Destination, e.DistanceKm)
	}

	return &Topology{Table: table, hubs: built}, nil
}

// Hubs returns a fresh copy of the fleet; each run gets its own trucks.
func (t *Topology) Hubs() []domain.Hub {
	out := make([]domain.Hub, len(t.hubs))
	for i, h := range t.hubs {
		out[i] = h.Clone()
	}
	return out
}

func (t *Topology) Routes() ports.RouteTable { return t.Table }

// Destinations returns the sorted location keys an order may target.
func (t *Topology) Destinations() []string {
	return t.Table.Destinations()
}

// Edges lists the distance table, sorted by origin then destination.
func (t *Topology) Edges() []ports.RouteEdge {
	var out []ports.RouteEdge
	for _, origin := range t.Table.Origins() {
		routes := t.Table.From(origin)
		dests := make([]string, 0, len(routes))
		for d := range routes {
			dests = append(dests, d)
		}
		sort.Strings(dests)
		for _, d := range dests {
			out = append(out, ports.RouteEdge{
				Origin:      origin,
				Destination: d,
				DistanceKm:  routes[d].DistanceKm,
			})
		}
	}
	return out
}

// Parse decodes a YAML topology document.
func Parse(b []byte) (*Topology, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse topology: %w", err)
	}

	edges := make([]ports.RouteEdge, 0, len(f.Edges))
	for _, e := range f.Edges {
		edges = append(edges, ports.RouteEdge{
			Origin:      e.Origin,
			Destination: e.Destination,
			DistanceKm:  e.DistanceKm,
		})
	}

	t, err := New(f.Hubs, edges)
	if err != nil {
		return nil, fmt.Errorf("parse topology: %w", err)
	}
	return t, nil
}

func LoadYAML(path string) (*Topology, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load topology: read %q: %w", path, err)
	}

	t, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("load topology %q: %w", path, err)
	}
	return t, nil
}

// Load returns the YAML topology at path, or the built-in dataset when path
// is empty.
func Load(path string) (*Topology, error) {
	if strings.TrimSpace(path) == "" {
		return Builtin()
	}
	return LoadYAML(path)
}

// WithEdges returns a topology with the same fleet and a distance table
// built from edges instead.
func (t *Topology) WithEdges(edges []ports.RouteEdge) *Topology {
	table := distance.NewTable()
	for _, e := range edges {
		table.AddEdge(e.Origin, e.Destination, e.DistanceKm)
	}
	return &Topology{Table: table, hubs: t.hubs}
}
