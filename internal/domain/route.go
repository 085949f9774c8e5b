package domain

// Why an order ended a run without a truck.
type UnallocatedReason string

const (
	ReasonNoRoute UnallocatedReason = "no route to destination"
	ReasonNoTruck UnallocatedReason = "no truck available"
)

// Represents one direct hop of a truck route.
type Leg struct {
	From          string
	To            string
	DistanceKm    float64
	DurationHours float64
}

// A Stop is the delivery of one order at the end of a leg.
type Stop struct {
	Order Order
	Leg   Leg
}

// Represents the planned route for a single truck in one pass.
// Stops are in route order; the first leg starts at the hub location.
type TruckRoute struct {
	TruckID            string
	CapacityKg         float64
	LoadKg             float64
	Stops              []Stop
	TotalDistanceKm    float64
	TotalDurationHours float64
}

// Used reports whether the truck carries at least one order.
func (r TruckRoute) Used() bool { return len(r.Stops) > 0 }

// An order that could not be placed on any truck.
// HubID is empty when no hub had a direct route to the destination.
type Unallocated struct {
	Order  Order
	HubID  string
	Reason UnallocatedReason
}

// Result of packing one hub's fleet. Trucks holds the updated fleet copies
// (load and route set); Routes holds one entry per truck, in fleet order.
type HubAllocation struct {
	HubID       string
	HubName     string
	Location    string
	Pending     int
	Trucks      []Truck
	Routes      []TruckRoute
	Unallocated []Unallocated
}

func (a HubAllocation) AllocatedCount() int {
	n := 0
	for _, r := range a.Routes {
		n += len(r.Stops)
	}
	return n
}

// Aggregated outcome of one allocation run.
// Hubs follows the input hub order and includes hubs that received no orders.
type RunReport struct {
	RunID           string
	Hubs            []HubAllocation
	Allocated       int
	Unallocated     []Unallocated
	TotalDistanceKm float64
}
