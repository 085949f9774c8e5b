package domain

import "fmt"

// Delivery truck holding the orders of a single allocation pass.
// LoadKg and Route are transient: they are reset at the start of every pass
// and never accumulate across runs. DailyHourLimit is informational only.
type Truck struct {
	ID             string
	CapacityKg     float64
	DailyHourLimit float64
	HubLocation    string
	LoadKg         float64
	Route          []Order
}

func NewTruck(id string, capacityKg, dailyHourLimit float64, hubLocation string) Truck {
	return Truck{
		ID:             id,
		CapacityKg:     capacityKg,
		DailyHourLimit: dailyHourLimit,
		HubLocation:    hubLocation,
	}
}

// Fits reports whether the order can be carried without exceeding capacity.
func (t *Truck) Fits(o Order) bool {
	return t.LoadKg+o.WeightKg <= t.CapacityKg
}

// Load a single order onto the truck, appending it to the route.
func (t *Truck) Load(o Order) error {
	if !t.Fits(o) {
		return fmt.Errorf(
			"load truck: truck %s cannot carry order %s (load=%.2f weight=%.2f capacity=%.2f)",
			t.ID, o.ID, t.LoadKg, o.WeightKg, t.CapacityKg,
		)
	}
	t.Route = append(t.Route, o)
	t.LoadKg += o.WeightKg
	return nil
}

func (t *Truck) RemainingKg() float64 {
	return t.CapacityKg - t.LoadKg
}

// Unload all orders from the truck.
func (t *Truck) Reset() {
	t.LoadKg = 0
	t.Route = nil
}

// Clone returns a copy that shares no route storage with t.
func (t Truck) Clone() Truck {
	if t.Route != nil {
		t.Route = append([]Order(nil), t.Route...)
	}
	return t
}
