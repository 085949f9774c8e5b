package domain

// Represents a distribution hub owning a fleet of trucks.
// Location is the canonical key used to look up direct routes; it is the
// origin of every route produced for this hub's trucks.
type Hub struct {
	ID       string
	Name     string
	Location string
	Trucks   []Truck
}

// Clone returns a deep copy of the hub so a run can work on its own fleet.
func (h Hub) Clone() Hub {
	trucks := make([]Truck, len(h.Trucks))
	for i, t := range h.Trucks {
		trucks[i] = t.Clone()
	}
	h.Trucks = trucks
	return h
}

func (h Hub) TotalCapacityKg() float64 {
	var total float64
	for _, t := range h.Trucks {
		total += t.CapacityKg
	}
	return total
}
