package domain

import "testing"

func TestTruckLoad(t *testing.T) {
	truck := NewTruck("T1", 1000, 8, "HUB")

	o1 := Order{ID: "E001", Destination: "A", WeightKg: 400}
	o2 := Order{ID: "E002", Destination: "B", WeightKg: 600}
	o3 := Order{ID: "E003", Destination: "C", WeightKg: 1}

	if err := truck.Load(o1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := truck.Load(o2); err != nil {
		t.Fatalf("load up to exact capacity: unexpected error: %v", err)
	}

	if truck.LoadKg != 1000 {
		t.Fatalf("load = %.2f, want 1000", truck.LoadKg)
	}
	if truck.RemainingKg() != 0 {
		t.Fatalf("remaining = %.2f, want 0", truck.RemainingKg())
	}

	if err := truck.Load(o3); err == nil {
		t.Fatalf("expected capacity error for order %s", o3.ID)
	}
	if len(truck.Route) != 2 {
		t.Fatalf("route length = %d, want 2", len(truck.Route))
	}

	truck.Reset()
	if truck.LoadKg != 0 || len(truck.Route) != 0 {
		t.Fatalf("reset left load=%.2f route=%d", truck.LoadKg, len(truck.Route))
	}
}

func TestHubCloneIsIndependent(t *testing.T) {
	hub := Hub{
		ID:       "H1",
		Location: "HUB",
		Trucks:   []Truck{NewTruck("T1", 100, 8, "HUB")},
	}
	if err := hub.Trucks[0].Load(Order{ID: "E001", WeightKg: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clone := hub.Clone()
	clone.Trucks[0].Reset()
	clone.Trucks[0].Route = append(clone.Trucks[0].Route, Order{ID: "E002"})

	if hub.Trucks[0].LoadKg != 10 {
		t.Errorf("original load changed to %.2f", hub.Trucks[0].LoadKg)
	}
	if len(hub.Trucks[0].Route) != 1 || hub.Trucks[0].Route[0].ID != "E001" {
		t.Errorf("original route changed: %+v", hub.Trucks[0].Route)
	}
	if hub.TotalCapacityKg() != 100 {
		t.Errorf("total capacity = %.2f, want 100", hub.TotalCapacityKg())
	}
}
