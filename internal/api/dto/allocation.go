package dto

import "time"

type OrderRequest struct {
	ID          string  `json:"id" validate:"required"`
	Destination string  `json:"destination" validate:"required"`
	Deadline    string  `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	WeightKg    float64 `json:"weight_kg" validate:"gt=0"`
	Note        string  `json:"note"`
}

type AllocationRequest struct {
	Orders []OrderRequest `json:"orders" validate:"dive"`
}

type OrderResponse struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Deadline    time.Time `json:"deadline"`
	WeightKg    float64   `json:"weight_kg"`
	Note        string    `json:"note,omitempty"`
}

type LegResponse struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DistanceKm    float64 `json:"distance_km"`
	DurationHours float64 `json:"duration_hours"`
}

type StopResponse struct {
	Order OrderResponse `json:"order"`
	Leg   LegResponse   `json:"leg"`
}

type TruckRouteResponse struct {
	TruckID            string         `json:"truck_id"`
	CapacityKg         float64        `json:"capacity_kg"`
	LoadKg             float64        `json:"load_kg"`
	TotalDistanceKm    float64        `json:"total_distance_km"`
	TotalDurationHours float64        `json:"total_duration_hours"`
	Stops              []StopResponse `json:"stops"`
}

type HubAllocationResponse struct {
	HubID     string               `json:"hub_id"`
	HubName   string               `json:"hub_name"`
	Location  string               `json:"location"`
	Pending   int                  `json:"pending"`
	Allocated int                  `json:"allocated"`
	Routes    []TruckRouteResponse `json:"routes"`
}

type UnallocatedResponse struct {
	Order  OrderResponse `json:"order"`
	HubID  string        `json:"hub_id,omitempty"`
	Reason string        `json:"reason"`
}

type AllocationResponse struct {
	RunID           string                  `json:"run_id"`
	Allocated       int                     `json:"allocated"`
	TotalDistanceKm float64                 `json:"total_distance_km"`
	Hubs            []HubAllocationResponse `json:"hubs"`
	Unallocated     []UnallocatedResponse   `json:"unallocated"`
}
