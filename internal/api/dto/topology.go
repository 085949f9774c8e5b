package dto

type TruckResponse struct {
	ID             string  `json:"id"`
	CapacityKg     float64 `json:"capacity_kg"`
	DailyHourLimit float64 `json:"daily_hour_limit"`
}

type HubResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Location        string          `json:"location"`
	TotalCapacityKg float64         `json:"total_capacity_kg"`
	Trucks          []TruckResponse `json:"trucks"`
}

type ListHubsResponse struct {
	Hubs []HubResponse `json:"hubs"`
}

type ListDestinationsResponse struct {
	Destinations []string `json:"destinations"`
}
