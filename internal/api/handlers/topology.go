package handlers

import (
	"hub-allocation-service/internal/api/dto"
	"hub-allocation-service/internal/ports"
	"net/http"
)

// TopologyHandler exposes the static hub fleet and destination keys.
type TopologyHandler struct {
	Topology ports.Topology
}

func (h *TopologyHandler) Hubs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	hubs := h.Topology.Hubs()
	res := dto.ListHubsResponse{Hubs: make([]dto.HubResponse, 0, len(hubs))}
	for _, hub := range hubs {
		trucks := make([]dto.TruckResponse, 0, len(hub.Trucks))
		for _, t := range hub.Trucks {
			trucks = append(trucks, dto.TruckResponse{
				ID:             t.ID,
				CapacityKg:     t.CapacityKg,
				DailyHourLimit: t.DailyHourLimit,
			})
		}
		res.Hubs = append(res.Hubs, dto.HubResponse{
			ID:              hub.ID,
			Name:            hub.Name,
			Location:        hub.Location,
			TotalCapacityKg: hub.TotalCapacityKg(),
			Trucks:          trucks,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *TopologyHandler) Destinations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListDestinationsResponse{
		Destinations: h.Topology.Destinations(),
	})
}
