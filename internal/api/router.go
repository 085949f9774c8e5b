package api

import (
	"hub-allocation-service/internal/api/handlers"
	"hub-allocation-service/internal/ports"
	"net/http"
)

// NewRouter mounts the API on a ServeMux. Handlers see only ports;
// repo may be nil, which disables POST /allocations/stored.
func NewRouter(topo ports.Topology, repo ports.OrderRepository, workers int) http.Handler {
	mux := http.NewServeMux()

	topoHandler := &handlers.TopologyHandler{Topology: topo}
	allocHandler := &handlers.AllocationHandler{
		Topology: topo,
		Repo:     repo,
		Workers:  workers,
		Validate: handlers.NewValidator(),
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/hubs", topoHandler.Hubs)
	mux.HandleFunc("/destinations", topoHandler.Destinations)
	mux.HandleFunc("/allocations", allocHandler.Allocate)
	mux.HandleFunc("/allocations/stored", allocHandler.AllocateStored)

	return requestIDMiddleware(loggingMiddleware(mux))
}
