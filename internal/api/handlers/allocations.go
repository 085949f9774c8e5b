package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"hub-allocation-service/internal/adapters/orders"
	"hub-allocation-service/internal/api/dto"
	"hub-allocation-service/internal/domain"
	"hub-allocation-service/internal/ports"
	"hub-allocation-service/internal/services"
	"io"
	"log"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// AllocationHandler runs allocation passes over the static topology.
// Every request gets a fresh fleet; nothing is kept between requests.
type AllocationHandler struct {
	Topology ports.Topology
	Repo     ports.OrderRepository
	Workers  int
	Validate *validator.Validate
	Now      func() time.Time
}

// NewValidator returns a validator reporting fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Allocate allocates the orders in the request body.
// Unknown destinations are not rejected: they are reported as unallocated.
func (h *AllocationHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.AllocationRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	for i := range req.Orders {
		req.Orders[i].ID = strings.TrimSpace(req.Orders[i].ID)
		req.Orders[i].Destination = strings.TrimSpace(req.Orders[i].Destination)
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	batch, err := h.toOrders(req.Orders)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	h.run(w, r, batch)
}

// AllocateStored allocates every order of the order repository.
func (h *AllocationHandler) AllocateStored(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusNotImplemented, "no order repository configured")
		return
	}

	batch, err := h.Repo.ListOrders(r.Context())
	if err != nil {
		log.Printf("list orders failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := orders.Validate(batch, nil); err != nil {
		log.Printf("stored orders invalid: %v", err)
		writeError(w, r, http.StatusInternalServerError, "stored orders are invalid")
		return
	}

	h.run(w, r, batch)
}

func (h *AllocationHandler) run(w http.ResponseWriter, r *http.Request, batch []domain.Order) {
	allocator := services.NewAllocator(h.Topology.Routes(), h.Workers)
	report, err := allocator.Run(r.Context(), h.Topology.Hubs(), batch)
	if err != nil {
		log.Printf("allocation run failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	log.Printf("allocation run_id=%s orders=%d allocated=%d unallocated=%d",
		report.RunID, len(batch), report.Allocated, len(report.Unallocated))

	writeJSON(w, r, http.StatusOK, toAllocationResponse(report))
}

func (h *AllocationHandler) toOrders(reqs []dto.OrderRequest) ([]domain.Order, error) {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	fallback := orders.DefaultDeadline(now())

	out := make([]domain.Order, 0, len(reqs))
	for _, o := range reqs {
		deadline := fallback
		if o.Deadline != "" {
			d, err := time.Parse("2006-01-02", o.Deadline)
			if err != nil {
				return nil, fmt.Errorf("order %q: invalid deadline", o.ID)
			}
			deadline = d
		}
		out = append(out, domain.Order{
			ID:          o.ID,
			Destination: o.Destination,
			Deadline:    deadline,
			WeightKg:    o.WeightKg,
			Note:        o.Note,
		})
	}

	if err := orders.Validate(out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "AllocationRequest.")
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", field, fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

func toOrderResponse(o domain.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:          o.ID,
		Destination: o.Destination,
		Deadline:    o.Deadline,
		WeightKg:    o.WeightKg,
		Note:        o.Note,
	}
}

func toAllocationResponse(r *domain.RunReport) dto.AllocationResponse {
	res := dto.AllocationResponse{
		RunID:           r.RunID,
		Allocated:       r.Allocated,
		TotalDistanceKm: r.TotalDistanceKm,
		Hubs:            make([]dto.HubAllocationResponse, 0, len(r.Hubs)),
		Unallocated:     make([]dto.UnallocatedResponse, 0, len(r.Unallocated)),
	}

	for _, h := range r.Hubs {
		hub := dto.HubAllocationResponse{
			HubID:     h.HubID,
			HubName:   h.HubName,
			Location:  h.Location,
			Pending:   h.Pending,
			Allocated: h.AllocatedCount(),
			Routes:    make([]dto.TruckRouteResponse, 0, len(h.Routes)),
		}
		for _, tr := range h.Routes {
			stops := make([]dto.StopResponse, 0, len(tr.Stops))
			for _, s := range tr.Stops {
				stops = append(stops, dto.StopResponse{
					Order: toOrderResponse(s.Order),
					Leg: dto.LegResponse{
						From:          s.Leg.From,
						To:            s.Leg.To,
						DistanceKm:    s.Leg.DistanceKm,
						DurationHours: s.Leg.DurationHours,
					},
				})
			}
			hub.Routes = append(hub.Routes, dto.TruckRouteResponse{
				TruckID:            tr.TruckID,
				CapacityKg:         tr.CapacityKg,
				LoadKg:             tr.LoadKg,
				TotalDistanceKm:    tr.TotalDistanceKm,
				TotalDurationHours: tr.TotalDurationHours,
				Stops:              stops,
			})
		}
		res.Hubs = append(res.Hubs, hub)
	}

	for _, u := range r.Unallocated {
		res.Unallocated = append(res.Unallocated, dto.UnallocatedResponse{
			Order:  toOrderResponse(u.Order),
			HubID:  u.HubID,
			Reason: string(u.Reason),
		})
	}

	return res
}
