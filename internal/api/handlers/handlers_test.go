package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"hub-allocation-service/internal/adapters/topology"
	"hub-allocation-service/internal/api/dto"
	"hub-allocation-service/internal/domain"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	orders []domain.Order
	err    error
}

func (s stubRepo) ListOrders(context.Context) ([]domain.Order, error) {
	return s.orders, s.err
}

func newAllocationHandler(t *testing.T, repo *stubRepo) *AllocationHandler {
	t.Helper()
	topo, err := topology.Builtin()
	require.NoError(t, err)

	h := &AllocationHandler{
		Topology: topo,
		Workers:  1,
		Validate: NewValidator(),
		Now:      func() time.Time { return time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC) },
	}
	if repo != nil {
		h.Repo = repo
	}
	return h
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/allocations", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAllocate_AllocatesAndReportsUnroutable(t *testing.T) {
	h := newAllocationHandler(t, nil)

	rec := postJSON(t, h.Allocate, `{"orders":[
		{"id":"A1","destination":"Recife (PE)","weight_kg":100},
		{"id":"A2","destination":"Atlantis","weight_kg":5,"deadline":"2024-06-01"}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.AllocationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 1, res.Allocated)
	assert.Len(t, res.Hubs, 5)
	require.Len(t, res.Unallocated, 1)
	assert.Equal(t, "A2", res.Unallocated[0].Order.ID)
	assert.Equal(t, string(domain.ReasonNoRoute), res.Unallocated[0].Reason)

	var rec1 *dto.HubAllocationResponse
	for i := range res.Hubs {
		if res.Hubs[i].HubID == "CD_REC" {
			rec1 = &res.Hubs[i]
		}
	}
	require.NotNil(t, rec1)
	assert.Equal(t, 1, rec1.Allocated)
	require.NotEmpty(t, rec1.Routes)
	require.Len(t, rec1.Routes[0].Stops, 1)
	stop := rec1.Routes[0].Stops[0]
	assert.Equal(t, "A1", stop.Order.ID)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), stop.Order.Deadline.UTC())
	assert.Equal(t, 0.0, stop.Leg.DistanceKm)
}

func TestAllocate_RejectsBadRequests(t *testing.T) {
	h := newAllocationHandler(t, nil)

	cases := map[string]string{
		"invalid json":     `{"orders":`,
		"unknown field":    `{"orders":[],"extra":1}`,
		"two objects":      `{"orders":[]}{"orders":[]}`,
		"missing id":       `{"orders":[{"destination":"Recife (PE)","weight_kg":1}]}`,
		"zero weight":      `{"orders":[{"id":"X","destination":"Recife (PE)","weight_kg":0}]}`,
		"bad deadline":     `{"orders":[{"id":"X","destination":"Recife (PE)","weight_kg":1,"deadline":"10/05/2024"}]}`,
		"duplicate ids":    `{"orders":[{"id":"X","destination":"Recife (PE)","weight_kg":1},{"id":"X","destination":"Natal (RN)","weight_kg":1}]}`,
		"missing location": `{"orders":[{"id":"X","weight_kg":1}]}`,
		"blank id":         `{"orders":[{"id":"   ","destination":"Recife (PE)","weight_kg":1}]}`,
		"blank location":   `{"orders":[{"id":"X","destination":" ","weight_kg":1}]}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postJSON(t, h.Allocate, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestAllocate_ValidationMessageUsesJSONNames(t *testing.T) {
	h := newAllocationHandler(t, nil)

	rec := postJSON(t, h.Allocate, `{"orders":[{"id":"X","destination":"Recife (PE)","weight_kg":-1}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "orders[0].weight_kg")
}

func TestAllocate_MethodNotAllowed(t *testing.T) {
	h := newAllocationHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Allocate(rec, httptest.NewRequest(http.MethodGet, "/allocations", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestAllocateStored(t *testing.T) {
	deadline := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &stubRepo{orders: []domain.Order{
		{ID: "S1", Destination: "Brasília (DF)", Deadline: deadline, WeightKg: 500},
		{ID: "S2", Destination: "Goiânia (GO)", Deadline: deadline, WeightKg: 500},
	}}
	h := newAllocationHandler(t, repo)

	rec := postJSON(t, h.AllocateStored, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res dto.AllocationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Allocated)
	assert.Empty(t, res.Unallocated)
}

func TestAllocateStored_Errors(t *testing.T) {
	t.Run("no repository", func(t *testing.T) {
		h := newAllocationHandler(t, nil)
		rec := postJSON(t, h.AllocateStored, "")
		assert.Equal(t, http.StatusNotImplemented, rec.Code)
	})

	t.Run("repository failure", func(t *testing.T) {
		h := newAllocationHandler(t, &stubRepo{err: errors.New("boom")})
		rec := postJSON(t, h.AllocateStored, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}

func TestTopologyHandler(t *testing.T) {
	topo, err := topology.Builtin()
	require.NoError(t, err)
	h := &TopologyHandler{Topology: topo}

	rec := httptest.NewRecorder()
	h.Hubs(rec, httptest.NewRequest(http.MethodGet, "/hubs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var hubs dto.ListHubsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hubs))
	require.Len(t, hubs.Hubs, 5)
	assert.Equal(t, "CD_BEL", hubs.Hubs[0].ID)
	assert.Len(t, hubs.Hubs[0].Trucks, 3)
	assert.Equal(t, 999.0+5999+9999, hubs.Hubs[0].TotalCapacityKg)

	rec = httptest.NewRecorder()
	h.Destinations(rec, httptest.NewRequest(http.MethodGet, "/destinations", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var dests dto.ListDestinationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dests))
	assert.Len(t, dests.Destinations, 27)
	assert.Contains(t, dests.Destinations, "Recife (PE)")

	rec = httptest.NewRecorder()
	h.Hubs(rec, httptest.NewRequest(http.MethodPost, "/hubs", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
