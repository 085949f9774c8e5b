package services

import (
	"context"
	"errors"
	"hub-allocation-service/internal/domain"
	"hub-allocation-service/internal/platform/obs"
	"hub-allocation-service/internal/ports"
	"sync"

	"github.com/google/uuid"
)

// Allocator runs the two-stage allocation: nearest hub per order, then one
// greedy Pack per hub.
//
// Workers > 1 packs hubs concurrently, one hub per goroutine. Hubs share no
// trucks or orders and the route table is only read, so the report is the
// same as a sequential run.
type Allocator struct {
	Table   ports.RouteTable
	Workers int
}

func NewAllocator(table ports.RouteTable, workers int) *Allocator {
	return &Allocator{Table: table, Workers: workers}
}

// Run allocates orders over hubs and returns the aggregated report.
//
// Orders no hub can reach are unallocated with ReasonNoRoute; an empty hub
// list therefore leaves every order unallocated. The only errors are a missing
// route table and context cancellation.
func (a *Allocator) Run(
	ctx context.Context,
	hubs []domain.Hub,
	orders []domain.Order,
) (_ *domain.RunReport, err error) {
	defer obs.Time(ctx, "allocate.Run")(&err)

	if a.Table == nil {
		return nil, errors.New("allocate: route table is nil")
	}

	report := &domain.RunReport{RunID: uuid.NewString()}

	pending := make([][]domain.Order, len(hubs))
	for _, o := range orders {
		i, _, ok := nearestHubIndex(o.Destination, hubs, a.Table)
		if !ok {
			report.Unallocated = append(report.Unallocated, domain.Unallocated{
				Order:  o,
				Reason: domain.ReasonNoRoute,
			})
			continue
		}
		pending[i] = append(pending[i], o)
	}

	allocs, err := a.packAll(ctx, hubs, pending)
	if err != nil {
		return nil, err
	}

	report.Hubs = allocs
	for _, alloc := range allocs {
		report.Allocated += alloc.AllocatedCount()
		report.Unallocated = append(report.Unallocated, alloc.Unallocated...)
		for _, r := range alloc.Routes {
			report.TotalDistanceKm += r.TotalDistanceKm
		}
	}

	return report, nil
}

func (a *Allocator) packAll(
	ctx context.Context,
	hubs []domain.Hub,
	pending [][]domain.Order,
) ([]domain.HubAllocation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]domain.HubAllocation, len(hubs))

	if a.Workers <= 1 {
		for i, hub := range hubs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = a.packHub(hub, pending[i])
		}
		return results, nil
	}

	sem := make(chan struct{}, a.Workers)
	var wg sync.WaitGroup

	for i, hub := range hubs {
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int, hub domain.Hub) {
			defer wg.Done()
			defer func() { <-sem }()

			// Each index is written by exactly one goroutine.
			results[i] = a.packHub(hub, pending[i])
		}(i, hub)
	}

	wg.Wait()
	return results, nil
}

// packHub skips Pack for hubs that received no orders and reports their
// fleet idle.
func (a *Allocator) packHub(hub domain.Hub, orders []domain.Order) domain.HubAllocation {
	if len(orders) > 0 {
		return Pack(hub, orders, a.Table)
	}

	idle := domain.HubAllocation{
		HubID:    hub.ID,
		HubName:  hub.Name,
		Location: hub.Location,
		Trucks:   make([]domain.Truck, 0, len(hub.Trucks)),
	}
	for _, t := range hub.Trucks {
		truck := t.Clone()
		truck.Reset()
		idle.Trucks = append(idle.Trucks, truck)
	}
	return idle
}
