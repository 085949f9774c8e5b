package bench

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"hub-allocation-service/internal/adapters/topology"
	"hub-allocation-service/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestSyntheticOrders(t *testing.T) {
	dests := []string{"A", "B"}
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

	got := SyntheticOrders(rand.New(rand.NewSource(7)), dests, 50, now)
	require.Len(t, got, 50)
	assert.Equal(t, "E0001", got[0].ID)
	assert.Equal(t, "E0050", got[49].ID)
	for _, o := range got {
		assert.Contains(t, dests, o.Destination)
		assert.GreaterOrEqual(t, o.WeightKg, float64(MinWeightKg))
		assert.Less(t, o.WeightKg, float64(MaxWeightKg))
		assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), o.Deadline)
	}

	again := SyntheticOrders(rand.New(rand.NewSource(7)), dests, 50, now)
	assert.Equal(t, got, again, "same seed, same batch")
}

func TestRun(t *testing.T) {
	topo, err := topology.Builtin()
	require.NoError(t, err)

	results, err := Run(context.Background(), topo, []int{0, 10, 100}, 2, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, r := range results {
		assert.Equal(t, r.Orders, r.Allocated+r.Unallocated)
	}

	var buf bytes.Buffer
	WriteTable(&buf, results)
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "orders=100")

	_, err = Run(context.Background(), topo, []int{-1}, 1, rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	err := RenderChart(&buf, []Result{
		{Orders: 10, Allocated: 10, Duration: 2 * time.Millisecond},
		{Orders: 100, Allocated: 90, Unallocated: 10, Duration: 5 * time.Millisecond},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Allocation run duration")
	assert.Contains(t, buf.String(), "100 orders")
}

func BenchmarkAllocatorRun(b *testing.B) {
	topo, err := topology.Builtin()
	if err != nil {
		b.Fatal(err)
	}

	for _, n := range DefaultSizes {
		batch := SyntheticOrders(rand.New(rand.NewSource(int64(n))), topo.Destinations(), n, time.Now())
		allocator := services.NewAllocator(topo.Table, 1)

		b.Run(fmt.Sprintf("orders=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := allocator.Run(context.Background(), topo.Hubs(), batch); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
