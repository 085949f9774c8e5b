package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hub-allocation-service/internal/adapters/cache"
	"hub-allocation-service/internal/adapters/repositories"
	"hub-allocation-service/internal/adapters/topology"
	"hub-allocation-service/internal/api"
	"hub-allocation-service/internal/config"
	"hub-allocation-service/internal/platform/db"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"
)

// main is the application composition root.
// It wires the topology and the SQL order source behind ports and starts the HTTP server.
func main() {
	config.LoadEnv()
	cfg := config.Load()

	dialect, err := db.ParseDialect(cfg.DBDriver)
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(dialect, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	ctx := context.Background()

	// Initialize schema and seed demo orders on startup for local runs.
	if err := initAndSeed(ctx, conn, dialect, cfg.OrdersSeedPath); err != nil {
		log.Fatal(err)
	}

	topo, err := loadTopology(ctx, conn, dialect, cfg.TopologyPath)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSQLOrderRepository(conn)
	router := api.NewRouter(topo, repo, cfg.Workers)

	log.Printf("Server listening addr=:%s driver=%s hubs=%d destinations=%d workers=%d",
		cfg.Port, dialect, len(topo.Hubs()), len(topo.Destinations()), cfg.Workers)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func initAndSeed(ctx context.Context, conn *sql.DB, dialect db.Dialect, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); errors.Is(err, fs.ErrNotExist) {
		log.Printf("No order seed file found path=%s (skipping)", seedPath)
		return nil
	}

	if err := repositories.SeedOrdersFromJSON(ctx, conn, dialect, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}

// loadTopology reads the fleet from path (or the built-in dataset) and takes
// distances from route_edges when that table has rows. An empty table is
// filled with the loaded topology's edges so later runs read them back.
func loadTopology(ctx context.Context, conn *sql.DB, dialect db.Dialect, path string) (*topology.Topology, error) {
	topo, err := topology.Load(path)
	if err != nil {
		return nil, err
	}

	store := cache.NewSQLRouteStore(conn, dialect)
	edges, err := store.LoadEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("load topology: %w", err)
	}

	if len(edges) > 0 {
		log.Printf("Using stored route edges count=%d", len(edges))
		return topo.WithEdges(edges), nil
	}

	if err := store.PutEdges(ctx, topo.Edges()); err != nil {
		return nil, fmt.Errorf("load topology: %w", err)
	}
	return topo, nil
}
