package main

import (
	"context"
	"database/sql"
	"hub-allocation-service/internal/adapters/cache"
	"hub-allocation-service/internal/adapters/repositories"
	"hub-allocation-service/internal/adapters/topology"
	"hub-allocation-service/internal/config"
	"hub-allocation-service/internal/platform/db"
	"log"
	"strings"
)

// dbtool prepares a Postgres database for the server: schema, seed orders
// and the route edges of the configured topology.
func main() {
	config.LoadEnv()
	cfg := config.Load()

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	conn, err := db.Open(db.Postgres, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	topo, err := topology.Load(cfg.TopologyPath)
	if err != nil {
		log.Fatal(err)
	}

	initAndSeed(context.Background(), conn, cfg.OrdersSeedPath, topo)
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string, topo *topology.Topology) {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding orders...")
	if err := repositories.SeedOrdersFromJSON(ctx, conn, db.Postgres, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	edges := topo.Edges()
	log.Printf("Storing route edges count=%d...", len(edges))
	if err := cache.NewSQLRouteStore(conn, db.Postgres).PutEdges(ctx, edges); err != nil {
		log.Fatalf("storing route edges failed: %v", err)
	}
	log.Println("Seeding complete.")
}
