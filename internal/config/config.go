package config

import (
	"hub-allocation-service/internal/platform/db"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings shared by the binaries.
type Config struct {
	Port           string
	DBDriver       string
	DBPath         string
	DatabaseURL    string
	TopologyPath   string
	OrdersSeedPath string
	Workers        int
}

// LoadEnv reads a .env file into the process environment when present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Load reads Config from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:           Get("PORT", "8080"),
		DBDriver:       Get("DB_DRIVER", "sqlite"),
		DBPath:         Get("DB_PATH", "data/app.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		TopologyPath:   os.Getenv("TOPOLOGY_PATH"),
		OrdersSeedPath: Get("ORDERS_SEED_PATH", "data/seeds/orders.json"),
		Workers:        GetInt("ALLOC_WORKERS", 1),
	}
}

// DSN returns the connection string for the configured driver. An
// unsupported driver falls back to DBPath; db.ParseDialect reports it.
func (c Config) DSN() string {
	if d, err := db.ParseDialect(c.DBDriver); err == nil && d == db.Postgres {
		return c.DatabaseURL
	}
	return c.DBPath
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt returns fallback when key is unset or not an integer.
func GetInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid integer key=%s value=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
