package config

import "os"

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string
	DatabaseURL string
	SeedDemo    bool
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("MURIMA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	// Empty DATABASE_URL selects the in-memory store; set it to run against
	// PostgreSQL.
	databaseURL := os.Getenv("DATABASE_URL")

	seed := os.Getenv("MURIMA_SEED_DEMO") == "true"

	return Server{
		Addr:        addr,
		DatabaseURL: databaseURL,
		SeedDemo:    seed,
	}
}
