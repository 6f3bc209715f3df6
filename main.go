package main

import (
	"github.com/joho/godotenv"

	"github.com/svidal/rutinas-api/internal/config"
	"github.com/svidal/rutinas-api/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	// A local .env is optional; deployed environments set variables directly
	_ = godotenv.Load()

	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
