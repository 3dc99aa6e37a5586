package main

import (
	"context"
	"exercise-tracker/confs"
	"exercise-tracker/server"
	"log"

	"github.com/gin-gonic/gin"
)

func main() {
	// load config
	cfg, err := confs.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// connect to the configured store
	store, closer, err := server.OpenStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer closer.Close()

	log.Printf("Your app is listening on port %s (store: %s)", cfg.Port, cfg.DBDriver)
	if err := server.NewServer(cfg, store).Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
