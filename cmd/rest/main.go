package main

import (
	"context"
	"log"

	"teamspace-be/internal/bootstrap"
	"teamspace-be/internal/config"
	"teamspace-be/internal/server"
	"teamspace-be/internal/tracer"
	"teamspace-be/pkg/database"
)

func main() {
	// 1. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load configuration
	cfg := config.Load()

	// 3. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.NatsPublisher.Close()

	// 5. Start background mail consumer
	go func() {
		log.Println("Background: Starting Mail Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
