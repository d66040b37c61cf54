package main

import (
	"context"
	"log"

	"proofly-be/internal/bootstrap"
	"proofly-be/internal/config"
	"proofly-be/internal/server"
	"proofly-be/internal/tracer"
	"proofly-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 3. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting key usage consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
