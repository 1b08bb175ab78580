package main

import (
	"context"
	"log"

	"agrivoice/internal/config"
	"agrivoice/internal/db"
	"agrivoice/internal/model"
	"agrivoice/internal/repository"
	"agrivoice/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.AdvisoryEntry{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	advisoryRepo := repository.NewAdvisoryRepository(gormDB)

	created, err := advisoryRepo.Seed(context.Background(), service.SeedEntries())
	if err != nil {
		log.Fatalf("Failed to seed crop calendar: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New calendar entries created: %d", created)
}
