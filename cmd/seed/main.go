package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"pulse/internal/config"
	"pulse/internal/db"
	"pulse/internal/repository"
	"pulse/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[CONFIG] .env not loaded: %v", err)
	}

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	gormDB, err := db.Open(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Make sure the catalog tables exist
	if err := db.AutoMigrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	seeder := service.NewSeedService(repository.NewCourseRepository(gormDB))

	seed := service.DefaultCatalog()
	if cfg.App.CatalogURL != "" {
		log.Printf("Fetching catalog from: %s", cfg.App.CatalogURL)
		seed, err = seeder.FetchCatalog(ctx, cfg.App.CatalogURL)
		if err != nil {
			log.Fatalf("Failed to fetch catalog: %v", err)
		}
	} else {
		log.Println("APP_CATALOG_URL not set, seeding the built-in catalog")
	}
	log.Printf("Loaded %d courses and %d discipline states", len(seed.Courses), len(seed.DisciplineStates))

	res, err := seeder.SeedCatalog(ctx, seed)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Courses upserted: %d", res.Courses)
	log.Printf("  - Discipline states upserted: %d", res.DisciplineStates)
	log.Printf("  - Entries skipped: %d", res.Skipped)
}
