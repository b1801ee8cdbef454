package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"eperson-backend/internal/config"
	"eperson-backend/internal/database"
	"eperson-backend/internal/logger"
	"eperson-backend/internal/repository"
	"eperson-backend/internal/seed"
	"eperson-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	log.Println("Loading initial data from YAML files...")

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel, os.Stdout)

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	v := validator.New()
	repos := repository.NewRepositories(db)
	groups := service.NewGroupService(repos, repository.NewGormTransactor(db, repos), v, cfg.GroupSearchFields)
	epersons := service.NewEPersonService(repos.EPeople, v)

	result, err := seed.NewLoader(groups, epersons).LoadDir(context.Background(), dataDir)
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Printf("Initial data loaded: %d epersons, %d groups created; %d memberships, %d subgroups added",
		result.EPeopleCreated, result.GroupsCreated, result.MembersAdded, result.SubgroupsAdded)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress SQL logging and "record not found" noise during data loading
	opts := &database.Options{
		Driver:       cfg.DatabaseDriver,
		LogLevel:     gormlogger.Silent,
		RegistryFile: cfg.MetadataRegistryFile,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
