package database

import (
	"eperson-backend/internal/config"

	"gorm.io/gorm"
)

// Open initializes the database described by cfg
func Open(cfg *config.Config) (*gorm.DB, error) {
	return Initialize(cfg.DatabaseURL, &Options{
		Driver:       cfg.DatabaseDriver,
		LogLevel:     LogLevel(cfg.LogLevel),
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
		RegistryFile: cfg.MetadataRegistryFile,
	})
}
