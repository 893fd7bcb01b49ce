package cmd

import (
	"fmt"

	"fooddelivery/internal/adapters/out/flatfile"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/core/ports"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenStorage returns the unit of work factory for the configured driver.
// The postgres driver migrates its tables before returning.
func OpenStorage(cfg Config) (ports.UnitOfWorkFactory, error) {
	switch cfg.StorageDriver {
	case StorageDriverFile, "":
		factory, err := flatfile.NewUnitOfWorkFactory(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open data dir: %w", err)
		}
		return factory, nil
	case StorageDriverPostgres:
		db, err := gorm.Open(gormpostgres.Open(cfg.PostgresDSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := postgres.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		return postgres.NewGormUnitOfWorkFactory(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
