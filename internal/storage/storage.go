package storage

import (
	"fmt"

	"ordersys/internal/config"
	"ordersys/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open builds the repository selected by cfg. The returned close function releases
// any database connection and is safe to call for the memory driver.
func Open(cfg config.StorageConfig, log *zap.Logger) (repositories.Repository, func() error, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case config.DriverMemory:
		log.Info("Using in-memory repository")
		return repositories.NewMemoryRepository(), func() error { return nil }, nil
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if cfg.Driver == config.DriverSQLite {
		// sqlite allows a single writer; one connection also keeps a shared in-memory database alive.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := repositories.AutoMigrate(db); err != nil {
		sqlDB.Close()
		return nil, nil, err
	}

	log.Info("Connected to database", zap.String("driver", cfg.Driver))
	return repositories.NewGORMRepository(db), sqlDB.Close, nil
}
