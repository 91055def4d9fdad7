package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/long-kr/Project-Restaurant-Reservation/config"
	"github.com/long-kr/Project-Restaurant-Reservation/models"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

func dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	case "mysql":
		return mysql.Open(cfg.DSN), nil
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
}

// Open connects to the configured database and tunes the pool.
func Open(cfg config.DatabaseConfig, logLevel string) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	mode := logger.Warn
	if logLevel == "debug" || logLevel == "trace" {
		mode = logger.Info
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.New(utils.InfoLogger, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  mode,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	utils.InfoLogger.Infof("Connected to %s database", cfg.Driver)
	return db, nil
}

// Migrate creates or updates the reservations and tables relations.
// Reservations go first: tables reference them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Reservation{}, &models.Table{}); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	if err := EnsureConstraints(db); err != nil {
		return err
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
