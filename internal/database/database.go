package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Brandon-Mardis/Equip/internal/config"
)

// NormalizeURL rewrites the postgres:// scheme some platforms emit to the
// postgresql:// scheme the driver expects.
func NormalizeURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

// Open creates a PostgreSQL connection with basic pool tuning.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormLogger := logger.Default
	if !cfg.LogMode {
		gormLogger = gormLogger.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(NormalizeURL(cfg.URL)), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}

	// connection pool
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
