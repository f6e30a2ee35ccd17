package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kinesia-app/kinesia/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GlobalDB holds the singleton database connection
var GlobalDB *gorm.DB

// GetLegacyDB returns the underlying *sql.DB for legacy compatibility
func GetLegacyDB() (*sql.DB, error) {
	if GlobalDB == nil {
		return nil, fmt.Errorf("global database not initialized")
	}
	return GlobalDB.DB()
}

// NewDatabase initializes the application database from the global settings.
func NewDatabase() (*gorm.DB, error) {
	db, err := OpenDatabase(config.DBDriver, config.DBURI)
	if err == nil {
		GlobalDB = db
	}
	return db, err
}

// OpenDatabase opens a database connection for the given driver and URI.
// For SQLite the URI is a file DSN; for Postgres it is a full connection string.
func OpenDatabase(driver, uri string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver {
	case "postgres":
		dialector = postgres.Open(uri)
	case "sqlite", "": // Default to SQLite
		dialector = sqlite.Open(uri)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}

	logMode := logger.Silent
	if config.AppDebug {
		logMode = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database (%s): %w", uri, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB instance: %w", err)
	}

	if driver == "sqlite" || driver == "" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	return db, nil
}
