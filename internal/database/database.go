package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/svidal/rutinas-api/internal/config"
	"github.com/svidal/rutinas-api/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the database, retrying a bounded number of times with a
// fixed delay between attempts, then creates any missing tables. The caller
// cannot serve requests without a database, so exhausting the attempts is a
// hard failure.
func NewDatabase(cfg config.Database) (*Database, error) {
	attempts := cfg.MaxConnectAttempts
	if attempts < 1 {
		attempts = 1
	}

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err = gorm.Open(sqlite.Open(dsn(cfg.Path)), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Warn),
			TranslateError: true,
		})
		if err == nil {
			break
		}
		log.Printf("Database connection attempt %d/%d failed: %v", attempt, attempts, err)
		if attempt < attempts {
			time.Sleep(cfg.ConnectRetryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	// Idempotent schema creation, safe on every startup
	err = db.AutoMigrate(
		&entities.Rutina{},
		&entities.Ejercicio{},
		&entities.User{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", cfg.Path)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// dsn enables sqlite foreign key enforcement so the declared
// ON DELETE CASCADE on ejercicios actually fires.
func dsn(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_fk=1"
	}
	return path + "?_fk=1"
}
