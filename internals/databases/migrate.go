package database

import (
	"errors"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations applies pending SQL migrations from ./migrations.
// Must be called after ConnectDB; schema changes (including the partial
// unique indexes that back idempotent trip→revenue creation) live in SQL,
// not in GORM AutoMigrate.
func RunMigrations() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("❌ migrate: get sql.DB: %v", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		log.Fatalf("❌ migrate: driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		log.Fatalf("❌ migrate: init: %v", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("❌ migrate: up: %v", err)
	}
	log.Println("✅ Migrations up to date.")
}
