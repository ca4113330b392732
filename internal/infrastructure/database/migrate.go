package database

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"giftlist-backend/pkg/logger"
)

// Migrate applies pending schema migrations from migrationsDir. golang-migrate
// needs a database/sql handle, so a short-lived lib/pq connection is opened
// next to the pgx pool and closed when migrations finish.
func (db *PostgresDB) Migrate(migrationsDir string) error {
	sqlDB, err := sql.Open("postgres", db.connectionString())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer sqlDB.Close()

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsDir,
		db.Config.DBName,
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations applied", map[string]interface{}{"dir": migrationsDir})
	return nil
}
