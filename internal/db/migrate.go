package db

import (
	"embed"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/cascade-admin/locations/internal/config"
)

//go:embed migrations/mysql/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Migrate applies all pending migrations for the given driver.
func Migrate(dbConn *sqlx.DB, driver string) error {
	dir, dialect, err := migrationSource(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	if err := goose.Up(dbConn.DB, dir); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}

// MigrationVersion returns the current schema version.
func MigrationVersion(dbConn *sqlx.DB, driver string) (int64, error) {
	_, dialect, err := migrationSource(driver)
	if err != nil {
		return 0, err
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return 0, errors.Wrap(err, "set goose dialect")
	}

	return goose.GetDBVersion(dbConn.DB)
}

func migrationSource(driver string) (string, string, error) {
	switch driver {
	case config.DriverMySQL:
		return "migrations/mysql", "mysql", nil
	case config.DriverSQLite:
		return "migrations/sqlite", "sqlite3", nil
	default:
		return "", "", errors.Errorf("no migrations for driver %q", driver)
	}
}
