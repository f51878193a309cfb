package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var Migrations embed.FS

func withMigrationDB(connectionURL string, fn func(db *sql.DB) error) (err error) {
	db, err := goose.OpenDBWithDriver("pgx", connectionURL)
	if err != nil {
		return fmt.Errorf("failed to connect with database: %w", err)
	}

	defer func() {
		dbErr := db.Close()
		if dbErr != nil {
			if err == nil {
				err = fmt.Errorf("failed to close database connection: %w", dbErr)
			} else {
				err = fmt.Errorf("multiple errors occurred: %w, %s", err, dbErr)
			}
		}
	}()

	goose.SetBaseFS(Migrations)
	err = goose.SetDialect("postgres")
	if err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return fn(db)
}

// MigrateTo moves the schema to version, which is either "latest" or a goose
// version number. Targets below the current version are migrated down.
func MigrateTo(ctx context.Context, connectionURL string, version string) error {
	return withMigrationDB(connectionURL, func(db *sql.DB) (err error) {
		if version == "latest" {
			return goose.UpContext(ctx, db, "migrations")
		}
		target, err := strconv.ParseInt(version, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse version: %w", err)
		}
		current, err := goose.GetDBVersion(db)
		if err != nil {
			return fmt.Errorf("failed to read current version: %w", err)
		}
		if target < current {
			return goose.DownTo(db, "migrations", target)
		}
		return goose.UpToContext(ctx, db, "migrations", target)
	})
}

// RunCommand runs an arbitrary goose command (status, version, redo, ...)
// against the embedded migrations.
func RunCommand(connectionURL string, command string, args ...string) error {
	return withMigrationDB(connectionURL, func(db *sql.DB) error {
		err := goose.Run(command, db, "migrations", args...)
		if err != nil {
			return fmt.Errorf("migrate %s: %w", command, err)
		}
		return nil
	})
}
