package postgres

import (
	"context"
	"database/sql"

	"classifieds/migrations"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// gooseRunContext is a seam for testing goose.RunContext.
var gooseRunContext = func(ctx context.Context, command string, db *sql.DB, dir string, args ...string) error {
	return goose.RunContext(ctx, command, db, dir, args...)
}

// Migrate applies every pending embedded migration.
func Migrate(ctx context.Context, db *sql.DB) error {
	return RunMigrations(ctx, db, "up")
}

// RunMigrations executes a goose command (up, down, status, version, ...) against the embedded migrations.
func RunMigrations(ctx context.Context, db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := gooseRunContext(ctx, command, db, ".", args...); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}

	return nil
}
