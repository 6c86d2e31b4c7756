package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"classifieds/config"
	"classifieds/internal/infra/persistence/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
)

// Supported commands are those of goose: up, up-by-one, up-to, down, down-to, redo, reset, status, version.

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, flag.Arg(0), flag.Args()[1:]...); err != nil {
		slog.Error("Migration failed", slog.String("command", flag.Arg(0)), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args ...string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		return errors.Wrap(err, "failed to open PostgreSQL")
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	return postgres.RunMigrations(ctx, db, command, args...)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <command> [args]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  up         Apply all pending migrations")
	fmt.Fprintln(os.Stderr, "  down       Roll back the latest migration")
	fmt.Fprintln(os.Stderr, "  status     Print the state of every migration")
	fmt.Fprintln(os.Stderr, "  version    Print the current schema version")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Connection settings come from config/config.yaml, DB_USER and DB_PASSWORD.")
}
