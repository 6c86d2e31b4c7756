package postgres

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"classifieds/migrations"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsPresent(t *testing.T) {
	files, err := fs.Glob(migrations.Migrations, "*.sql")
	require.NoError(t, err)
	assert.NotEmpty(t, files)
}

func TestMigrate_RunsUpOnEmbeddedDir(t *testing.T) {
	orig := gooseRunContext
	t.Cleanup(func() { gooseRunContext = orig })

	var gotCommand, gotDir string
	gooseRunContext = func(_ context.Context, command string, _ *sql.DB, dir string, _ ...string) error {
		gotCommand, gotDir = command, dir
		return nil
	}

	require.NoError(t, Migrate(context.Background(), nil))
	assert.Equal(t, "up", gotCommand)
	assert.Equal(t, ".", gotDir)
}

func TestRunMigrations_WrapsError(t *testing.T) {
	orig := gooseRunContext
	t.Cleanup(func() { gooseRunContext = orig })

	gooseRunContext = func(context.Context, string, *sql.DB, string, ...string) error {
		return errors.New("no such table")
	}

	err := RunMigrations(context.Background(), nil, "down")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goose down")
}
