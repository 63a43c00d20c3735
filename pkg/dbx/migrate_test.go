package dbx_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"offer_landing/migrations"
	"offer_landing/pkg/dbx"
)

func TestMigrateSkipsOtherFiles(t *testing.T) {
	rq := require.New(t)

	// The handle has no connection, any Exec would panic.
	db := sqlx.NewDb(nil, "pgx")

	rq.NoError(dbx.Migrate(context.Background(), db, fstest.MapFS{
		"README.md": &fstest.MapFile{Data: []byte("docs")},
	}))
}

func TestEmbeddedMigrations(t *testing.T) {
	rq := require.New(t)

	data, err := migrations.FS.ReadFile("0001_analytics_events.sql")
	rq.NoError(err)
	rq.Contains(string(data), "CREATE TABLE IF NOT EXISTS analytics_events")
}
