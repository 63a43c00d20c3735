package dbx

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"offer_landing/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Migrate executes every *.sql file of fsys in name order. The files must be
// safe to run again on an up-to-date schema.
func Migrate(ctx context.Context, db *sqlx.DB, fsys fs.FS) error {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return fmt.Errorf("fs.Glob: %w", err)
	}

	for _, name := range names {
		query, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("fs.ReadFile %s: %w", name, err)
		}

		if _, err = db.ExecContext(ctx, string(query)); err != nil {
			return fmt.Errorf("db.ExecContext %s: %w", name, err)
		}

		logger(ctx).Debug("migration applied", slog.String("file", name))
	}

	return nil
}
