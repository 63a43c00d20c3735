package connectors

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // golang postgres driver
	"github.com/jmoiron/sqlx"

	"offer_landing/pkg/dbx"
	"offer_landing/pkg/logx"
)

type Postgres struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	// Migrations are applied right after connecting. Nil skips them.
	Migrations fs.FS

	value *sqlx.DB
}

// Connect opens the pool and brings the schema up to date.
func (p *Postgres) Connect(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", p.DSN)
	if err != nil {
		return nil, fmt.Errorf("sqlx.ConnectContext: %w", err)
	}

	db.SetMaxOpenConns(p.MaxOpenConns)
	db.SetMaxIdleConns(p.MaxIdleConns)
	db.SetConnMaxLifetime(p.ConnMaxLifetime)

	if p.Migrations != nil {
		if err = dbx.Migrate(ctx, db, p.Migrations); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("dbx.Migrate: %w", err)
		}
	}

	p.value = db

	logger(ctx).Info("postgres connected", slog.String("database", p.database()))

	return db, nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	if p.value == nil {
		return errNotConnected
	}

	if err := p.value.PingContext(ctx); err != nil {
		return fmt.Errorf("postgresClient.PingContext: %w", err)
	}

	return nil
}

func (p *Postgres) Close(ctx context.Context) {
	if p.value == nil {
		return
	}

	if err := p.value.Close(); err != nil {
		logger(ctx).Error("postgresClient.Close", logx.Error(err))
	}

	logger(ctx).Info("postgres disconnected", slog.String("database", p.database()))
}

// database never exposes credentials from the DSN.
func (p *Postgres) database() string {
	u, err := url.Parse(p.DSN)
	if err != nil {
		return ""
	}

	return strings.TrimPrefix(u.Path, "/")
}
