package persistence_test

import (
	"context"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"
	"github.com/stretchr/testify/require"

	"offer_landing/internal/domain/entity"
	"offer_landing/internal/infrastructure/persistence"
	"offer_landing/migrations"
	"offer_landing/pkg/dbx"
)

func TestEventRepository(t *testing.T) {
	dsn := os.Getenv("PG_TEST_DSN")
	if dsn == "" {
		t.Skip("PG_TEST_DSN is not set")
	}

	rq := require.New(t)
	ctx := context.Background()

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	rq.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	rq.NoError(dbx.Migrate(ctx, db, migrations.FS))

	repo := persistence.NewEventRepository(db)
	session := xid.New().String()

	scroll := entity.ScrollDepthEvent(50)
	scroll.SessionID = session

	view := entity.PageViewEvent("home")
	view.SessionID = session
	view.OccurredAt = scroll.OccurredAt.Add(-1)

	id, err := repo.Create(ctx, scroll)
	rq.NoError(err)
	rq.NotEmpty(id)

	_, err = repo.Create(ctx, view)
	rq.NoError(err)

	events, err := repo.ListBySession(ctx, session)
	rq.NoError(err)
	rq.Len(events, 2)

	rq.Equal("page_view_medellin", events[0].Name)
	rq.Nil(events[0].Value)
	rq.Equal("scroll_50_medellin", events[1].Name)
	rq.Equal(50, *events[1].Value)
	rq.Equal("50%", events[1].Label)
}
