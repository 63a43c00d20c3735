package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/xid"
	"github.com/samber/lo"

	"offer_landing/internal/domain"
	"offer_landing/internal/domain/entity"
	"offer_landing/pkg/errcodes"
)

type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a repository over analytics_events.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create stores an event and returns its generated id.
func (r *EventRepository) Create(ctx context.Context, event entity.AnalyticsEvent) (string, error) {
	schema := fromAnalyticsEvent(xid.New().String(), event)

	query := `
		INSERT INTO analytics_events (id, name, category, label, value, session_id, occurred_at)
		VALUES (:id, :name, :category, :label, :value, :session_id, :occurred_at)`

	if _, err := r.db.NamedExecContext(ctx, query, schema); err != nil {
		return "", domain.WrapError(err, errcodes.InternalServerError, "failed to insert analytics event")
	}

	return schema.ID, nil
}

// ListBySession returns a session's events, oldest first.
func (r *EventRepository) ListBySession(ctx context.Context, sessionID string) ([]entity.AnalyticsEvent, error) {
	query := `
		SELECT id, name, category, label, value, session_id, occurred_at
		FROM analytics_events
		WHERE session_id = $1
		ORDER BY occurred_at, id`

	var schemas []eventSchema
	if err := r.db.SelectContext(ctx, &schemas, query, sessionID); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to list analytics events")
	}

	return lo.Map(schemas, func(s eventSchema, _ int) entity.AnalyticsEvent {
		return s.toDomain()
	}), nil
}
