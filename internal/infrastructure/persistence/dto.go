package persistence

import (
	"database/sql"
	"time"

	"offer_landing/internal/domain/entity"
)

// eventSchema maps a row of analytics_events.
type eventSchema struct {
	ID         string        `db:"id"`
	Name       string        `db:"name"`
	Category   string        `db:"category"`
	Label      string        `db:"label"`
	Value      sql.NullInt32 `db:"value"`
	SessionID  string        `db:"session_id"`
	OccurredAt time.Time     `db:"occurred_at"`
}

func fromAnalyticsEvent(id string, e entity.AnalyticsEvent) eventSchema {
	s := eventSchema{
		ID:         id,
		Name:       e.Name,
		Category:   e.Category,
		Label:      e.Label,
		SessionID:  e.SessionID,
		OccurredAt: e.OccurredAt,
	}

	if e.Value != nil {
		s.Value = sql.NullInt32{Int32: int32(*e.Value), Valid: true} //nolint:gosec
	}

	if s.OccurredAt.IsZero() {
		s.OccurredAt = time.Now()
	}

	return s
}

func (s eventSchema) toDomain() entity.AnalyticsEvent {
	e := entity.AnalyticsEvent{
		Name:       s.Name,
		Category:   s.Category,
		Label:      s.Label,
		SessionID:  s.SessionID,
		OccurredAt: s.OccurredAt,
	}

	if s.Value.Valid {
		v := int(s.Value.Int32)
		e.Value = &v
	}

	return e
}
