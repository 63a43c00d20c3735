package handler

import (
	"context"

	"offer_landing/internal/domain/entity"
	"offer_landing/internal/domain/value"
)

type DealLookup interface {
	Lookup(ctx context.Context, key string, mode value.LookupMode) entity.DealRecord
}

// EventHistory reads stored analytics events.
type EventHistory interface {
	ListBySession(ctx context.Context, sessionID string) ([]entity.AnalyticsEvent, error)
}

type Handler struct {
	deals  DealLookup
	events EventHistory
}

// New creates a handler without event history.
func New(deals DealLookup) *Handler {
	return &Handler{
		deals: deals,
	}
}

func (h *Handler) WithEvents(events EventHistory) *Handler {
	h.events = events
	return h
}
