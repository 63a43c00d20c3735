package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"offer_landing/internal/domain/entity"
	"offer_landing/internal/infrastructure/analytics"
	"offer_landing/pkg/application/modules"
	"offer_landing/pkg/logx"
)

type EventRepository interface {
	Create(ctx context.Context, event entity.AnalyticsEvent) (string, error)
}

// AnalyticsEvents stores events the web process queued.
type AnalyticsEvents struct {
	repo EventRepository
	sink analytics.Sink
}

// NewAnalyticsEvents creates the worker that stores queued events.
func NewAnalyticsEvents(repo EventRepository, sink analytics.Sink) AnalyticsEvents {
	return AnalyticsEvents{
		repo: repo,
		sink: sink,
	}
}

func (w AnalyticsEvents) Handler() modules.AsynqHandler {
	return modules.AsynqHandler{
		Pattern: analytics.TaskTypeEvent,
		Handle:  w.Handle,
	}
}

// Handle fails without retry on a payload that cannot be decoded. Storage
// errors are retried by asynq.
func (w AnalyticsEvents) Handle(ctx context.Context, task *asynq.Task) error {
	event, err := analytics.DecodeEventTask(task)
	if err != nil {
		return fmt.Errorf("analytics.DecodeEventTask: %w: %w", err, asynq.SkipRetry)
	}

	id, err := w.repo.Create(ctx, event)
	if err != nil {
		return fmt.Errorf("repo.Create: %w", err)
	}

	w.sink.Notify(ctx, event)

	logger(ctx).Debug(
		"analytics event stored",
		slog.String(logx.FieldEventName, event.Name),
		slog.String("event-id", id),
	)

	return nil
}
