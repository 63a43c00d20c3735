package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"offer_landing/internal/domain/entity"
	"offer_landing/pkg/logx"
	"offer_landing/pkg/metrics"
)

// Sink receives analytics events. Notify never blocks the caller for long
// and never reports failure.
type Sink interface {
	Notify(ctx context.Context, event entity.AnalyticsEvent)
}

// LogSink writes events to the debug log.
type LogSink struct{}

func (LogSink) Notify(ctx context.Context, event entity.AnalyticsEvent) {
	attrs := []any{
		slog.String(logx.FieldEventName, event.Name),
		slog.String("category", event.Category),
		slog.String("label", event.Label),
	}

	if event.Value != nil {
		attrs = append(attrs, slog.Int("value", *event.Value))
	}

	if event.SessionID != "" {
		attrs = append(attrs, slog.String(logx.FieldSessionID, event.SessionID))
	}

	logger(ctx).Debug("analytics event", attrs...)
}

// MetricsSink counts events by name and category.
type MetricsSink struct{}

func (MetricsSink) Notify(_ context.Context, event entity.AnalyticsEvent) {
	metrics.AnalyticsEvents.WithLabelValues(event.Name, event.Category).Inc()
}

// MultiSink hands every event to all of its sinks in order. A panicking sink
// does not stop the others.
type MultiSink []Sink

func (m MultiSink) Notify(ctx context.Context, event entity.AnalyticsEvent) {
	for _, sink := range m {
		notifySafe(ctx, sink, event)
	}
}

func notifySafe(ctx context.Context, sink Sink, event entity.AnalyticsEvent) {
	defer func() {
		if r := recover(); r != nil {
			metrics.AnalyticsDropped.WithLabelValues("panic").Inc()
			logger(ctx).Error(
				"analytics sink panicked",
				slog.String(logx.FieldEventName, event.Name),
				logx.Error(fmt.Errorf("%v", r)),
			)
		}
	}()

	sink.Notify(ctx, event)
}
