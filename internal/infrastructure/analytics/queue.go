package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"offer_landing/internal/domain/entity"
	"offer_landing/pkg/logx"
	"offer_landing/pkg/metrics"
)

const (
	TaskTypeEvent = "analytics:event"

	eventMaxRetry = 3
)

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type eventPayload struct {
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Label      string    `json:"label,omitempty"`
	Value      *int      `json:"value,omitempty"`
	SessionID  string    `json:"sessionId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewEventTask(event entity.AnalyticsEvent) (*asynq.Task, error) {
	payload, err := json.Marshal(eventPayload(event))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TaskTypeEvent, payload, asynq.MaxRetry(eventMaxRetry)), nil
}

func DecodeEventTask(task *asynq.Task) (entity.AnalyticsEvent, error) {
	var payload eventPayload

	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return entity.AnalyticsEvent{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return entity.AnalyticsEvent(payload), nil
}

// QueueSink hands events to the worker through Redis.
type QueueSink struct {
	client  enqueuer
	queue   string
	timeout time.Duration
}

// NewQueueSink creates a sink that enqueues events to queue.
func NewQueueSink(client enqueuer, queue string, timeout time.Duration) QueueSink {
	return QueueSink{
		client:  client,
		queue:   queue,
		timeout: timeout,
	}
}

func (q QueueSink) Notify(ctx context.Context, event entity.AnalyticsEvent) {
	log := logger(ctx).With(slog.String(logx.FieldEventName, event.Name))

	task, err := NewEventTask(event)
	if err != nil {
		metrics.AnalyticsDropped.WithLabelValues("encode").Inc()
		log.Error("analytics.NewEventTask", logx.Error(err))

		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), q.timeout)
	defer cancel()

	info, err := q.client.EnqueueContext(ctx, task, asynq.Queue(q.queue))
	if err != nil {
		metrics.AnalyticsDropped.WithLabelValues("enqueue").Inc()
		log.Error("asynqClient.EnqueueContext", logx.Error(err))

		return
	}

	log.Debug("analytics event enqueued", slog.String(logx.FieldTaskID, info.ID))
}
