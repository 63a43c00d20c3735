package analytics

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"offer_landing/internal/domain/entity"
	"offer_landing/pkg/metrics"
)

// DedupSink drops scroll milestones a session already reported within ttl.
// The page tracks milestones per view, so a reload would otherwise count
// them again.
type DedupSink struct {
	next Sink
	seen *cache.Cache
	ttl  time.Duration
}

// NewDedupSink creates a sink that drops repeated scroll milestones of a
// session for ttl.
func NewDedupSink(next Sink, ttl time.Duration) DedupSink {
	return DedupSink{
		next: next,
		seen: cache.New(ttl, 2*ttl),
		ttl:  ttl,
	}
}

func (d DedupSink) Notify(ctx context.Context, event entity.AnalyticsEvent) {
	if event.IsScroll() && event.SessionID != "" {
		if err := d.seen.Add(event.SessionID+":"+event.Name, struct{}{}, d.ttl); err != nil {
			metrics.AnalyticsDropped.WithLabelValues("duplicate").Inc()
			return
		}
	}

	d.next.Notify(ctx, event)
}
