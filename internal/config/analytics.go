package config

import (
	"fmt"
	"time"
)

const (
	AnalyticsBackendLog     = "log"
	AnalyticsBackendMetrics = "metrics"
	AnalyticsBackendQueue   = "queue"
)

type Analytics struct {
	Backend        string        `env:"ANALYTICS_BACKEND" envDefault:"metrics"`
	DedupTTL       time.Duration `env:"ANALYTICS_DEDUP_TTL" envDefault:"30m"`
	EnqueueTimeout time.Duration `env:"ANALYTICS_ENQUEUE_TIMEOUT" envDefault:"500ms"`
	Queue          string        `env:"ANALYTICS_QUEUE" envDefault:"analytics"`
	Concurrency    int           `env:"ANALYTICS_WORKER_CONCURRENCY" envDefault:"4"`
}

func (a Analytics) validate() error {
	switch a.Backend {
	case AnalyticsBackendLog, AnalyticsBackendMetrics, AnalyticsBackendQueue:
	default:
		return fmt.Errorf("unknown backend %q", a.Backend)
	}

	if a.DedupTTL <= 0 {
		return fmt.Errorf("dedup ttl must be positive, got %s", a.DedupTTL)
	}

	return nil
}

// UsesQueue reports whether events go through Redis to the worker.
func (a Analytics) UsesQueue() bool {
	return a.Backend == AnalyticsBackendQueue
}
