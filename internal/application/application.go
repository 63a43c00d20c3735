package application

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"offer_landing/internal/config"
	"offer_landing/internal/domain/service/deal"
	"offer_landing/internal/infrastructure/analytics"
	"offer_landing/internal/infrastructure/hubspot"
	"offer_landing/internal/infrastructure/notifier"
	"offer_landing/internal/infrastructure/persistence"
	"offer_landing/internal/server"
	"offer_landing/internal/transport/bot"
	"offer_landing/internal/transport/bot/handler"
	"offer_landing/internal/version"
	"offer_landing/internal/worker"
	"offer_landing/migrations"
	"offer_landing/pkg/application/connectors"
	"offer_landing/pkg/application/modules"
	"offer_landing/pkg/logx"
	"offer_landing/pkg/metrics"
	"offer_landing/pkg/probe"
)

type Application struct {
	cfg config.Config
}

func New(cfg config.Config) *Application {
	return &Application{cfg: cfg}
}

// Serve runs the HTTP API with its probe and metrics servers until ctx is
// done. The queue analytics backend adds its worker, a configured admin adds
// the operator bot.
func (a *Application) Serve(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	checks := make(map[string]probe.Check)

	backend, err := a.analyticsBackend(ctx, g, checks)
	if err != nil {
		return fmt.Errorf("a.analyticsBackend: %w", err)
	}
	defer backend.close()

	dealService := deal.NewService(a.crm()).WithAlerter(a.alerter(ctx))

	if a.cfg.Bot.CommandsEnabled() {
		a.runBot(ctx, g, dealService, backend.history)
	}

	srv := server.NewServer(
		server.NewLookupServer(dealService),
		server.NewEventServer(backend.sink),
		server.NewContactServer(),
	)

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              a.cfg.HTTP.ListenAddress,
		Handler:           srv.Handler(logx.NewSensitiveDataMasker(), a.cfg.HTTP.LogFieldMaxLen),
		ReadHeaderTimeout: a.cfg.HTTP.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	modules.HTTPServer{ShutdownTimeout: a.cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)

	modules.ProbeServer{
		Name:          a.cfg.App.Name,
		Version:       version.Version,
		ListenAddress: a.cfg.App.ProbeListenAddress,
		Checks:        checks,
	}.Run(ctx, g)

	modules.MetricServer{ListenAddress: a.cfg.App.MetricsListenAddress}.Run(ctx, g)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func (a *Application) crm() hubspot.Client {
	return hubspot.NewClient(hubspot.Options{
		BaseURL:         a.cfg.CRM.BaseURL,
		AccessToken:     a.cfg.CRM.AccessToken,
		Timeout:         a.cfg.CRM.Timeout,
		PriceProperty:   a.cfg.CRM.PriceProperty,
		ContactProperty: a.cfg.CRM.ContactProperty,
		UUIDProperty:    a.cfg.CRM.UUIDProperty,
		LogFieldMaxLen:  a.cfg.HTTP.LogFieldMaxLen,
	})
}

func (a *Application) alerter(ctx context.Context) deal.Alerter {
	if !a.cfg.Bot.Enabled() {
		return notifier.NopAlerter{}
	}

	alerter, err := notifier.NewTelegramAlerter(a.cfg.Bot.Token, a.cfg.Bot.ChatID, a.cfg.Bot.AlertCooldown)
	if err != nil {
		logger(ctx).Error("notifier.NewTelegramAlerter, alerts are off", logx.Error(err))
		return notifier.NopAlerter{}
	}

	return alerter
}

// runBot starts the operator bot. A bot that cannot start does not stop the
// page from serving. history is nil unless events are stored.
func (a *Application) runBot(
	ctx context.Context,
	g *errgroup.Group,
	deals *deal.Service,
	history *persistence.EventRepository,
) {
	var events handler.EventHistory
	if history != nil {
		events = history
	}

	b, err := bot.New(ctx, a.cfg.Bot.Token, a.cfg.Bot.AdminID, deals, events)
	if err != nil {
		logger(ctx).Error("bot.New, commands are off", logx.Error(err))
		return
	}

	g.Go(func() error {
		return b.Run(ctx)
	})
}

type analyticsBackend struct {
	sink analytics.Sink
	// history is set only when events are stored in Postgres.
	history *persistence.EventRepository
	close   func()
}

// analyticsBackend builds the configured backend. The queue backend also
// starts the worker that stores queued events.
func (a *Application) analyticsBackend(
	ctx context.Context,
	g *errgroup.Group,
	checks map[string]probe.Check,
) (analyticsBackend, error) {
	var history *persistence.EventRepository

	sinks := analytics.MultiSink{analytics.LogSink{}}

	var closers []func()

	closeAll := func() {
		for _, c := range closers {
			c()
		}
	}

	switch a.cfg.Analytics.Backend {
	case config.AnalyticsBackendMetrics:
		sinks = append(sinks, analytics.MetricsSink{})
	case config.AnalyticsBackendQueue:
		redis := &connectors.Redis{
			Username:           a.cfg.Redis.Username,
			Password:           a.cfg.Redis.Password,
			Address:            a.cfg.Redis.Address,
			DatabaseNumber:     a.cfg.Redis.DatabaseNumber,
			PoolSize:           a.cfg.Redis.PoolSize,
			MinIdleConnections: a.cfg.Redis.MinIdleConnections,
			MaxIdleConnections: a.cfg.Redis.MaxIdleConnections,
		}

		postgres := &connectors.Postgres{
			DSN:             a.cfg.Postgres.DSN,
			MaxIdleConns:    a.cfg.Postgres.MaxIdleConns,
			MaxOpenConns:    a.cfg.Postgres.MaxOpenConns,
			ConnMaxLifetime: a.cfg.Postgres.ConnMaxLifetime,
			Migrations:      migrations.FS,
		}

		redisClient, err := redis.Connect(ctx)
		if err != nil {
			return analyticsBackend{}, fmt.Errorf("redis.Connect: %w", err)
		}

		closers = append(closers, func() { redis.Close(ctx) })

		db, err := postgres.Connect(ctx)
		if err != nil {
			closeAll()
			return analyticsBackend{}, fmt.Errorf("postgres.Connect: %w", err)
		}

		closers = append(closers, func() { postgres.Close(ctx) })

		checks["redis"] = redis.Ping
		checks["postgres"] = postgres.Ping

		client := asynq.NewClientFromRedisClient(redisClient)
		sinks = append(sinks, analytics.NewQueueSink(client, a.cfg.Analytics.Queue, a.cfg.Analytics.EnqueueTimeout))

		history = persistence.NewEventRepository(db)
		events := worker.NewAnalyticsEvents(history, analytics.MetricsSink{})

		modules.AsynqServer{
			RedisUsername:   a.cfg.Redis.Username,
			RedisPassword:   a.cfg.Redis.Password,
			RedisAddress:    a.cfg.Redis.Address,
			RedisDB:         a.cfg.Redis.DatabaseNumber,
			Concurrency:     a.cfg.Analytics.Concurrency,
			ShutdownTimeout: a.cfg.HTTP.ShutdownTimeout,
			OnFailure: func(_ context.Context, taskType string, _ error) {
				metrics.TaskFailures.WithLabelValues(taskType).Inc()
			},
		}.Run(ctx, g, modules.AsynqQueues{a.cfg.Analytics.Queue: 1}, events.Handler())
	}

	logger(ctx).Info("analytics backend", slog.String("backend", a.cfg.Analytics.Backend))

	return analyticsBackend{
		sink:    analytics.NewDedupSink(sinks, a.cfg.Analytics.DedupTTL),
		history: history,
		close:   closeAll,
	}, nil
}
