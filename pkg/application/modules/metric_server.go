package modules

import (
	"context"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"offer_landing/pkg/metrics"
)

const (
	metricsPath = "/metrics"

	metricServerReadHeaderTimeout = 5 * time.Second
	metricServerShutdownTimeout   = 5 * time.Second
)

type MetricServer struct {
	ListenAddress string
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, metrics.Handler())

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              m.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: metricServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	HTTPServer{ShutdownTimeout: metricServerShutdownTimeout}.Run(ctx, g, httpServer)
}
