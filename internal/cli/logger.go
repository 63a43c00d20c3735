package cli

import (
	"context"
	"io"
	"log/slog"

	"offer_landing/internal/config"
	"offer_landing/internal/version"
	"offer_landing/pkg/contextx"
	"offer_landing/pkg/logx"
)

func withLogger(ctx context.Context, cfg config.Log, w io.Writer) context.Context {
	logger := logx.New(w, cfg.Format, cfg.Level).With(
		slog.String(logx.FieldAppVersion, version.Version),
	)

	slog.SetDefault(logger)

	return contextx.WithLogger(ctx, logger)
}
