package middlewarex

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"offer_landing/pkg/httpx/reply"
	"offer_landing/pkg/logx"
	"offer_landing/pkg/metrics"
	"offer_landing/pkg/rest"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler { //nolint:errorlint,goerr113
					panic(rec)
				}

				metrics.HTTPPanics.Inc()

				logger(ctx).Error(
					"panic in handler",
					slog.Any(logx.FieldError, rec),
					slog.String(logx.FieldStack, string(debug.Stack())),
				)

				reply.JSON(ctx, w, http.StatusInternalServerError, rest.Error{Error: "internal server error"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
