package middlewarex

import (
	"cmp"
	"net/http"

	"github.com/rs/xid"

	"offer_landing/pkg/contextx"
)

const (
	headerNameTraceID   = "X-Trace-Id"
	headerNameRequestID = "X-Request-Id"

	maxTraceIDLen = 64
)

// TraceID reuses the id set by the proxy in front of the service. Missing or
// oversized ids are replaced.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := cmp.Or(r.Header.Get(headerNameTraceID), r.Header.Get(headerNameRequestID))

		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
