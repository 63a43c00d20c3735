package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"offer_landing/pkg/logx"
	"offer_landing/pkg/middlewarex"
)

// Beacons from every page view; their dumps are logged at debug level.
const eventsPath = "/v1/events"

// Handler wraps the routes in the middleware chain. Recovery sits innermost
// so a panic is still logged with the trace id.
func (s Server) Handler(sensitiveDataMasker logx.SensitiveDataMaskerInterface, logFieldMaxLen int) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.SessionID,
		middlewarex.Logger,
		middlewarex.Metrics,
		middlewarex.RequestLogging(sensitiveDataMasker, logFieldMaxLen, eventsPath),
		middlewarex.ResponseLogging(sensitiveDataMasker, logFieldMaxLen, eventsPath),
		middlewarex.Recovery,
	)

	s.RegisterRoutes(r)

	return r
}
