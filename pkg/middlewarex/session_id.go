package middlewarex

import (
	"net/http"

	"github.com/rs/xid"

	"offer_landing/pkg/contextx"
)

const headerNameSessionID = "X-Session-Id"

// SessionID puts the page session id sent by the landing page into the
// context. Requests without one get a fresh id echoed back so the page can
// reuse it.
func SessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(headerNameSessionID)

		if sessionID == "" {
			sessionID = xid.New().String()
		}

		ctx := contextx.WithSessionID(r.Context(), contextx.SessionID(sessionID))

		w.Header().Set(headerNameSessionID, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
