package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"offer_landing/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Get("/lookup", handler(s.getLookup))

		// first version of the page
		r.Get("/api/hubspot", handler(s.getLegacyLookup))

		r.Route("/v1", func(r chi.Router) {
			r.Post("/events", handler(s.postV1Event))
			r.Get("/contact-link", handler(s.getV1ContactLink))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
