package server

import (
	"context"
	"fmt"
	"net/http"

	"offer_landing/internal/domain/entity"
	"offer_landing/pkg/contextx"
	"offer_landing/pkg/httpx/reply"
	"offer_landing/pkg/httpx/req"
	"offer_landing/pkg/rest"
)

type analyticsSink interface {
	Notify(ctx context.Context, event entity.AnalyticsEvent)
}

type EventServer struct {
	sink analyticsSink
}

func NewEventServer(sink analyticsSink) EventServer {
	return EventServer{
		sink: sink,
	}
}

func (s EventServer) postV1Event(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.Event

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	event := newDomainEvent(request)

	if event.SessionID == "" {
		if sessionID, err := contextx.SessionIDFromContext(ctx); err == nil {
			event.SessionID = sessionID.String()
		}
	}

	s.sink.Notify(ctx, event)

	reply.Accepted(w)

	return nil
}
