package server

import (
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"offer_landing/internal/domain/entity"
	"offer_landing/internal/domain/service/landing"
	"offer_landing/internal/domain/value"
	"offer_landing/pkg/errcodes"
	"offer_landing/pkg/httpx/reply"
	"offer_landing/pkg/httpx/req"
	"offer_landing/pkg/rest"
)

type ContactServer struct{}

func NewContactServer() ContactServer {
	return ContactServer{}
}

// getV1ContactLink builds the chat link a CTA opens for the advisor handle
// of the loaded deal.
func (s ContactServer) getV1ContactLink(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	rawAction, _ := req.Query(r, "action")

	action, err := value.ParseContactAction(rawAction)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseContactAction: %w", err),
			failure.WithCode(errcodes.InvalidContactAction),
			failure.WithDescription("unknown contact action"),
		)
	}

	handle, _ := req.Query(r, "handle")
	record := entity.DealRecord{AdvisorContactHandle: handle}

	link, ok := landing.ContactURL(landing.CTAHandle(record, action), action)

	reply.JSON(ctx, w, http.StatusOK, rest.ContactLink{
		Action:    action.String(),
		URL:       link,
		Available: ok,
	})

	return nil
}
