package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"git.appkode.ru/pub/go/failure"

	"offer_landing/internal/domain/entity"
	"offer_landing/internal/domain/value"
	"offer_landing/pkg/errcodes"
	"offer_landing/pkg/httpx/reply"
	"offer_landing/pkg/httpx/req"
	"offer_landing/pkg/logx"
)

type dealService interface {
	Lookup(ctx context.Context, key string, mode value.LookupMode) entity.DealRecord
}

type LookupServer struct {
	dealService dealService
}

func NewLookupServer(dealService dealService) LookupServer {
	return LookupServer{
		dealService: dealService,
	}
}

// getLookup answers 400 only when no key is given. Anything else gets a
// record, even when the CRM is down.
func (s LookupServer) getLookup(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	key, mode, err := lookupKey(r)
	if err != nil {
		return fmt.Errorf("lookupKey: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDealRecord(s.lookup(ctx, key, mode)))

	return nil
}

func (s LookupServer) getLegacyLookup(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	key, _ := req.Query(r, value.ByExternalID.LegacyQueryParam())
	if key == "" {
		return missingKeyError(value.ByExternalID)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTLegacyDealRecord(s.lookup(ctx, key, value.ByExternalID)))

	return nil
}

func (s LookupServer) lookup(ctx context.Context, key string, mode value.LookupMode) (record entity.DealRecord) {
	defer func() {
		if rec := recover(); rec != nil {
			logger(ctx).Error(
				"panic in deal lookup, using fallback record",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			record = entity.HardFallback
		}
	}()

	return s.dealService.Lookup(ctx, key, mode)
}

// lookupKey takes the first mode whose parameter carries a value. When none
// does, the error names the first mode that was asked for, external id by
// default.
func lookupKey(r *http.Request) (string, value.LookupMode, error) {
	missing, asked := value.ByExternalID, false

	for _, mode := range value.LookupModes() {
		key, ok := req.Query(r, mode.QueryParam(), mode.LegacyQueryParam())
		if key != "" {
			return key, mode, nil
		}

		if ok && !asked {
			missing, asked = mode, true
		}
	}

	return "", missing, missingKeyError(missing)
}

func missingKeyError(mode value.LookupMode) error {
	return failure.NewInvalidArgumentError(
		mode.QueryParam()+" is empty",
		failure.WithCode(errcodes.DealIdentifierRequired),
		failure.WithDescription(mode.MissingKeyMessage()),
	)
}
