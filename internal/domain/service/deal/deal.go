package deal

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"time"

	"offer_landing/internal/domain/entity"
	"offer_landing/internal/domain/value"
	"offer_landing/pkg/logx"
	"offer_landing/pkg/metrics"
)

const (
	OutcomeUnconfigured  = "unconfigured"
	OutcomeFound         = "found"
	OutcomePartial       = "partial"
	OutcomeNotFound      = "not_found"
	OutcomeUpstreamError = "upstream_error"
)

type CRM interface {
	HasCredential() bool
	SearchDealByUUID(ctx context.Context, uuid string) (entity.DealRecord, error)
	GetDealByID(ctx context.Context, id string) (entity.DealRecord, error)
}

type Alerter interface {
	Alert(ctx context.Context, key, text string)
}

type nopAlerter struct{}

func (nopAlerter) Alert(context.Context, string, string) {}

// Service resolves a deal key into a record the page can always render.
type Service struct {
	crm     CRM
	alerter Alerter
}

// NewService creates a service that does not alert.
func NewService(crm CRM) *Service {
	return &Service{
		crm:     crm,
		alerter: nopAlerter{},
	}
}

// WithAlerter reports CRM failures to operators.
func (s *Service) WithAlerter(alerter Alerter) *Service {
	s.alerter = alerter
	return s
}

// Lookup never fails. Any CRM problem yields entity.HardFallback, a match
// with empty fields gets the per-field fallbacks.
func (s *Service) Lookup(ctx context.Context, key string, mode value.LookupMode) entity.DealRecord {
	log := logger(ctx).With(
		slog.String(logx.FieldDealKey, key),
		slog.String(logx.FieldDealMode, mode.String()),
	)

	if !s.crm.HasCredential() {
		log.Warn("crm access token is not configured, using fallback record")
		s.count(mode, OutcomeUnconfigured)

		return entity.HardFallback
	}

	start := time.Now()

	record, err := s.fetch(ctx, key, mode)

	metrics.CRMRequestDuration.WithLabelValues(mode.String()).Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, errNotFound):
		log.Info("deal not found, using fallback record")
		s.count(mode, OutcomeNotFound)

		return entity.HardFallback
	case err != nil:
		log.Error("crm lookup failed, using fallback record", logx.Error(err))
		s.count(mode, OutcomeUpstreamError)
		s.alert(ctx, mode, err)

		return entity.HardFallback
	}

	outcome := OutcomeFound
	if record.PriceFinal == "" || record.AdvisorContactHandle == "" {
		outcome = OutcomePartial
	}

	log.Debug("deal resolved", slog.String(logx.FieldOutcome, outcome))
	s.count(mode, outcome)

	return record.WithFieldFallbacks()
}

func (s *Service) fetch(ctx context.Context, key string, mode value.LookupMode) (entity.DealRecord, error) {
	switch mode {
	case value.ByExternalID:
		record, err := s.crm.SearchDealByUUID(ctx, key)
		if err != nil {
			return entity.DealRecord{}, fmt.Errorf("crm.SearchDealByUUID: %w", err)
		}

		return record, nil
	case value.ByInternalID:
		record, err := s.crm.GetDealByID(ctx, key)
		if err != nil {
			return entity.DealRecord{}, fmt.Errorf("crm.GetDealByID: %w", err)
		}

		return record, nil
	default:
		return entity.DealRecord{}, fmt.Errorf("unknown lookup mode %d", mode)
	}
}

// The alert goes out on its own goroutine so a slow chat never delays the
// page.
func (s *Service) alert(ctx context.Context, mode value.LookupMode, err error) {
	ctx = context.WithoutCancel(ctx)
	text := fmt.Sprintf("<b>CRM lookup failed</b>\nmode: %s\nerror: %s", mode, html.EscapeString(err.Error()))

	go s.alerter.Alert(ctx, "crm:"+mode.String(), text)
}

func (s *Service) count(mode value.LookupMode, outcome string) {
	metrics.DealLookups.WithLabelValues(mode.String(), outcome).Inc()
}
