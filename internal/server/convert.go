package server

import (
	"time"

	"offer_landing/internal/domain/entity"
	"offer_landing/pkg/rest"
)

func newRESTDealRecord(record entity.DealRecord) rest.DealRecord {
	return rest.DealRecord{
		PriceFinal:           record.PriceFinal,
		AdvisorContactHandle: record.AdvisorContactHandle,
	}
}

func newRESTLegacyDealRecord(record entity.DealRecord) rest.LegacyDealRecord {
	return rest.LegacyDealRecord{
		PriceFinal:           record.PriceFinal,
		AdvisorContactHandle: record.AdvisorContactHandle,
	}
}

func newDomainEvent(event rest.Event) entity.AnalyticsEvent {
	return entity.AnalyticsEvent{
		Name:       event.Name,
		Category:   event.Category,
		Label:      event.Label,
		Value:      event.Value,
		SessionID:  event.SessionID,
		OccurredAt: time.Now(),
	}
}
