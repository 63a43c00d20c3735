package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"offer_landing/internal/domain/entity"
)

func TestAnalyticsEventConstructors(t *testing.T) {
	testCases := []struct {
		name         string
		event        entity.AnalyticsEvent
		wantName     string
		wantCategory string
		wantLabel    string
		wantValue    *int
	}{
		{
			name:         "page view",
			event:        entity.PageViewEvent("home"),
			wantName:     "page_view_medellin",
			wantCategory: entity.CategoryNavigation,
			wantLabel:    "home",
		},
		{
			name:         "form complete",
			event:        entity.FormCompleteEvent("deal_lookup"),
			wantName:     "form_complete_medellin",
			wantCategory: entity.CategoryConversion,
			wantLabel:    "deal_lookup",
		},
		{
			name:         "form error",
			event:        entity.FormErrorEvent("deal_lookup", "empty"),
			wantName:     "form_error_medellin",
			wantCategory: entity.CategoryError,
			wantLabel:    "deal_lookup_empty",
		},
		{
			name:         "cta click",
			event:        entity.CTAClickEvent("solicitar_oferta", "hero_section"),
			wantName:     "cta_click_medellin",
			wantCategory: entity.CategoryEngagement,
			wantLabel:    "solicitar_oferta_hero_section",
		},
		{
			name:         "scroll depth",
			event:        entity.ScrollDepthEvent(75),
			wantName:     "scroll_75_medellin",
			wantCategory: entity.CategoryEngagement,
			wantLabel:    "75%",
			wantValue:    ptr(75),
		},
		{
			name:         "time on page",
			event:        entity.TimeOnPageEvent(42),
			wantName:     "time_on_page_medellin",
			wantCategory: entity.CategoryEngagement,
			wantValue:    ptr(42),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			rq.Equal(tc.wantName, tc.event.Name)
			rq.Equal(tc.wantCategory, tc.event.Category)
			rq.Equal(tc.wantLabel, tc.event.Label)
			rq.Equal(tc.wantValue, tc.event.Value)
			rq.False(tc.event.OccurredAt.IsZero())
		})
	}
}

func TestAnalyticsEventIsScroll(t *testing.T) {
	rq := require.New(t)

	rq.True(entity.ScrollDepthEvent(25).IsScroll())
	rq.False(entity.PageViewEvent("home").IsScroll())
}

func TestDealRecordFallbacks(t *testing.T) {
	rq := require.New(t)

	rq.Equal(entity.DealRecord{PriceFinal: "100000000", AdvisorContactHandle: ""},
		entity.DealRecord{}.WithFieldFallbacks())
	rq.Equal(entity.DealRecord{PriceFinal: "5", AdvisorContactHandle: "x"},
		entity.DealRecord{PriceFinal: "5", AdvisorContactHandle: "x"}.WithFieldFallbacks())
	rq.NotEqual(entity.HardFallback, entity.NoIdentifierBaseline)
	rq.True(entity.HardFallback.IsContactAvailable())
	rq.False(entity.PartialFieldFallback.IsContactAvailable())
}

func ptr(v int) *int {
	return &v
}
