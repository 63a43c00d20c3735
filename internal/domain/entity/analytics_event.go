package entity

import (
	"fmt"
	"strings"
	"time"
)

const (
	CategoryNavigation = "navigation"
	CategoryEngagement = "engagement"
	CategoryConversion = "conversion"
	CategoryError      = "error"
)

const eventSuffix = "_medellin"

// ScrollMilestones are the scroll depths, in percent, reported once per page
// view.
var ScrollMilestones = []int{25, 50, 75, 90, 100} //nolint:gochecknoglobals

// AnalyticsEvent is one fire-and-forget notification about what a visitor
// did on the landing page.
type AnalyticsEvent struct {
	Name       string
	Category   string
	Label      string
	Value      *int
	SessionID  string
	OccurredAt time.Time
}

// IsScroll reports whether the event is a scroll milestone.
func (e AnalyticsEvent) IsScroll() bool {
	return strings.HasPrefix(e.Name, "scroll_")
}

func newEvent(name, category, label string) AnalyticsEvent {
	return AnalyticsEvent{
		Name:       name + eventSuffix,
		Category:   category,
		Label:      label,
		OccurredAt: time.Now(),
	}
}

func (e AnalyticsEvent) withValue(v int) AnalyticsEvent {
	e.Value = &v
	return e
}

func PageViewEvent(page string) AnalyticsEvent {
	return newEvent("page_view", CategoryNavigation, page)
}

func FormStartEvent(form string) AnalyticsEvent {
	return newEvent("form_start", CategoryEngagement, form)
}

func FormCompleteEvent(form string) AnalyticsEvent {
	return newEvent("form_complete", CategoryConversion, form)
}

func FormErrorEvent(form, errorType string) AnalyticsEvent {
	return newEvent("form_error", CategoryError, form+"_"+errorType)
}

// ContactClickEvent takes the channel: phone, email or whatsapp.
func ContactClickEvent(method string) AnalyticsEvent {
	return newEvent("contact_click", CategoryEngagement, method)
}

func PropertyViewEvent(propertyID string) AnalyticsEvent {
	return newEvent("property_view", CategoryEngagement, propertyID)
}

func PropertyInquiryEvent(propertyID string) AnalyticsEvent {
	return newEvent("property_inquiry", CategoryConversion, propertyID)
}

func CalculatorUseEvent(calculator string) AnalyticsEvent {
	return newEvent("calculator_use", CategoryEngagement, calculator)
}

func DownloadBrochureEvent(propertyID string) AnalyticsEvent {
	return newEvent("download_brochure", CategoryEngagement, propertyID)
}

func CTAClickEvent(cta, location string) AnalyticsEvent {
	return newEvent("cta_click", CategoryEngagement, cta+"_"+location)
}

func ScrollDepthEvent(percent int) AnalyticsEvent {
	return newEvent(fmt.Sprintf("scroll_%d", percent), CategoryEngagement, fmt.Sprintf("%d%%", percent)).
		withValue(percent)
}

func TimeOnPageEvent(seconds int) AnalyticsEvent {
	return newEvent("time_on_page", CategoryEngagement, "").withValue(seconds)
}

func SearchPerformedEvent(term string) AnalyticsEvent {
	return newEvent("search", CategoryEngagement, term)
}

func SocialShareEvent(platform, content string) AnalyticsEvent {
	return newEvent("social_share", CategoryEngagement, platform+"_"+content)
}

func ErrorOccurredEvent(errorType, message string) AnalyticsEvent {
	return newEvent("error", CategoryError, errorType+"_"+message)
}
