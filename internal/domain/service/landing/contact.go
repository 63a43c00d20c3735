package landing

import (
	"net/url"
	"strings"

	"offer_landing/internal/domain/entity"
	"offer_landing/internal/domain/value"
)

const whatsAppBaseURL = "https://wa.me/"

// ContactURL builds the chat link for a CTA. A handle that is not a URL is
// taken as a phone number. ok is false when there is nobody to contact.
func ContactURL(handle string, action value.ContactAction) (string, bool) {
	if handle == "" {
		return "", false
	}

	link := handle
	if !strings.HasPrefix(handle, "http") {
		link = whatsAppBaseURL + strings.Replace(phoneDigits(handle), "+", "", 1)
	}

	separator := "?"
	if strings.Contains(link, "?") {
		separator = "&"
	}

	return link + separator + "text=" + escapeMessage(action.Message()), true
}

// CTAHandle picks the handle a CTA should open. Offer and visit buttons only
// work with the deal's own advisor.
func CTAHandle(record entity.DealRecord, action value.ContactAction) string {
	if record.IsContactAvailable() || !action.FallsBackToDefaultAdvisor() {
		return record.AdvisorContactHandle
	}

	return entity.DefaultContactHandle
}

func phoneDigits(phone string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, phone)
}

// messageUnescaper undoes url.QueryEscape for the characters a browser's
// encodeURIComponent leaves alone. Spaces become %20 rather than "+".
//
//nolint:gochecknoglobals
var messageUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeMessage(message string) string {
	return messageUnescaper.Replace(url.QueryEscape(message))
}
