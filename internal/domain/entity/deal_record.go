package entity

// DefaultContactHandle is the advisor line used when no deal-specific advisor
// is known.
const DefaultContactHandle = "https://api.whatsapp.com/send?phone=3009128399"

// DealRecord is what the landing page shows for a deal: the committee price
// and the advisor to contact. It is built per lookup and never stored.
type DealRecord struct {
	// PriceFinal is a decimal string, e.g. "110000000".
	PriceFinal string
	// AdvisorContactHandle is a WhatsApp link or a raw phone. Empty means the
	// advisor is unavailable.
	AdvisorContactHandle string
}

// Each failure class has its own default record. The values differ and are
// kept apart until product settles on one set.
var (
	// HardFallback is returned when the CRM cannot be asked or has no match.
	HardFallback = DealRecord{ //nolint:gochecknoglobals
		PriceFinal:           "110000000",
		AdvisorContactHandle: DefaultContactHandle,
	}

	// PartialFieldFallback supplies a field the CRM left empty on a match.
	PartialFieldFallback = DealRecord{ //nolint:gochecknoglobals
		PriceFinal:           "100000000",
		AdvisorContactHandle: "",
	}

	// NoIdentifierBaseline is rendered when the page has no identifier.
	NoIdentifierBaseline = DealRecord{ //nolint:gochecknoglobals
		PriceFinal:           "148566058",
		AdvisorContactHandle: DefaultContactHandle,
	}

	// FetchFailureFallback is used by the page when the lookup endpoint
	// itself cannot be reached or answers garbage.
	FetchFailureFallback = DealRecord{ //nolint:gochecknoglobals
		PriceFinal:           "100000000",
		AdvisorContactHandle: DefaultContactHandle,
	}
)

// WithFieldFallbacks fills empty fields from PartialFieldFallback. Each field
// falls back on its own.
func (r DealRecord) WithFieldFallbacks() DealRecord {
	if r.PriceFinal == "" {
		r.PriceFinal = PartialFieldFallback.PriceFinal
	}

	if r.AdvisorContactHandle == "" {
		r.AdvisorContactHandle = PartialFieldFallback.AdvisorContactHandle
	}

	return r
}

// IsContactAvailable reports whether the record has an advisor to contact.
func (r DealRecord) IsContactAvailable() bool {
	return r.AdvisorContactHandle != ""
}
