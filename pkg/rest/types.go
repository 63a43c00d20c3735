package rest

// DealRecord is the lookup response body.
type DealRecord struct {
	PriceFinal           string `json:"priceFinal"`
	AdvisorContactHandle string `json:"advisorContactHandle"`
}

// LegacyDealRecord is the response of the first page route, keyed by the
// CRM property names.
type LegacyDealRecord struct {
	PriceFinal           string `json:"precio_comite_final_final_final__el_unico__"`
	AdvisorContactHandle string `json:"whatsapp_asesor"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Error string `json:"error"`
}

// Event is one analytics event sent by the landing page.
type Event struct {
	Name      string `json:"name" validate:"required,max=64"`
	Category  string `json:"category" validate:"required,oneof=navigation engagement conversion error"`
	Label     string `json:"label,omitempty" validate:"max=256"`
	Value     *int   `json:"value,omitempty" validate:"omitempty,min=0"`
	SessionID string `json:"sessionId,omitempty" validate:"max=64"`
}

// ContactLink is the CTA redirect target.
type ContactLink struct {
	Action    string `json:"action"`
	URL       string `json:"url"`
	Available bool   `json:"available"`
}
