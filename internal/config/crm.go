package config

import "time"

// CRM configures the HubSpot deals API. An empty AccessToken is a valid
// setup: every lookup then answers with the hard fallback record.
type CRM struct {
	BaseURL         string        `env:"HUBSPOT_BASE_URL" envDefault:"https://api.hubapi.com"`
	AccessToken     string        `env:"HUBSPOT_ACCESS_TOKEN" json:"-"`
	Timeout         time.Duration `env:"CRM_TIMEOUT" envDefault:"0s"`
	PriceProperty   string        `env:"HUBSPOT_PRICE_PROPERTY" envDefault:"precio_comite_final_final_final__el_unico__"`
	ContactProperty string        `env:"HUBSPOT_CONTACT_PROPERTY" envDefault:"whatsapp_asesor"`
	UUIDProperty    string        `env:"HUBSPOT_UUID_PROPERTY" envDefault:"deal_uuid"`
}
