package value

import "fmt"

// LookupMode selects which deal key the CRM is queried by.
type LookupMode int

const (
	// ByExternalID searches deals by their external deal_uuid property.
	ByExternalID LookupMode = iota
	// ByInternalID fetches a deal directly by its CRM object id (the NID).
	ByInternalID
)

//nolint:gochecknoglobals
var lookupModes = []LookupMode{ByExternalID, ByInternalID}

// LookupModes lists every mode in query-parameter priority order.
func LookupModes() []LookupMode {
	return append([]LookupMode(nil), lookupModes...)
}

func (m LookupMode) String() string {
	switch m {
	case ByExternalID:
		return "external_id"
	case ByInternalID:
		return "internal_id"
	default:
		return fmt.Sprintf("LookupMode(%d)", int(m))
	}
}

// QueryParam is the name of the URL parameter carrying the key.
func (m LookupMode) QueryParam() string {
	if m == ByInternalID {
		return "internalId"
	}

	return "dealUuid"
}

// LegacyQueryParam is the parameter name used by the first version of the
// page route (/api/hubspot?deal_uuid=...).
func (m LookupMode) LegacyQueryParam() string {
	if m == ByInternalID {
		return "nid"
	}

	return "deal_uuid"
}

// MissingKeyMessage is the client error text when the key is absent.
func (m LookupMode) MissingKeyMessage() string {
	if m == ByInternalID {
		return "NID is required"
	}

	return "deal_uuid is required"
}

func ParseLookupMode(s string) (LookupMode, error) {
	for _, m := range lookupModes {
		if s == m.String() || s == m.QueryParam() {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unknown lookup mode %q", s)
}
