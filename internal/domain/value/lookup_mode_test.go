package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"offer_landing/internal/domain/value"
)

func TestLookupMode(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		mode            value.LookupMode
		name            string
		queryParam      string
		legacyParam     string
		missingKeyError string
	}{
		{
			mode:            value.ByExternalID,
			name:            "external_id",
			queryParam:      "dealUuid",
			legacyParam:     "deal_uuid",
			missingKeyError: "deal_uuid is required",
		},
		{
			mode:            value.ByInternalID,
			name:            "internal_id",
			queryParam:      "internalId",
			legacyParam:     "nid",
			missingKeyError: "NID is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.name, tc.mode.String())
			rq.Equal(tc.queryParam, tc.mode.QueryParam())
			rq.Equal(tc.legacyParam, tc.mode.LegacyQueryParam())
			rq.Equal(tc.missingKeyError, tc.mode.MissingKeyMessage())

			parsed, err := value.ParseLookupMode(tc.name)
			rq.NoError(err)
			rq.Equal(tc.mode, parsed)

			parsed, err = value.ParseLookupMode(tc.queryParam)
			rq.NoError(err)
			rq.Equal(tc.mode, parsed)
		})
	}

	_, err := value.ParseLookupMode("by_email")
	rq.Error(err)

	rq.Equal([]value.LookupMode{value.ByExternalID, value.ByInternalID}, value.LookupModes())
}
