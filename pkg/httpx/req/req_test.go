package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"offer_landing/pkg/httpx/req"
)

type testRequest struct {
	Name string `json:"name" validate:"required"`
}

func TestRead(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "Valid", body: `{"name":"page_view_medellin"}`},
		{name: "Invalid JSON", body: `{"name":`, wantErr: true},
		{name: "Validation error", body: `{}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dest testRequest

			err := req.Read(r, &dest)
			if tc.wantErr {
				rq.Error(err)
				rq.True(failure.IsInvalidArgumentError(err))

				return
			}

			rq.NoError(err)
			rq.Equal("page_view_medellin", dest.Name)
		})
	}
}

func TestQuery(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		target      string
		names       []string
		wantValue   string
		wantPresent bool
	}{
		{name: "First name wins", target: "/?dealUuid=abc&deal_uuid=def", names: []string{"dealUuid", "deal_uuid"}, wantValue: "abc", wantPresent: true},
		{name: "Second name", target: "/?deal_uuid=def", names: []string{"dealUuid", "deal_uuid"}, wantValue: "def", wantPresent: true},
		{name: "Trimmed", target: "/?dealUuid=%20abc%20", names: []string{"dealUuid"}, wantValue: "abc", wantPresent: true},
		{name: "Present but empty", target: "/?dealUuid=", names: []string{"dealUuid"}, wantValue: "", wantPresent: true},
		{name: "Absent", target: "/?other=1", names: []string{"dealUuid"}, wantValue: "", wantPresent: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodGet, tc.target, http.NoBody)

			value, present := req.Query(r, tc.names...)
			rq.Equal(tc.wantValue, value)
			rq.Equal(tc.wantPresent, present)
		})
	}
}
