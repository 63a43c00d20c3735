package hubspot_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"offer_landing/internal/domain"
	"offer_landing/internal/domain/entity"
	"offer_landing/internal/infrastructure/hubspot"
	"offer_landing/pkg/errcodes"
)

const (
	priceProperty   = "precio_comite_final_final_final__el_unico__"
	contactProperty = "whatsapp_asesor"
	uuidProperty    = "deal_uuid"
)

func newClient(baseURL, token string) hubspot.Client {
	return hubspot.NewClient(hubspot.Options{
		BaseURL:         baseURL,
		AccessToken:     token,
		PriceProperty:   priceProperty,
		ContactProperty: contactProperty,
		UUIDProperty:    uuidProperty,
	})
}

func TestClientHasCredential(t *testing.T) {
	rq := require.New(t)

	rq.False(newClient("http://localhost", "").HasCredential())
	rq.True(newClient("http://localhost", "pat-na1-x").HasCredential())
}

func TestClientSearchDealByUUID(t *testing.T) {
	rq := require.New(t)

	var gotBody, gotAuth, gotPath, gotMethod string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotMethod = r.Method

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"total":1,"results":[{"id":"901","properties":{
			"precio_comite_final_final_final__el_unico__":"250000000",
			"whatsapp_asesor":"https://wa.me/573001112233",
			"deal_uuid":"abc-123"}}]}`)
	}))
	defer srv.Close()

	props, err := newClient(srv.URL+"/", "pat-na1-x").SearchDealByUUID(context.Background(), "abc-123")
	rq.NoError(err)

	rq.Equal(entity.DealRecord{PriceFinal: "250000000", AdvisorContactHandle: "https://wa.me/573001112233"}, props)
	rq.Equal(http.MethodPost, gotMethod)
	rq.Equal("/crm/v3/objects/deals/search", gotPath)
	rq.Equal("Bearer pat-na1-x", gotAuth)
	rq.JSONEq(`{
		"filterGroups":[{"filters":[{"propertyName":"deal_uuid","operator":"EQ","value":"abc-123"}]}],
		"properties":["precio_comite_final_final_final__el_unico__","whatsapp_asesor","deal_uuid"],
		"limit":1
	}`, gotBody)
}

func TestClientSearchDealByUUIDErrors(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		wantCode string
	}{
		{
			name:     "no results",
			status:   http.StatusOK,
			body:     `{"total":0,"results":[]}`,
			wantCode: string(errcodes.DealNotFound),
		},
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{"status":"error","message":"Authentication credentials not found."}`,
			wantCode: string(errcodes.CRMBadResponse),
		},
		{
			name:     "server error",
			status:   http.StatusBadGateway,
			body:     `bad gateway`,
			wantCode: string(errcodes.CRMBadResponse),
		},
		{
			name:     "malformed body",
			status:   http.StatusOK,
			body:     `{"results":[`,
			wantCode: string(errcodes.CRMBadResponse),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			}))
			defer srv.Close()

			_, err := newClient(srv.URL, "pat-na1-x").SearchDealByUUID(context.Background(), "abc-123")
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(tc.wantCode, string(code))
		})
	}
}

func TestClientSearchDealByUUIDNetworkError(t *testing.T) {
	rq := require.New(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := newClient(srv.URL, "pat-na1-x").SearchDealByUUID(context.Background(), "abc-123")
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.CRMUnavailable, code)
}

func TestClientGetDealByID(t *testing.T) {
	rq := require.New(t)

	var gotPath, gotProperties string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotProperties = r.URL.Query().Get("properties")

		if r.URL.Path != "/crm/v3/objects/deals/901" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		_, _ = io.WriteString(w, `{"id":"901","properties":{
			"precio_comite_final_final_final__el_unico__":null,
			"whatsapp_asesor":"3001112233"}}`)
	}))
	defer srv.Close()

	client := newClient(srv.URL, "pat-na1-x")

	props, err := client.GetDealByID(context.Background(), "901")
	rq.NoError(err)
	rq.Equal(entity.DealRecord{PriceFinal: "", AdvisorContactHandle: "3001112233"}, props)
	rq.Equal("/crm/v3/objects/deals/901", gotPath)
	rq.Equal(priceProperty+","+contactProperty, gotProperties)

	_, err = client.GetDealByID(context.Background(), "404")
	rq.ErrorIs(err, hubspot.ErrDealNotFound)
}
