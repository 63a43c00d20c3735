package hubspot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"offer_landing/internal/domain"
	"offer_landing/internal/domain/entity"
	"offer_landing/pkg/errcodes"
	"offer_landing/pkg/httpx"
	"offer_landing/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	searchPath = "/crm/v3/objects/deals/search"
	dealPath   = "/crm/v3/objects/deals/"
)

var (
	ErrDealNotFound     = domain.NewError(errcodes.DealNotFound, "deal not found")               //nolint:gochecknoglobals
	ErrUnexpectedStatus = domain.NewError(errcodes.CRMBadResponse, "unexpected response status") //nolint:gochecknoglobals
)

type Options struct {
	BaseURL     string
	AccessToken string
	// Timeout of a single CRM call. Zero means no timeout.
	Timeout         time.Duration
	PriceProperty   string
	ContactProperty string
	UUIDProperty    string
	LogFieldMaxLen  int
	// HTTPClient replaces the default transport chain, mostly in tests.
	HTTPClient *http.Client
}

// Client talks to the HubSpot CRM deals API with a private app token.
type Client struct {
	baseURL         string
	accessToken     string
	priceProperty   string
	contactProperty string
	uuidProperty    string
	httpClient      *http.Client
}

// NewClient creates a CRM client. Calls are logged and carry the bearer token.
func NewClient(opts Options) Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			//nolint:exhaustruct
			Timeout: opts.Timeout,
			Transport: httpx.NewAuthBearerRoundTripper(
				httpx.NewLoggingRoundTripper(
					http.DefaultTransport,
					httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
					httpx.WithLogFieldMaxLen(opts.LogFieldMaxLen),
					httpx.WithUpstream("hubspot"),
				),
				httpx.StaticToken(opts.AccessToken),
			),
		}
	}

	return Client{
		baseURL:         strings.TrimRight(opts.BaseURL, "/"),
		accessToken:     opts.AccessToken,
		priceProperty:   opts.PriceProperty,
		contactProperty: opts.ContactProperty,
		uuidProperty:    opts.UUIDProperty,
		httpClient:      httpClient,
	}
}

// HasCredential reports whether an access token was configured.
func (c Client) HasCredential() bool {
	return c.accessToken != ""
}

// SearchDealByUUID returns the first deal whose uuid property equals uuid.
func (c Client) SearchDealByUUID(ctx context.Context, uuid string) (entity.DealRecord, error) {
	body, err := json.Marshal(searchRequest{
		FilterGroups: []filterGroup{{
			Filters: []filter{{
				PropertyName: c.uuidProperty,
				Operator:     "EQ",
				Value:        uuid,
			}},
		}},
		Properties: []string{c.priceProperty, c.contactProperty, c.uuidProperty},
		Limit:      1,
	})
	if err != nil {
		return entity.DealRecord{}, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return entity.DealRecord{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	var resp searchResponse

	if err = c.do(req, &resp); err != nil {
		return entity.DealRecord{}, fmt.Errorf("c.do: %w", err)
	}

	if len(resp.Results) == 0 {
		return entity.DealRecord{}, ErrDealNotFound
	}

	return c.record(resp.Results[0]), nil
}

// GetDealByID reads a deal by its HubSpot object id.
func (c Client) GetDealByID(ctx context.Context, id string) (entity.DealRecord, error) {
	query := url.Values{}
	query.Set("properties", c.priceProperty+","+c.contactProperty)

	endpoint := c.baseURL + dealPath + url.PathEscape(id) + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return entity.DealRecord{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	var resp dealObject

	if err = c.do(req, &resp); err != nil {
		return entity.DealRecord{}, fmt.Errorf("c.do: %w", err)
	}

	return c.record(resp), nil
}

func (c Client) do(req *http.Request, dest any) error {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WrapError(err, errcodes.CRMUnavailable, "crm request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrDealNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("status %d: %w", resp.StatusCode, ErrUnexpectedStatus)
	}

	if err = json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return domain.WrapError(err, errcodes.CRMBadResponse, "crm response decode failed")
	}

	return nil
}

// record maps the raw properties. Empty fields are left for the caller to
// fill.
func (c Client) record(obj dealObject) entity.DealRecord {
	return entity.DealRecord{
		PriceFinal:           obj.Properties[c.priceProperty],
		AdvisorContactHandle: obj.Properties[c.contactProperty],
	}
}
