package lookupapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"offer_landing/internal/domain/entity"
	"offer_landing/internal/domain/value"
	"offer_landing/pkg/httpx"
	"offer_landing/pkg/logx"
	"offer_landing/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrMalformedBody    = errors.New("malformed response body")
)

// Client reads deal records from the lookup endpoint of this service.
type Client struct {
	baseURL    string
	mode       value.LookupMode
	httpClient *http.Client
}

// NewClient builds a client that looks deals up in mode. A nil httpClient
// gets a logging transport.
func NewClient(baseURL string, mode value.LookupMode, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = &http.Client{
			//nolint:exhaustruct
			Transport: httpx.NewLoggingRoundTripper(
				http.DefaultTransport,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithUpstream("lookup-api"),
			),
		}
	}

	return Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		mode:       mode,
		httpClient: httpClient,
	}
}

func (c Client) Fetch(ctx context.Context, id string) (entity.DealRecord, error) {
	query := url.Values{}
	query.Set(c.mode.QueryParam(), id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/lookup?"+query.Encode(), http.NoBody)
	if err != nil {
		return entity.DealRecord{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.DealRecord{}, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return entity.DealRecord{}, fmt.Errorf("status %d: %w", resp.StatusCode, ErrUnexpectedStatus)
	}

	var body *rest.DealRecord

	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.DealRecord{}, fmt.Errorf("json.Decode: %w: %w", err, ErrMalformedBody)
	}

	if body == nil {
		return entity.DealRecord{}, ErrMalformedBody
	}

	return entity.DealRecord{
		PriceFinal:           body.PriceFinal,
		AdvisorContactHandle: body.AdvisorContactHandle,
	}, nil
}
