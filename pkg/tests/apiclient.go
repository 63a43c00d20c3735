package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const headerNameSessionID = "X-Session-Id"

// APIClient calls the landing API under test. Success bodies decode into
// dest, error bodies into errDest; exchanges are written to the test log.
type APIClient struct {
	tb         testing.TB
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(tb testing.TB, baseURL string, httpClient *http.Client) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		tb:         tb,
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// Lookup calls GET /lookup with the given query.
func (a APIClient) Lookup(ctx context.Context, query url.Values, dest, errDest any) (*http.Response, error) {
	return a.Get(ctx, "/lookup?"+query.Encode(), nil, dest, errDest)
}

// PostEvent sends a raw event body on behalf of a page session.
func (a APIClient) PostEvent(ctx context.Context, sessionID, body string, errDest any) (*http.Response, error) {
	headers := http.Header{}
	if sessionID != "" {
		headers.Set(headerNameSessionID, sessionID)
	}

	return a.do(ctx, http.MethodPost, "/v1/events", headers, bytes.NewReader([]byte(body)), nil, errDest)
}

func (a APIClient) Get(
	ctx context.Context,
	endpoint string,
	headers http.Header,
	dest any,
	errDest any,
) (*http.Response, error) {
	return a.do(ctx, http.MethodGet, endpoint, headers, http.NoBody, dest, errDest)
}

func (a APIClient) do(
	ctx context.Context,
	httpMethod string,
	endpoint string,
	headers http.Header,
	payload io.Reader,
	dest any,
	errDest any,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, httpMethod, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if httpMethod == http.MethodPost && headers.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	a.tb.Logf("request: %s %s", req.Method, req.URL)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		a.tb.Logf("response: %s", dump)
	}

	if err = decodeBody(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("decodeBody: %w", err)
	}

	return resp, nil
}

func decodeBody(r *http.Response, dest, errDest any) error {
	success := r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices

	target := errDest
	if success {
		target = dest
	}

	if target == nil {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
