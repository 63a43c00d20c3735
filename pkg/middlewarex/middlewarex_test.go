package middlewarex_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"offer_landing/pkg/contextx"
	"offer_landing/pkg/logx"
	"offer_landing/pkg/metrics"
	"offer_landing/pkg/middlewarex"
)

func TestTraceIDAndSessionID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		traceHeader   string
		sessionHeader string
	}{
		{name: "Generated ids"},
		{name: "Forwarded ids", traceHeader: "trace-1", sessionHeader: "session-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var (
				gotTraceID   contextx.TraceID
				gotSessionID contextx.SessionID
			)

			handler := middlewarex.TraceID(middlewarex.SessionID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				var err error

				gotTraceID, err = contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				gotSessionID, err = contextx.SessionIDFromContext(r.Context())
				rq.NoError(err)
			})))

			r := httptest.NewRequest(http.MethodGet, "/lookup", http.NoBody)
			if tc.traceHeader != "" {
				r.Header.Set("X-Trace-Id", tc.traceHeader)
			}

			if tc.sessionHeader != "" {
				r.Header.Set("X-Session-Id", tc.sessionHeader)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			rq.NotEmpty(gotTraceID)
			rq.NotEmpty(gotSessionID)
			rq.Equal(gotTraceID.String(), w.Header().Get("X-Trace-Id"))
			rq.Equal(gotSessionID.String(), w.Header().Get("X-Session-Id"))

			if tc.traceHeader != "" {
				rq.Equal(tc.traceHeader, gotTraceID.String())
				rq.Equal(tc.sessionHeader, gotSessionID.String())
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	handler := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody).WithContext(ctx)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.JSONEq(`{"error":"internal server error"}`, w.Body.String())
	rq.Contains(buf.String(), "panic in handler")
	rq.Contains(buf.String(), `"`+logx.FieldStack+`"`)
}

func TestResponseLogging(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	handler := middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), 1024)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"priceFinal":"110000000","advisorContactHandle":""}`))
		}),
	)

	r := httptest.NewRequest(http.MethodGet, "/lookup?dealUuid=abc", http.NoBody).WithContext(ctx)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	rq.Equal(http.StatusOK, w.Code)
	rq.True(strings.Contains(buf.String(), `\"priceFinal\":\"110000000\"`))
	rq.Contains(buf.String(), `"`+logx.FieldResponseStatus+`":200`)
}

func TestTraceIDFallbacks(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "Request id header",
			headers: map[string]string{"X-Request-Id": "req-1"},
			want:    "req-1",
		},
		{
			name:    "Trace id wins",
			headers: map[string]string{"X-Request-Id": "req-1", "X-Trace-Id": "trace-1"},
			want:    "trace-1",
		},
		{
			name:    "Oversized id is replaced",
			headers: map[string]string{"X-Trace-Id": strings.Repeat("a", 65)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			handler := middlewarex.TraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			for k, v := range tc.headers {
				r.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			got := w.Header().Get("X-Trace-Id")
			if tc.want != "" {
				rq.Equal(tc.want, got)
				return
			}

			rq.NotEmpty(got)
			rq.LessOrEqual(len(got), 64)
		})
	}
}

func TestResponseLoggingLevel(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	handler := middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), 0)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}),
	)

	r := httptest.NewRequest(http.MethodGet, "/lookup", http.NoBody).WithContext(ctx)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	rq.Contains(buf.String(), `"level":"WARN"`)
}

func TestMetrics(t *testing.T) {
	rq := require.New(t)

	r := chi.NewRouter()
	r.Use(middlewarex.Metrics)
	r.Get("/v1/contact-link", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	before := testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/v1/contact-link", http.MethodGet, "200"))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/contact-link?action=oferta", http.NoBody))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", http.NoBody))

	rq.Equal(before+1, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("/v1/contact-link", http.MethodGet, "200")))
	rq.Equal(1.0, testutil.ToFloat64(metrics.HTTPRequests.WithLabelValues("unmatched", http.MethodGet, "404")))
}

func TestQuietPaths(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	ctx := contextx.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	masker := logx.NewSensitiveDataMasker()

	handler := middlewarex.RequestLogging(masker, 0, "/v1/events")(
		middlewarex.ResponseLogging(masker, 0, "/v1/events")(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
			}),
		),
	)

	r := httptest.NewRequest(http.MethodPost, "/v1/events", strings.NewReader(`{"name":"scroll_50_medellin"}`)).WithContext(ctx)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	rq.Empty(buf.String(), "debug lines are below the default level")

	r = httptest.NewRequest(http.MethodGet, "/lookup?dealUuid=abc", http.NoBody).WithContext(ctx)
	handler.ServeHTTP(httptest.NewRecorder(), r)

	rq.Contains(buf.String(), logx.FieldHTTPRequest)
	rq.Contains(buf.String(), logx.FieldHTTPResponse)
}
