package prober

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusping/internal/model"
)

func TestCheckStatusClassification(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/head-only", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/client-error", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/server-error", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/redirect-boundary", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(399)
	})
	mux.HandleFunc("/hop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/ok", http.StatusFound)
	})
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	p := NewHTTPProber()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus string
		expectedCode   int
		expectedKind   string
	}{
		{
			name:           "GET 200 is up",
			method:         model.MonitorMethodGet,
			path:           "/ok",
			expectedStatus: model.MonitorStatusUp,
			expectedCode:   http.StatusOK,
		},
		{
			name:           "HEAD request uses HEAD method",
			method:         model.MonitorMethodHead,
			path:           "/head-only",
			expectedStatus: model.MonitorStatusUp,
			expectedCode:   http.StatusOK,
		},
		{
			name:           "Status 399 is still up",
			method:         model.MonitorMethodGet,
			path:           "/redirect-boundary",
			expectedStatus: model.MonitorStatusUp,
			expectedCode:   399,
		},
		{
			name:           "Status 404 is down with http_error",
			method:         model.MonitorMethodGet,
			path:           "/client-error",
			expectedStatus: model.MonitorStatusDown,
			expectedCode:   http.StatusNotFound,
			expectedKind:   model.ErrorKindHTTPError,
		},
		{
			name:           "Status 500 is down with http_error",
			method:         model.MonitorMethodGet,
			path:           "/server-error",
			expectedStatus: model.MonitorStatusDown,
			expectedCode:   http.StatusInternalServerError,
			expectedKind:   model.ErrorKindHTTPError,
		},
		{
			name:           "Redirects are followed",
			method:         model.MonitorMethodGet,
			path:           "/hop",
			expectedStatus: model.MonitorStatusUp,
			expectedCode:   http.StatusOK,
		},
		{
			name:           "Redirect loop stops at the cap and records the last response",
			method:         model.MonitorMethodGet,
			path:           "/loop",
			expectedStatus: model.MonitorStatusUp,
			expectedCode:   http.StatusFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			monitor := model.Monitor{
				ID:      "monitor-1",
				URL:     server.URL + tc.path,
				Method:  tc.method,
				Timeout: 5,
			}

			outcome := p.Check(context.Background(), monitor)

			assert.Equal(t, "monitor-1", outcome.MonitorID)
			assert.Equal(t, tc.expectedStatus, outcome.Status)
			require.NotNil(t, outcome.StatusCode)
			assert.Equal(t, tc.expectedCode, *outcome.StatusCode)
			require.NotNil(t, outcome.ResponseTimeMs)
			assert.GreaterOrEqual(t, *outcome.ResponseTimeMs, int64(0))
			assert.False(t, outcome.CheckedAt.IsZero())
			if tc.expectedKind != "" {
				require.NotNil(t, outcome.ErrorKind)
				assert.Equal(t, tc.expectedKind, *outcome.ErrorKind)
				assert.NotNil(t, outcome.ErrorMessage)
			} else {
				assert.Nil(t, outcome.ErrorKind)
				assert.Nil(t, outcome.ErrorMessage)
			}
		})
	}
}

func TestCheckTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
	}))
	defer server.Close()

	p := NewHTTPProber()
	monitor := model.Monitor{
		ID:      "monitor-1",
		URL:     server.URL,
		Method:  model.MonitorMethodGet,
		Timeout: 1,
	}

	outcome := p.Check(context.Background(), monitor)

	assert.Equal(t, model.MonitorStatusDown, outcome.Status)
	assert.Nil(t, outcome.StatusCode)
	require.NotNil(t, outcome.ErrorKind)
	assert.Equal(t, model.ErrorKindTimeout, *outcome.ErrorKind)
}

func TestCheckConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	targetURL := server.URL
	server.Close()

	p := NewHTTPProber()
	monitor := model.Monitor{
		ID:      "monitor-1",
		URL:     targetURL,
		Method:  model.MonitorMethodGet,
		Timeout: 5,
	}

	outcome := p.Check(context.Background(), monitor)

	assert.Equal(t, model.MonitorStatusDown, outcome.Status)
	require.NotNil(t, outcome.ErrorKind)
	assert.Equal(t, model.ErrorKindConnectionRefused, *outcome.ErrorKind)
}

func TestCheckDNSFailure(t *testing.T) {
	p := NewHTTPProber()
	monitor := model.Monitor{
		ID:      "monitor-1",
		URL:     "http://statusping-does-not-exist.invalid/health",
		Method:  model.MonitorMethodGet,
		Timeout: 5,
	}

	outcome := p.Check(context.Background(), monitor)

	assert.Equal(t, model.MonitorStatusDown, outcome.Status)
	require.NotNil(t, outcome.ErrorKind)
	assert.Equal(t, model.ErrorKindDNSFailure, *outcome.ErrorKind)
}

func TestCheckTLSError(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := NewHTTPProber()
	monitor := model.Monitor{
		ID:      "monitor-1",
		URL:     server.URL,
		Method:  model.MonitorMethodGet,
		Timeout: 5,
	}

	outcome := p.Check(context.Background(), monitor)

	assert.Equal(t, model.MonitorStatusDown, outcome.Status)
	require.NotNil(t, outcome.ErrorKind)
	assert.Equal(t, model.ErrorKindTLSError, *outcome.ErrorKind)
}

func TestCheckInvalidURL(t *testing.T) {
	p := NewHTTPProber()
	monitor := model.Monitor{
		ID:      "monitor-1",
		URL:     "://not-a-url",
		Method:  model.MonitorMethodGet,
		Timeout: 5,
	}

	outcome := p.Check(context.Background(), monitor)

	assert.Equal(t, model.MonitorStatusDown, outcome.Status)
	require.NotNil(t, outcome.ErrorKind)
	assert.Equal(t, model.ErrorKindUnknown, *outcome.ErrorKind)
}
