package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	m := New()
	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/api/bets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.Get("/api/bets", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	for _, path := range []string{"/api/bets/1", "/api/bets/2", "/api/bets"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/bets/{id}", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/bets", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestHandler(t *testing.T) {
	m := New()
	m.requests.WithLabelValues("GET", "/api/stats/bets", "200").Inc()

	tests := []struct {
		name         string
		path         string
		health       HealthFunc
		expectedCode int
		expectedBody string
	}{
		{
			name:         "Metrics",
			path:         "/metrics",
			health:       func(context.Context) error { return nil },
			expectedCode: http.StatusOK,
			expectedBody: `betledger_http_requests_total{method="GET",route="/api/stats/bets",status="200"} 1`,
		},
		{
			name:         "Healthy",
			path:         "/healthz",
			health:       func(context.Context) error { return nil },
			expectedCode: http.StatusOK,
			expectedBody: "ok",
		},
		{
			name:         "Database down",
			path:         "/healthz",
			health:       func(context.Context) error { return errors.New("connection refused") },
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			m.Handler(tt.health).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.expectedCode, rr.Code)
			assert.True(t, strings.Contains(rr.Body.String(), tt.expectedBody), rr.Body.String())
		})
	}
}
