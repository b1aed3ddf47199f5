package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginRecordsRequest(t *testing.T) {
	m := New()

	done := m.Begin()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight))
	done(http.MethodGet, "/student/get-cours/:id", http.StatusOK)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/student/get-cours/:id", "200")))
}

func TestUnmatchedRouteLabel(t *testing.T) {
	m := New()

	m.Begin()(http.MethodGet, "", http.StatusNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestHandlerServesMetrics(t *testing.T) {
	m := New()
	m.Begin()(http.MethodPost, "/login", http.StatusOK)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "coursehub_http_requests_total")
}
