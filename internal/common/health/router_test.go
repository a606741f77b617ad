package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]string
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestRouter_Health(t *testing.T) {
	router := NewRouter(&Readiness{}, nil)

	rec, body := get(t, router, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["time"])
}

func TestRouter_Ready(t *testing.T) {
	readiness := &Readiness{}
	router := NewRouter(readiness, nil)

	rec, body := get(t, router, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "starting", body["status"])

	readiness.MarkReady()
	rec, body = get(t, router, "/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", body["status"])

	readiness.MarkNotReady()
	rec, _ = get(t, router, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_NilReadiness(t *testing.T) {
	rec, _ := get(t, NewRouter(nil, nil), "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "health_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	router := NewRouter(&Readiness{}, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	rec, _ := get(t, router, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "health_test_total 1")
}

func TestRouter_UnknownPath(t *testing.T) {
	rec, _ := get(t, NewRouter(&Readiness{}, nil), "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
