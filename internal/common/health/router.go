// internal/common/health/router.go
package health

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Readiness flips to ready once the job workers are open.
type Readiness struct {
	ready atomic.Bool
}

func (r *Readiness) MarkReady()    { r.ready.Store(true) }
func (r *Readiness) MarkNotReady() { r.ready.Store(false) }
func (r *Readiness) IsReady() bool { return r.ready.Load() }

// NewRouter serves /health, /ready and /metrics. A nil metrics handler
// defaults to the global prometheus registry.
func NewRouter(readiness *Readiness, metricsHandler http.Handler) http.Handler {
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}

	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer)

	mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "healthy")
	})
	mux.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if readiness == nil || !readiness.IsReady() {
			writeStatus(w, http.StatusServiceUnavailable, "starting")
			return
		}
		writeStatus(w, http.StatusOK, "ready")
	})
	mux.Handle("/metrics", metricsHandler)

	return mux
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{
		"status": status,
		"time":   time.Now().Format(time.RFC3339),
	})
}
