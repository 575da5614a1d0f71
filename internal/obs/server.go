package obs

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// ServerConfig configures the debug/metrics HTTP surface. Grounded on the
// teacher's RouterConfig/DefaultObservabilityConfig split: the engine
// never binds a socket itself, a host process owns that.
type ServerConfig struct {
	// ListenAddr should stay loopback-only outside of tests; FastStack is
	// a headless engine, not a public service, so there is no equivalent
	// of the teacher's ALLOW_DEBUG_EXTERNAL escape hatch here.
	ListenAddr        string
	CORSOrigins       []string
	RequestsPerSecond float64
	Burst             int
}

// DefaultServerConfig mirrors the teacher's DefaultObservabilityConfig
// safe defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		ListenAddr:        "127.0.0.1:6061",
		CORSOrigins:       []string{"http://localhost:*"},
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

// NewServer builds the chi router exposing /health, /metrics, a polling
// /snapshot JSON endpoint backed by snapshotFn, and (when hub is non-nil)
// the spectator websocket endpoint at /spectate. snapshotFn may be nil if
// no snapshot is available yet (e.g. before the engine has ticked once).
func NewServer(cfg ServerConfig, reg *prometheus.Registry, hub *Hub, snapshotFn func() Snapshot) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(ipRateLimit(cfg.RequestsPerSecond, cfg.Burst))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	if snapshotFn != nil {
		r.Get("/snapshot", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(snapshotFn())
		})
	}

	if hub != nil {
		r.Get("/spectate", hub.ServeHTTP)
	}

	return r
}

// ipRateLimit is a single shared limiter (not per-IP) since the debug
// surface is loopback-only in practice; a per-IP map like the teacher's
// IPRateLimiter is overkill for a process with one or two local
// consumers, but the same golang.org/x/time/rate primitive does the work.
func ipRateLimit(perSecond float64, burst int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, req)
		})
	}
}
