package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rregexd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListVersions() types.VersionsResponse
	State() types.LoadState
	WaitState(ctx context.Context) (types.LoadState, error)
	Switch(version string) (types.LoadState, error)
	Exec(ctx context.Context, req types.ExecRequest) (types.ExecResponse, error)
	Share(q url.Values) types.ShareResponse
	Subscribe(fn func(types.LoadState)) (cancel func())
	Status() types.StatusResponse
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	h := &handlers{svc: svc}
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if c := corsMiddleware(); c != nil {
		r.Use(c)
	}
	r.Use(MetricsMiddleware)

	r.Get("/versions", h.versions)
	r.Get("/state", h.state)
	r.Put("/version", h.switchVersion)
	r.Post("/exec", h.exec)
	r.Get("/share", h.share)
	r.Get("/events", h.events)
	r.Get("/status", h.status)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}
