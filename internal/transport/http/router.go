// Package httptransport assembles the public router. It owns middleware
// ordering and route mounting; everything behind /api requires a bearer
// token.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recruitdesk/internal/platform/middleware"
	"recruitdesk/internal/recruitment/handler"
	"recruitdesk/pkg/platform/httputil"
	authmw "recruitdesk/pkg/platform/middleware/auth"
	"recruitdesk/pkg/platform/middleware/metadata"
	"recruitdesk/pkg/platform/middleware/requesttime"
)

const apiTimeout = 30 * time.Second

// Deps carries everything the router mounts.
type Deps struct {
	Logger       *slog.Logger
	JWTValidator authmw.JWTValidator
	Recruitment  *handler.Handler
	// StoreHealth reports the persistence backend; CacheHealth is optional
	// and nil when no Redis is configured.
	StoreHealth func(ctx context.Context) error
	CacheHealth func(ctx context.Context) error
	CORSOrigins []string
}

// NewRouter wires middleware and routes. Ordering matters: recovery wraps
// everything, request ID and the request clock come before logging so the
// access line carries them.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(middleware.Logger(deps.Logger))

	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   deps.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", handleHealth(deps))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(apiTimeout))
		api.Use(authmw.RequireAuth(deps.JWTValidator, deps.Logger))
		deps.Recruitment.Register(api)
	})

	return r
}

func handleHealth(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status := map[string]string{"status": "ok", "store": "ok"}
		code := http.StatusOK

		if err := deps.StoreHealth(ctx); err != nil {
			status["status"] = "degraded"
			status["store"] = err.Error()
			code = http.StatusServiceUnavailable
		}
		if deps.CacheHealth != nil {
			status["cache"] = "ok"
			// A dead cache degrades latency, not correctness; report it
			// without failing the probe.
			if err := deps.CacheHealth(ctx); err != nil {
				status["cache"] = err.Error()
			}
		}

		httputil.WriteJSON(w, code, status)
	}
}
