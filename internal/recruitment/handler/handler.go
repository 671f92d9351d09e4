// Package handler exposes the recruitment dashboard endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"recruitdesk/internal/platform/middleware"
	"recruitdesk/internal/recruitment/metrics"
	"recruitdesk/internal/recruitment/models"
	dErrors "recruitdesk/pkg/domain-errors"
	"recruitdesk/pkg/platform/httputil"
	"recruitdesk/pkg/requestcontext"
)

// Service defines the recruitment operations the handlers delegate to.
type Service interface {
	Advance(ctx context.Context, actor models.Actor, cmd models.AdvanceCommand) (*models.AdvanceResult, error)
	Registrations(ctx context.Context, domain string) ([]models.RegistrationView, error)
	DomainCounts(ctx context.Context) (map[string]int, error)
	TotalRegistrations(ctx context.Context) (int, error)
}

// Handler is the thin HTTP layer over the recruitment service.
type Handler struct {
	logger  *slog.Logger
	service Service
	metrics *metrics.Metrics
}

// New creates a recruitment Handler. m may be nil.
func New(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		metrics: m,
	}
}

// Register wires the dashboard routes. The roster upload takes CSV, so the
// JSON content-type check only wraps the JSON mutation routes.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Post("/bulk-update", h.handleBulkUpdate(""))
		for _, domain := range models.Domains {
			r.Post("/"+domain+"-bulk-update", h.handleBulkUpdate(domain))
		}
	})

	r.Post("/bulk-update/roster", h.handleRosterUpload)

	for _, domain := range models.Domains {
		r.Get("/"+domain+"-registrations", h.handleRegistrations(domain))
		r.Get("/"+domain+"-registrations/export", h.handleExport(domain))
	}

	r.Get("/domain-counts", h.handleDomainCounts)
	r.Get("/total-registrations", h.handleTotalRegistrations)
}

// actor pulls the authenticated identity set by the auth middleware. A
// missing identity past RequireAuth is a wiring bug, reported as internal.
func (h *Handler) actor(ctx context.Context, w http.ResponseWriter, requestID string) (models.Actor, bool) {
	act := models.Actor{
		ID:    requestcontext.UserID(ctx),
		Email: requestcontext.UserEmail(ctx),
	}
	if act.ID == "" || act.Email == "" {
		h.logger.ErrorContext(ctx, "actor missing from context despite auth middleware",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return models.Actor{}, false
	}
	return act, true
}

// handleBulkUpdate serves both the generic route and the per-domain aliases.
// With a fixed domain, or one in the body, the dual-slot advancer runs; the
// legacy single-round path runs otherwise, or when the body asks for it.
func (h *Handler) handleBulkUpdate(fixedDomain string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := requestcontext.RequestID(ctx)

		act, ok := h.actor(ctx, w, requestID)
		if !ok {
			return
		}

		req, ok := httputil.DecodeAndPrepare[models.BulkUpdateRequest](w, r, h.logger, ctx, requestID)
		if !ok {
			return
		}

		domain := fixedDomain
		if domain == "" {
			domain = req.Domain
		}

		cmd := models.AdvanceCommand{
			Identifiers: req.RegistrationNumbers,
			Round:       req.Round,
		}
		if req.Legacy && fixedDomain == "" {
			cmd.LegacyScope = domain
		} else {
			cmd.TargetDomain = domain
		}

		h.advance(ctx, w, act, cmd, requestID)
	}
}

func (h *Handler) advance(ctx context.Context, w http.ResponseWriter, act models.Actor, cmd models.AdvanceCommand, requestID string) {
	result, err := h.service.Advance(ctx, act, cmd)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeValidation) || dErrors.Is(err, dErrors.CodeBadRequest) {
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "bulk round advancement failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleRegistrations(domain string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		views, err := h.service.Registrations(ctx, domain)
		if err != nil {
			h.logger.ErrorContext(ctx, "list registrations failed",
				"request_id", requestcontext.RequestID(ctx),
				"domain", domain,
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}

		httputil.WriteJSON(w, http.StatusOK, views)
	}
}

func (h *Handler) handleDomainCounts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.service.DomainCounts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "domain counts failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.DomainCountsResponse{DomainCounts: counts})
}

func (h *Handler) handleTotalRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	total, err := h.service.TotalRegistrations(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "total registrations failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.TotalRegistrationsResponse{TotalRegistrations: total})
}
