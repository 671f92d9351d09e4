package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"recruitdesk/internal/recruitment/models"
	"recruitdesk/internal/recruitment/roster"
	dErrors "recruitdesk/pkg/domain-errors"
	"recruitdesk/pkg/platform/httputil"
	"recruitdesk/pkg/requestcontext"
)

// maxRosterSize caps uploaded roster files at 10 MiB.
const maxRosterSize = 10 << 20

// handleExport streams a domain's registrations as a CSV attachment.
func (h *Handler) handleExport(domain string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		views, err := h.service.Registrations(ctx, domain)
		if err != nil {
			h.logger.ErrorContext(ctx, "registration export failed",
				"request_id", requestcontext.RequestID(ctx),
				"domain", domain,
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}

		rows := make([]roster.ExportRow, 0, len(views))
		for _, v := range views {
			rows = append(rows, roster.ExportRow{
				Name:           v.Name,
				RegisterNumber: v.RegisterNumber,
				Email:          v.Email,
				Phone:          v.Phone,
				RegisteredAt:   v.RegisteredAt,
				Round:          strconv.Itoa(v.Round),
			})
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+domain+`_registrations.csv"`)
		w.WriteHeader(http.StatusOK)

		if err := roster.WriteExport(w, rows); err != nil {
			// Headers are gone; all that is left is logging the broken stream.
			h.logger.ErrorContext(ctx, "registration export write failed",
				"request_id", requestcontext.RequestID(ctx),
				"domain", domain,
				"error", err.Error(),
			)
		}
	}
}

// handleRosterUpload advances every registration number found in an
// uploaded CSV roster. Accepts either a multipart form with a "file" field
// or a raw CSV body; round and optional domain come from form or query
// parameters.
func (h *Handler) handleRosterUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	act, ok := h.actor(ctx, w, requestID)
	if !ok {
		return
	}

	body := r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxRosterSize); err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid multipart body"))
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "roster file is required"))
			return
		}
		defer file.Close()
		body = file
	} else {
		body = http.MaxBytesReader(w, r.Body, maxRosterSize)
	}

	round, err := strconv.Atoi(r.FormValue("round"))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "valid round number (1-3) is required"))
		return
	}

	domain := strings.TrimSpace(strings.ToLower(r.FormValue("domain")))
	if domain != "" && !models.IsKnownDomain(domain) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "domain must be one of technical, creatives, business, events"))
		return
	}

	identifiers, err := roster.ParseIdentifiers(body)
	if err != nil {
		if errors.Is(err, roster.ErrNoHeaders) || errors.Is(err, roster.ErrMissingRegNumberColumn) || errors.Is(err, roster.ErrNoIdentifiers) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, err.Error()))
			return
		}
		h.logger.WarnContext(ctx, "roster parse failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "malformed roster file"))
		return
	}
	h.metrics.AddRosterRows(len(identifiers))

	h.advance(ctx, w, act, models.AdvanceCommand{
		Identifiers:  identifiers,
		Round:        round,
		TargetDomain: domain,
		FromRoster:   true,
	}, requestID)
}
