// Package httputil centralizes JSON encoding and error translation for handlers.
package httputil

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	dErrors "recruitdesk/pkg/domain-errors"
)

// errorResponse is the JSON error envelope every endpoint returns.
type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope.
// Internal errors render without a description so store/driver detail
// never reaches callers; everything else keeps its message.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeInternal
	desc := ""
	var de *dErrors.Error
	if errors.As(err, &de) {
		code = de.Code
		if code != dErrors.CodeInternal {
			desc = de.Message
		}
	}
	WriteJSON(w, dErrors.HTTPStatus(code), errorResponse{
		Error:            string(code),
		ErrorDescription: desc,
	})
}

// preparer constrains request types to the Normalize-then-Validate shape.
type preparer[T any] interface {
	*T
	Normalize()
	Validate() error
}

// DecodeAndPrepare decodes the request body into T, normalizes and validates
// it, and writes the error response itself when anything fails. Handlers use
// the second return value to bail out early:
//
//	req, ok := httputil.DecodeAndPrepare[BulkUpdateRequest](w, r, h.logger, ctx, requestID)
//	if !ok {
//		return
//	}
func DecodeAndPrepare[T any, PT preparer[T]](
	w http.ResponseWriter,
	r *http.Request,
	logger *slog.Logger,
	ctx context.Context,
	requestID string,
) (PT, bool) {
	req := PT(new(T))
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		logger.WarnContext(ctx, "invalid request body",
			"request_id", requestID,
			"error", err.Error(),
		)
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		logger.WarnContext(ctx, "request validation failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		WriteError(w, err)
		return nil, false
	}
	return req, true
}
