package testutil

import (
	"net/http"
	"time"

	"recruitdesk/pkg/requestcontext"
)

// WithStaff stamps an authenticated staff identity onto the request context,
// simulating what the auth middleware does for valid tokens.
func WithStaff(req *http.Request, userID, email string) *http.Request {
	ctx := requestcontext.WithUserID(req.Context(), userID)
	ctx = requestcontext.WithUserEmail(ctx, email)
	return req.WithContext(ctx)
}

// WithRequestTime pins the request-scoped clock, simulating the request
// time middleware.
func WithRequestTime(req *http.Request, at time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), at))
}
