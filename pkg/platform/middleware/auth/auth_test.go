package auth

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"recruitdesk/pkg/requestcontext"
)

type stubValidator struct {
	claims *JWTClaims
	err    error
}

func (s *stubValidator) ValidateToken(string) (*JWTClaims, error) {
	return s.claims, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid token injects identity", func(t *testing.T) {
		validator := &stubValidator{claims: &JWTClaims{UserID: "user-1", Email: "staff@club.org"}}
		var gotUserID, gotEmail string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID = requestcontext.UserID(r.Context())
			gotEmail = requestcontext.UserEmail(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rr := httptest.NewRecorder()
		RequireAuth(validator, discardLogger())(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-1", gotUserID)
		assert.Equal(t, "staff@club.org", gotEmail)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		validator := &stubValidator{err: errors.New("bad signature")}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rr := httptest.NewRecorder()
		RequireAuth(validator, discardLogger())(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "unauthorized")
	})

	t.Run("missing header rejected", func(t *testing.T) {
		validator := &stubValidator{claims: &JWTClaims{UserID: "user-1"}}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		RequireAuth(validator, discardLogger())(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("non-bearer scheme rejected", func(t *testing.T) {
		validator := &stubValidator{claims: &JWTClaims{UserID: "user-1"}}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rr := httptest.NewRecorder()
		RequireAuth(validator, discardLogger())(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
