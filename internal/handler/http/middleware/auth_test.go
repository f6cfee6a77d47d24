package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/user"
	"github.com/chronoshq/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedHandler(jwtSvc jwt.Service, inner http.Handler) http.Handler {
	verified := AuthRequired(jwtSvc.JWTAuth())(inner)
	return jwtauth.Verifier(jwtSvc.JWTAuth())(verified)
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestAuthRequired_AcceptsAccessToken(t *testing.T) {
	t.Parallel()

	jwtSvc := jwt.NewJWTService("secret", "1h", "24h")
	token, _, err := jwtSvc.GenerateAccessToken("user-1", "a@b.com", nil, "company-1", user.RoleEmployee)
	require.NoError(t, err)

	inner, called := okHandler()
	handler := newProtectedHandler(jwtSvc, inner)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestAuthRequired_RejectsRefreshToken(t *testing.T) {
	t.Parallel()

	jwtSvc := jwt.NewJWTService("secret", "1h", "24h")
	token, _, err := jwtSvc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	inner, called := okHandler()
	handler := newProtectedHandler(jwtSvc, inner)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAuthRequired_RejectsMissingToken(t *testing.T) {
	t.Parallel()

	jwtSvc := jwt.NewJWTService("secret", "1h", "24h")
	inner, called := okHandler()
	handler := newProtectedHandler(jwtSvc, inner)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestRequireManager(t *testing.T) {
	t.Parallel()

	jwtSvc := jwt.NewJWTService("secret", "1h", "24h")

	tests := []struct {
		name     string
		role     user.Role
		wantCode int
	}{
		{"admin passes", user.RoleAdmin, http.StatusOK},
		{"manager passes", user.RoleManager, http.StatusOK},
		{"employee forbidden", user.RoleEmployee, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token, _, err := jwtSvc.GenerateAccessToken("user-1", "a@b.com", nil, "company-1", tt.role)
			require.NoError(t, err)

			inner, _ := okHandler()
			handler := jwtauth.Verifier(jwtSvc.JWTAuth())(RequireManager(inner))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
