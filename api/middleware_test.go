package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UdayRajVadeghar/synera-backend/auth"
	"github.com/UdayRajVadeghar/synera-backend/models"
)

func issueTestToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.GenerateToken(&models.User{ID: userID, Email: "u@example.com"})
	require.NoError(t, err)
	return token
}

func callerEchoHandler(t *testing.T, wantCaller uuid.UUID, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		callerID, ok := ctxGetUserID(r.Context())
		assert.True(t, ok)
		assert.Equal(t, wantCaller, callerID)
	})
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	m := newAuthMiddleware()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	m.authenticate(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	m := newAuthMiddleware()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := httptest.NewRecorder()
	m.authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticateResolvesCaller(t *testing.T) {
	userID := uuid.New()
	token := issueTestToken(t, userID)
	m := newAuthMiddleware()

	called := false
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	m.authenticate(callerEchoHandler(t, userID, &called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
}

func TestResolveCallerNeverRejects(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	m := newAuthMiddleware()

	var sawCaller bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawCaller = ctxGetUserID(r.Context())
	})

	// Anonymous request passes through without a caller.
	rec := httptest.NewRecorder()
	m.resolveCaller(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sawCaller)

	// Garbage token also passes through without a caller.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = httptest.NewRecorder()
	m.resolveCaller(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sawCaller)

	// Valid token resolves the caller.
	userID := uuid.New()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, userID))
	rec = httptest.NewRecorder()
	m.resolveCaller(next).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawCaller)
}
