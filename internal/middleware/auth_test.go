package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge/internal/crypto"
)

func TestJWTAuth(t *testing.T) {
	tokens := crypto.NewTokens("test-secret", time.Hour)
	valid, err := tokens.Issue(7)
	require.NoError(t, err)
	foreign, err := crypto.NewTokens("other-secret", time.Hour).Issue(7)
	require.NoError(t, err)

	h := JWTAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		assert.True(t, ok, "user id missing from context")
		w.Write([]byte(strconv.FormatInt(id, 10)))
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, ""},
		{"foreign token", "Bearer " + foreign, http.StatusUnauthorized, ""},
		{"valid", "Bearer " + valid, http.StatusOK, "7"},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestJWTAuth_InvalidTokenChallenge(t *testing.T) {
	h := JWTAuth(crypto.NewTokens("test-secret", time.Hour))(http.NotFoundHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/presets", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	assert.JSONEq(t, `{"error":"invalid or expired token"}`, rec.Body.String())
}

func TestUserIDFromContext(t *testing.T) {
	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()

	_, ok := UserIDFromContext(ctx)
	assert.False(t, ok, "empty context")

	_, ok = UserIDFromContext(WithUserID(ctx, 0))
	assert.False(t, ok, "zero id")

	id, ok := UserIDFromContext(WithUserID(ctx, 3))
	assert.True(t, ok)
	assert.Equal(t, int64(3), id)
}
