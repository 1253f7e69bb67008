package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/passforge/passforge/internal/crypto"
)

type ctxKey int

const accountKey ctxKey = iota

// TokenValidator checks account tokens. Implemented by crypto.Tokens.
type TokenValidator interface {
	Validate(token string) (*crypto.Claims, error)
}

// JWTAuth guards account routes. The request must carry an HS256 token issued
// by passforge for the passforge-api audience, with an expiry and a positive
// user_id claim; that user id is then available via UserIDFromContext.
func JWTAuth(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, msg := bearerToken(r)
			if msg != "" {
				writeJSONError(w, http.StatusUnauthorized, msg)
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
		})
	}
}

// bearerToken extracts the token from the Authorization header, or returns
// the message to report when it is absent or malformed.
func bearerToken(r *http.Request) (string, string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", "missing authorization header"
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", "invalid authorization format"
	}
	return strings.TrimSpace(token), ""
}

// WithUserID returns a copy of ctx carrying the account id of the caller.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, accountKey, userID)
}

// UserIDFromContext returns the account id set by JWTAuth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accountKey).(int64)
	return id, ok && id > 0
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
