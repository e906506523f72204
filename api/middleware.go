package api

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ChamilkaMihiraj2002/AutoShare/auth"
)

type contextKey int

const claimsKey contextKey = iota

// Middleware guards routes behind bearer-token verification against the
// identity provider
type Middleware struct {
	Verifier auth.Verifier
}

// Authenticated verifies the bearer credential and injects the caller's
// claims into the request context. Every failure mode of the credential
// itself yields the same fixed 401 body.
func (m Middleware) Authenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		token := bearerToken(r)
		if token == "" {
			unauthorized(w, r)
			return
		}

		claims, err := m.Verifier.VerifyIDToken(r.Context(), token)
		if err != nil {
			zap.S().Debugw("token verification failed",
				"url", r.URL,
				"error", err)
			unauthorized(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// WithClaims returns a context carrying the verified claims
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom extracts the verified claims placed by Authenticated
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	zap.S().Errorw("unauthorized",
		"url", r.URL)
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error": "unauthorized"}`))
}
