// Package auth wraps the external identity provider. Handlers only ever see
// typed claims and sentinel errors; provider SDK types stay in here.
package auth

import (
	"context"
	"errors"
)

// Sentinel errors let handlers map provider failures onto HTTP statuses
// without inspecting provider SDK errors.
var (
	// ErrInvalidToken covers missing, malformed, expired and
	// signature-invalid credentials.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidCredentials is a rejected email/password sign-in.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrProviderUnavailable is a network-level failure reaching the provider.
	ErrProviderUnavailable = errors.New("identity provider unreachable")
	// ErrNotConfigured is a missing credential or API key on our side.
	ErrNotConfigured = errors.New("identity provider not configured")
)

// Claims is the verified identity of a caller. It is built once at the
// authentication boundary instead of threading a raw claims map through
// every handler.
type Claims struct {
	UID   string
	Email string
}

// Verifier validates a bearer credential and returns the caller's claims
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Claims, error)
}

// Session is the result of a successful password sign-in
type Session struct {
	UID     string
	Email   string
	IDToken string
}

// Provider is the full identity-provider surface: token verification plus
// account lifecycle and password sign-in
type Provider interface {
	Verifier
	CreateUser(ctx context.Context, email, password string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
}
