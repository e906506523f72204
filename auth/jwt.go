package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier validates HS256-signed tokens minted outside of Firebase. It is
// wired when no Firebase credential is configured, which keeps local
// development and CI off the network. Subject and email come from the
// standard sub/email claims.
type JWTVerifier struct {
	Secret []byte
}

var _ Verifier = (*JWTVerifier)(nil)

// VerifyIDToken verifies the HS256 signature and extracts the claims
func (v *JWTVerifier) VerifyIDToken(_ context.Context, idToken string) (*Claims, error) {
	tok, err := jwt.Parse(idToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.Secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}
	sub, _ := mc["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidToken)
	}
	claims := &Claims{UID: sub}
	if email, ok := mc["email"].(string); ok {
		claims.Email = email
	}
	return claims, nil
}
