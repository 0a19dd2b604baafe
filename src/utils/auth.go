package utils

import (
	"github.com/go-chi/jwtauth"
)

// TokenVerifier validates advisor bearer tokens issued by the identity
// provider and extracts the advisor id from the subject claim.
type TokenVerifier struct {
	auth *jwtauth.JWTAuth
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{auth: jwtauth.New("HS256", []byte(secret), nil)}
}

// AdvisorFromToken returns the advisor id carried by the token, or an
// Unauthorized error when the token is absent, invalid or has no subject.
func (v *TokenVerifier) AdvisorFromToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", Unauthorized("auth token not detected")
	}
	token, err := jwtauth.VerifyToken(v.auth, tokenString)
	if err != nil {
		return "", Unauthorized("invalid auth token")
	}
	if token.Subject() == "" {
		return "", Unauthorized("token missing subject claim")
	}
	return token.Subject(), nil
}
