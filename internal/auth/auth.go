package auth

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	apperrors "cavemap-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// CredentialVerifier verifies the identity of a calling service from an
// inbound request. The static token scheme can be swapped for mutual TLS
// or signed JWTs without touching the call sites.
type CredentialVerifier interface {
	VerifyService(r *http.Request) error
}

// StaticTokenVerifier verifies the shared X-Service-Token header
type StaticTokenVerifier struct {
	token string
}

// NewStaticTokenVerifier creates a verifier for the shared service token
func NewStaticTokenVerifier(token string) *StaticTokenVerifier {
	return &StaticTokenVerifier{token: token}
}

// VerifyService checks the service token header with a constant-time compare
func (v *StaticTokenVerifier) VerifyService(r *http.Request) error {
	presented := r.Header.Get("X-Service-Token")
	if presented == "" {
		return apperrors.ErrServiceOnly
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(v.token)) != 1 {
		return apperrors.ErrServiceOnly
	}
	return nil
}

// UserClaims are the claims minted by the auth proxy for end users
type UserClaims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenVerifier validates end-user JWTs issued by the auth proxy
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a verifier for the shared JWT secret
func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

// VerifyUser extracts and validates the bearer token on a request,
// returning the user's claims
func (v *TokenVerifier) VerifyUser(r *http.Request) (*UserClaims, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, apperrors.ErrInvalidToken
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.Email == "" {
		return nil, apperrors.ErrEmailNotInToken
	}
	return claims, nil
}
