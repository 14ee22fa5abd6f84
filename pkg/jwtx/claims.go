package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access-token claims issued by the catalog service.
type Claims struct {
	jwt.RegisteredClaims

	// Role is "admin" or "viewer".
	Role string `json:"role,omitempty"`

	// Scopes such as "catalog:read" or "admin:write".
	Scopes []string `json:"scopes,omitempty"`

	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// AccessClaims is the input for NewAccessClaims.
type AccessClaims struct {
	Subject  string
	Role     string
	Scopes   []string
	Email    string
	Name     string
	Issuer   string
	Audience []string
	TTL      time.Duration
}

// NewAccessClaims stamps iat/nbf/exp relative to now and assigns a jti.
func NewAccessClaims(in AccessClaims, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    in.Issuer,
			Subject:   in.Subject,
			Audience:  jwt.ClaimStrings(in.Audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(in.TTL)),
			ID:        NewJTI(),
		},
		Role:   in.Role,
		Scopes: in.Scopes,
		Email:  in.Email,
		Name:   in.Name,
	}
}

// NewJTI returns a random URL-safe token identifier.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// HasScope reports whether scope was granted.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}

func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" || c.Issuer == expected {
		return nil
	}
	return ErrIssuer
}

// ValidateAudience passes when any expected audience is present.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 {
		return nil
	}
	for _, want := range expected {
		if slices.Contains(c.Audience, want) {
			return nil
		}
	}
	return ErrAudience
}

// ValidateExpiry checks exp and nbf against now with the given clock-skew
// leeway.
func (c *Claims) ValidateExpiry(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
