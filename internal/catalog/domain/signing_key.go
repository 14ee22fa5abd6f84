package domain

import "time"

// SigningKey is a token signing key stored encrypted at rest. A key signs
// until ExpiresAt and keeps verifying until housekeeping prunes it.
type SigningKey struct {
	ID                  string
	Kid                 string
	Algorithm           string
	PrivateKeyEncrypted []byte
	CreatedAt           time.Time
	RetiredAt           *time.Time
	ExpiresAt           time.Time
}

func (k SigningKey) IsActive(now time.Time) bool {
	return k.RetiredAt == nil && now.Before(k.ExpiresAt)
}
