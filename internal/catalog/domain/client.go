package domain

import (
	"net/mail"
	"strings"
	"time"
)

// Client is a viewer account with a bounded access window.
type Client struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	RegisteredAt time.Time
	ExpiresAt    time.Time
	CreatedBy    string // admin id; empty when the admin was removed
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Status classifies the client's access window at now.
func (c Client) Status(now time.Time) StatusReport {
	return Classify(now, c.RegisteredAt, c.ExpiresAt)
}

// Validate checks the fields an admin controls.
func (c Client) Validate() error {
	if err := ValidateName(c.Name, 100); err != nil {
		return err
	}
	if err := ValidateEmail(c.Email); err != nil {
		return err
	}
	if c.RegisteredAt.IsZero() || c.ExpiresAt.IsZero() {
		return Validationf("registration and expiration dates are required")
	}
	if c.ExpiresAt.Before(c.RegisteredAt) {
		return Validationf("expiration must not be before registration")
	}
	return nil
}

// ClientPatch carries a partial client update. Nil fields are untouched.
type ClientPatch struct {
	Name         *string
	Email        *string
	Password     *string
	RegisteredAt *time.Time
	ExpiresAt    *time.Time
}

func (p ClientPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil && p.RegisteredAt == nil && p.ExpiresAt == nil
}

// Apply returns c with the patch applied. Password is handled by the caller
// since it needs hashing.
func (p ClientPatch) Apply(c Client) Client {
	if p.Name != nil {
		c.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		c.Email = NormalizeEmail(*p.Email)
	}
	if p.RegisteredAt != nil {
		c.RegisteredAt = *p.RegisteredAt
	}
	if p.ExpiresAt != nil {
		c.ExpiresAt = *p.ExpiresAt
	}
	return c
}

// ClientStatusCounts is the per-status breakdown shown on the dashboard.
type ClientStatusCounts struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
	Future       int `json:"future"`
}

func (c *ClientStatusCounts) Add(s ClientStatus) {
	c.Total++
	switch s {
	case StatusActive:
		c.Active++
	case StatusExpiringSoon:
		c.ExpiringSoon++
	case StatusExpired:
		c.Expired++
	case StatusFuture:
		c.Future++
	}
}

// CountStatuses classifies every client at now.
func CountStatuses(now time.Time, clients []Client) ClientStatusCounts {
	var out ClientStatusCounts
	for _, c := range clients {
		out.Add(c.Status(now).Status)
	}
	return out
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func ValidateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return Validationf("email is required")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return Validationf("invalid email %q", s)
	}
	return nil
}

func ValidateName(s string, maxLen int) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return Validationf("name is required")
	}
	if len([]rune(s)) > maxLen {
		return Validationf("name must be at most %d characters", maxLen)
	}
	return nil
}

// ValidatePassword enforces the minimum length used at account creation.
func ValidatePassword(s string) error {
	if len(s) < 6 {
		return Validationf("password must be at least 6 characters")
	}
	return nil
}
