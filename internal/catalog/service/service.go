package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/pkg/idx"
)

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
	ErrBootstrapAlready      = fmt.Errorf("%w: system already bootstrapped", domain.ErrConflict)

	ErrEmailTaken        = fmt.Errorf("%w: email is already registered", domain.ErrConflict)
	ErrAccessExpired     = fmt.Errorf("%w: access_expired", domain.ErrConflict)
	ErrAccessNotStarted  = fmt.Errorf("%w: access_not_started", domain.ErrConflict)
	ErrActivityForbidden = fmt.Errorf("%w: viewers may only record demo_opened or demo_closed", domain.ErrValidation)
)

// Clock supplies the current instant in the location calendar days are
// counted in. The zero value uses time.Now in UTC.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func (c Clock) now() time.Time {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return now().In(loc)
}

// FixedClock always reports t.
func FixedClock(t time.Time) Clock {
	return Clock{Now: func() time.Time { return t }, Location: t.Location()}
}

// storeErr translates a store error into the matching domain kind. what names
// the record for the message.
func storeErr(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %s", domain.ErrNotFound, what)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %s already exists", domain.ErrConflict, what)
	case errors.Is(err, store.ErrConflict):
		return fmt.Errorf("%w: %s was modified concurrently", domain.ErrConflict, what)
	case domain.Kind(err) != nil:
		return err
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrDependency, what, err)
}

// txErr leaves classified errors alone and marks anything else (begin or
// commit failures) as a dependency error.
func txErr(err error) error {
	if err == nil || domain.Kind(err) != nil {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrDependency, err)
}

func recordActivity(
	ctx context.Context,
	repo store.Activity,
	at time.Time,
	typ domain.ActivityType,
	clientID, demoID, message string,
) error {
	return repo.CreateActivity(ctx, domain.Activity{
		ID:        idx.NewAt(at).String(),
		ClientID:  clientID,
		DemoID:    demoID,
		Type:      typ,
		Message:   message,
		CreatedAt: at,
	})
}

// clampExpiration keeps an expiration from preceding the registration date.
func clampExpiration(c domain.Client, exp time.Time) time.Time {
	if exp.Before(c.RegisteredAt) {
		return c.RegisteredAt
	}
	return exp
}
