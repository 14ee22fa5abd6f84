package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/aussiebroadwan/democat/pkg/jwtx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
)

// Token is an issued access token.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int // seconds
	Role        domain.Role
	Subject     string
}

// AuthService signs in admins and clients with email and password.
type AuthService struct {
	Store      store.Store
	Hasher     *cryptox.PasswordHasher
	KeyManager *jwtx.KeyManager
	Issuer     string
	Audience   []string
	AccessTTL  time.Duration
	Clock      Clock
}

// Login checks admins first, then clients. Clients whose access expired can
// still sign in so they are able to request a renewal.
func (s *AuthService) Login(ctx context.Context, email, password string) (Token, error) {
	l := slogx.FromContext(ctx)
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return Token{}, ErrInvalidCredentials
	}

	admin, err := s.Store.Admins().GetAdminByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.Hasher.Verify(password, admin.PasswordHash); err != nil {
			l.Warn("admin login failed", slog.String("admin_id", admin.ID))
			return Token{}, ErrInvalidCredentials
		}
		l.Info("admin logged in", slog.String("admin_id", admin.ID))
		return s.issue(domain.Principal{ID: admin.ID, Role: domain.RoleAdmin, Name: admin.Name, Email: admin.Email}, s.Clock.now())
	case !errors.Is(err, store.ErrNotFound):
		return Token{}, storeErr(err, "admin")
	}

	client, err := s.Store.Clients().GetClientByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Warn("login for unknown email")
			return Token{}, ErrInvalidCredentials
		}
		return Token{}, storeErr(err, "client")
	}
	if err := s.Hasher.Verify(password, client.PasswordHash); err != nil {
		l.Warn("client login failed", slog.String("client_id", client.ID))
		return Token{}, ErrInvalidCredentials
	}

	now := s.Clock.now()
	if err := recordActivity(ctx, s.Store.Activity(), now, domain.ActivityLogin, client.ID, "", "client logged in"); err != nil {
		l.Error("failed to record login activity", slog.String("client_id", client.ID), slog.Any("error", err))
	}
	l.Info("client logged in",
		slog.String("client_id", client.ID),
		slog.String("status", string(client.Status(now).Status)),
	)
	return s.issue(domain.Principal{ID: client.ID, Role: domain.RoleViewer, Name: client.Name, Email: client.Email}, now)
}

// Logout records the sign-out of a client. Tokens are stateless, so there is
// nothing to revoke; admins are accepted and ignored.
func (s *AuthService) Logout(ctx context.Context, p domain.Principal) error {
	if p.IsAdmin() {
		return nil
	}
	err := recordActivity(ctx, s.Store.Activity(), s.Clock.now(), domain.ActivityLogout, p.ID, "", "client logged out")
	return storeErr(err, "activity")
}

// issue stamps the token with now, so the verifier must share s.Clock.
func (s *AuthService) issue(p domain.Principal, now time.Time) (Token, error) {
	signer := s.KeyManager.Signer()
	if signer == nil {
		return Token{}, errors.New("no signing key available")
	}

	claims := jwtx.NewAccessClaims(jwtx.AccessClaims{
		Subject:  p.ID,
		Role:     string(p.Role),
		Scopes:   p.Role.Scopes(),
		Email:    p.Email,
		Name:     p.Name,
		Issuer:   s.Issuer,
		Audience: s.Audience,
		TTL:      s.AccessTTL,
	}, now)

	access, err := signer.Sign(claims)
	if err != nil {
		return Token{}, err
	}
	return Token{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.AccessTTL.Seconds()),
		Role:        p.Role,
		Subject:     p.ID,
	}, nil
}

// PrincipalFromClaims rebuilds the caller identity from verified claims.
func PrincipalFromClaims(c jwtx.Claims) domain.Principal {
	return domain.Principal{
		ID:    c.Subject,
		Role:  domain.Role(c.Role),
		Name:  c.Name,
		Email: c.Email,
	}
}
