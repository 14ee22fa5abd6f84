package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/aussiebroadwan/democat/pkg/slogx"
)

// BootstrapService creates the first admin of a fresh installation.
type BootstrapService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
	Token  string // pre-shared bootstrap token
	Clock  Clock
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Admins().IsEmpty(ctx)
	if err != nil {
		return false, storeErr(err, "admins")
	}
	return !empty, nil
}

func (s *BootstrapService) Bootstrap(ctx context.Context, token string, in NewAdmin) (domain.Admin, error) {
	l := slogx.FromContext(ctx)

	if s.Token == "" || !cryptox.TokensEqual(token, s.Token) {
		l.Warn("unauthorized bootstrap attempt")
		return domain.Admin{}, ErrBootstrapUnauthorized
	}

	done, err := s.IsBootstrapped(ctx)
	if err != nil {
		return domain.Admin{}, err
	}
	if done {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return domain.Admin{}, ErrBootstrapAlready
	}

	admins := AdminService{Store: s.Store, Hasher: s.Hasher, Clock: s.Clock}
	admin, err := admins.Create(ctx, in)
	if err != nil {
		return domain.Admin{}, err
	}
	l.Info("system bootstrapped", slog.String("admin_id", admin.ID))
	return admin, nil
}
