package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/aussiebroadwan/democat/pkg/idx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
)

type NewAdmin struct {
	Name     string
	Email    string
	Password string
	Contact  string
}

type AdminService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
	Clock  Clock
}

func (s *AdminService) List(ctx context.Context) ([]domain.Admin, error) {
	admins, err := s.Store.Admins().ListAdmins(ctx)
	return admins, storeErr(err, "admins")
}

func (s *AdminService) Get(ctx context.Context, id string) (domain.Admin, error) {
	a, err := s.Store.Admins().GetAdminByID(ctx, id)
	return a, storeErr(err, "admin")
}

func (s *AdminService) Create(ctx context.Context, in NewAdmin) (domain.Admin, error) {
	now := s.Clock.now()
	a := domain.Admin{
		ID:        idx.NewAt(now).String(),
		Name:      strings.TrimSpace(in.Name),
		Email:     domain.NormalizeEmail(in.Email),
		Contact:   strings.TrimSpace(in.Contact),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.Validate(); err != nil {
		return domain.Admin{}, err
	}
	if err := domain.ValidatePassword(in.Password); err != nil {
		return domain.Admin{}, err
	}

	// Admin and client emails share one login form, so they must not overlap.
	if _, err := s.Store.Clients().GetClientByEmail(ctx, a.Email); err == nil {
		return domain.Admin{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Admin{}, storeErr(err, "client")
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.Admin{}, err
	}
	a.PasswordHash = hash

	if err := s.Store.Admins().CreateAdmin(ctx, a); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Admin{}, ErrEmailTaken
		}
		return domain.Admin{}, storeErr(err, "admin")
	}
	slogx.FromContext(ctx).Info("admin created", slog.String("admin_id", a.ID))
	return a, nil
}
