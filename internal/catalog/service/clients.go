package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/aussiebroadwan/democat/pkg/idx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
)

// generatedPasswordLength applies when an admin creates a client without
// choosing a password.
const generatedPasswordLength = 12

// ClientView is a client together with its status as of the read.
type ClientView struct {
	domain.Client

	Status        domain.ClientStatus
	DaysRemaining int
}

func (v ClientView) Report() domain.StatusReport {
	return domain.StatusReport{Status: v.Status, DaysRemaining: v.DaysRemaining}
}

// Me is a client's self-service summary.
type Me struct {
	ClientView

	PendingRequest    *domain.RenewalRequest
	CanRequestRenewal bool
}

type NewClient struct {
	Name         string
	Email        string
	Password     string     // generated when empty
	RegisteredAt *time.Time // defaults to now
	ExpiresAt    time.Time
}

// ClientQuery filters a client listing. Zero values match everything.
type ClientQuery struct {
	Status domain.ClientStatus
	Email  string
}

type ClientService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
	Clock  Clock
}

func (s *ClientService) view(c domain.Client, now time.Time) ClientView {
	r := c.Status(now)
	return ClientView{Client: c, Status: r.Status, DaysRemaining: r.DaysRemaining}
}

func (s *ClientService) List(ctx context.Context, q ClientQuery) ([]ClientView, error) {
	clients, err := s.Store.Clients().ListClients(ctx)
	if err != nil {
		return nil, storeErr(err, "clients")
	}

	now := s.Clock.now()
	email := domain.NormalizeEmail(q.Email)
	out := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		if email != "" && !strings.Contains(c.Email, email) {
			continue
		}
		v := s.view(c, now)
		if q.Status != "" && v.Status != q.Status {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// Get returns a client. Viewers can only read themselves; any other id is
// reported as not found.
func (s *ClientService) Get(ctx context.Context, p domain.Principal, id string) (ClientView, error) {
	if !p.IsAdmin() && p.ID != id {
		return ClientView{}, storeErr(store.ErrNotFound, "client")
	}
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		return ClientView{}, storeErr(err, "client")
	}
	return s.view(c, s.Clock.now()), nil
}

// Create registers a client. When no password is given one is generated and
// returned; it is not retrievable afterwards.
func (s *ClientService) Create(ctx context.Context, adminID string, in NewClient) (ClientView, string, error) {
	l := slogx.FromContext(ctx)
	now := s.Clock.now()

	registered := now
	if in.RegisteredAt != nil {
		registered = *in.RegisteredAt
	}
	c := domain.Client{
		ID:           idx.NewAt(now).String(),
		Name:         strings.TrimSpace(in.Name),
		Email:        domain.NormalizeEmail(in.Email),
		RegisteredAt: registered,
		ExpiresAt:    in.ExpiresAt,
		CreatedBy:    adminID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := c.Validate(); err != nil {
		return ClientView{}, "", err
	}

	password, generated := in.Password, ""
	if password == "" {
		var err error
		if generated, err = cryptox.GeneratePassword(generatedPasswordLength); err != nil {
			return ClientView{}, "", err
		}
		password = generated
	} else if err := domain.ValidatePassword(password); err != nil {
		return ClientView{}, "", err
	}

	if err := s.checkAdminEmail(ctx, c.Email); err != nil {
		return ClientView{}, "", err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return ClientView{}, "", err
	}
	c.PasswordHash = hash

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Clients().CreateClient(ctx, c); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return storeErr(err, "client")
		}
		return storeErr(recordActivity(ctx, tx.Activity(), now, domain.ActivityAccessGranted, c.ID, "",
			"access granted until "+c.ExpiresAt.Format(time.DateOnly)), "activity")
	})
	if err != nil {
		return ClientView{}, "", txErr(err)
	}

	l.Info("client created",
		slog.String("client_id", c.ID),
		slog.String("admin_id", adminID),
		slog.Time("expires_at", c.ExpiresAt),
	)
	return s.view(c, now), generated, nil
}

// Update applies a partial edit made by an admin.
func (s *ClientService) Update(ctx context.Context, id string, patch domain.ClientPatch) (ClientView, error) {
	if patch.IsEmpty() {
		return ClientView{}, domain.Validationf("no fields to update")
	}
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		return ClientView{}, storeErr(err, "client")
	}

	now := s.Clock.now()
	c = patch.Apply(c)
	if err := c.Validate(); err != nil {
		return ClientView{}, err
	}
	if patch.Password != nil {
		if err := domain.ValidatePassword(*patch.Password); err != nil {
			return ClientView{}, err
		}
		if c.PasswordHash, err = s.Hasher.Hash(*patch.Password); err != nil {
			return ClientView{}, err
		}
	}
	if patch.Email != nil {
		if err := s.checkAdminEmail(ctx, c.Email); err != nil {
			return ClientView{}, err
		}
	}
	c.UpdatedAt = now

	if err := s.Store.Clients().UpdateClient(ctx, c); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ClientView{}, ErrEmailTaken
		}
		return ClientView{}, storeErr(err, "client")
	}
	slogx.FromContext(ctx).Info("client updated", slog.String("client_id", c.ID))
	return s.view(c, now), nil
}

// checkAdminEmail refuses emails held by an admin. Login looks admins up
// first, so such a client could never sign in.
func (s *ClientService) checkAdminEmail(ctx context.Context, email string) error {
	_, err := s.Store.Admins().GetAdminByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case errors.Is(err, store.ErrNotFound):
		return nil
	}
	return storeErr(err, "admin")
}

// Delete removes a client together with its requests and activity.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Clients().DeleteClient(ctx, id); err != nil {
		return storeErr(err, "client")
	}
	slogx.FromContext(ctx).Info("client deleted", slog.String("client_id", id))
	return nil
}

// Revoke ends a client's access now.
func (s *ClientService) Revoke(ctx context.Context, adminID, id string) (ClientView, error) {
	now := s.Clock.now()
	var c domain.Client
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		if c, err = tx.Clients().GetClientByID(ctx, id); err != nil {
			return storeErr(err, "client")
		}
		c.ExpiresAt = clampExpiration(c, now)
		c.UpdatedAt = now
		if err := tx.Clients().UpdateClientExpiration(ctx, c.ID, c.ExpiresAt, now); err != nil {
			return storeErr(err, "client")
		}
		return storeErr(recordActivity(ctx, tx.Activity(), now, domain.ActivityAccessRevoked, c.ID, "",
			"access revoked by admin "+adminID), "activity")
	})
	if err != nil {
		return ClientView{}, txErr(err)
	}
	slogx.FromContext(ctx).Info("client access revoked", slog.String("client_id", id), slog.String("admin_id", adminID))
	return s.view(c, now), nil
}

// Me is the caller's own client record, status and open request.
func (s *ClientService) Me(ctx context.Context, clientID string) (Me, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, clientID)
	if err != nil {
		return Me{}, storeErr(err, "client")
	}
	reqs, err := s.Store.Requests().ListRequestsByClient(ctx, clientID)
	if err != nil {
		return Me{}, storeErr(err, "requests")
	}

	me := Me{ClientView: s.view(c, s.Clock.now())}
	for _, r := range reqs {
		if r.IsPending() {
			me.PendingRequest = &r
			break
		}
	}
	me.CanRequestRenewal = me.PendingRequest == nil && me.Report().CanRequestRenewal()
	return me, nil
}

// Stats counts clients per status as of now.
func (s *ClientService) Stats(ctx context.Context) (domain.ClientStatusCounts, error) {
	clients, err := s.Store.Clients().ListClients(ctx)
	if err != nil {
		return domain.ClientStatusCounts{}, storeErr(err, "clients")
	}
	return domain.CountStatuses(s.Clock.now(), clients), nil
}
