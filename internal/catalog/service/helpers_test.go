package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite"
	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

// today is the fixed "now" of most service tests.
var today = time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

type env struct {
	store  *sqlite.Store
	hasher *cryptox.PasswordHasher
	clock  Clock
	admin  domain.Admin
}

func openStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func newEnv(t *testing.T) *env {
	t.Helper()
	var err error
	e := &env{store: openStore(t), hasher: cryptox.NewPasswordHasher("test-pepper"), clock: FixedClock(today)}
	e.admin, err = e.admins().Create(context.Background(), NewAdmin{
		Name: "Ana Admin", Email: "ana@example.com", Password: "admin-secret",
	})
	require.NoError(t, err)
	return e
}

func (e *env) admins() *AdminService {
	return &AdminService{Store: e.store, Hasher: e.hasher, Clock: e.clock}
}

func (e *env) clients() *ClientService {
	return &ClientService{Store: e.store, Hasher: e.hasher, Clock: e.clock}
}

func (e *env) requests() *RequestService {
	return &RequestService{Store: e.store, Clock: e.clock}
}

func (e *env) adminPrincipal() domain.Principal {
	return domain.Principal{ID: e.admin.ID, Role: domain.RoleAdmin}
}

// newClient registers a client whose access ends daysLeft calendar days
// after today.
func (e *env) newClient(t *testing.T, email string, daysLeft int) ClientView {
	t.Helper()
	reg := today.AddDate(0, -2, 0)
	c, _, err := e.clients().Create(context.Background(), e.admin.ID, NewClient{
		Name:         "Client " + email,
		Email:        email,
		Password:     "client-secret",
		RegisteredAt: &reg,
		ExpiresAt:    today.AddDate(0, 0, daysLeft),
	})
	require.NoError(t, err)
	return c
}

func viewer(c ClientView) domain.Principal {
	return domain.Principal{ID: c.ID, Role: domain.RoleViewer, Email: c.Email}
}

// failingStore fails every client expiration write made inside a
// transaction.
type failingStore struct{ store.Store }

func (s failingStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error { return fn(failingTx{tx}) })
}

// innerTx names the embedded field so it does not shadow the Tx method.
type innerTx = store.Tx

type failingTx struct{ innerTx }

func (t failingTx) Clients() store.Clients { return failingClients{t.innerTx.Clients()} }

type failingClients struct{ store.Clients }

func (failingClients) UpdateClientExpiration(context.Context, string, time.Time, time.Time) error {
	return errDiskFull
}
