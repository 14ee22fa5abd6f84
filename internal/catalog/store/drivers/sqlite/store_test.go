package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/internal/catalog/store/drivers/sqlite"
	"github.com/aussiebroadwan/democat/pkg/cryptox"
	"github.com/aussiebroadwan/democat/pkg/idx"
	"github.com/aussiebroadwan/democat/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedClient(t *testing.T, s store.Store, email string, expires time.Time) domain.Client {
	t.Helper()
	c := domain.Client{
		ID:           idx.New().String(),
		Name:         "Client " + email,
		Email:        email,
		PasswordHash: "hash",
		RegisteredAt: t0.AddDate(0, -1, 0),
		ExpiresAt:    expires,
		CreatedAt:    t0,
		UpdatedAt:    t0,
	}
	require.NoError(t, s.Clients().CreateClient(context.Background(), c))
	return c
}

func seedAdmin(t *testing.T, s store.Store) domain.Admin {
	t.Helper()
	a := domain.Admin{
		ID:           idx.New().String(),
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "hash",
		CreatedAt:    t0,
		UpdatedAt:    t0,
	}
	require.NoError(t, s.Admins().CreateAdmin(context.Background(), a))
	return a
}

func TestMigrationsAreIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations())
	require.NoError(t, s.Ping(context.Background()))
}

func TestAdmins(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	empty, err := s.Admins().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	a := seedAdmin(t, s)

	empty, err = s.Admins().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)

	got, err := s.Admins().GetAdminByEmail(ctx, a.Email)
	require.NoError(t, err)
	require.Equal(t, a, got)

	dup := a
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Admins().CreateAdmin(ctx, dup), store.ErrAlreadyExists)

	_, err = s.Admins().GetAdminByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestClients(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	c := seedClient(t, s, "rui@example.com", t0.AddDate(0, 0, 3))

	got, err := s.Clients().GetClientByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, c, got)

	t.Run("duplicate email", func(t *testing.T) {
		dup := c
		dup.ID = idx.New().String()
		require.ErrorIs(t, s.Clients().CreateClient(ctx, dup), store.ErrAlreadyExists)
	})

	t.Run("update expiration", func(t *testing.T) {
		next := c.ExpiresAt.AddDate(0, 0, 30)
		require.NoError(t, s.Clients().UpdateClientExpiration(ctx, c.ID, next, t0.Add(time.Hour)))

		got, err := s.Clients().GetClientByID(ctx, c.ID)
		require.NoError(t, err)
		require.True(t, next.Equal(got.ExpiresAt))
		require.True(t, t0.Add(time.Hour).Equal(got.UpdatedAt))
	})

	t.Run("update missing client", func(t *testing.T) {
		err := s.Clients().UpdateClientExpiration(ctx, "missing", t0, t0)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update fields", func(t *testing.T) {
		got, err := s.Clients().GetClientByID(ctx, c.ID)
		require.NoError(t, err)
		got.Name = "Rui Costa"
		require.NoError(t, s.Clients().UpdateClient(ctx, got))

		again, err := s.Clients().GetClientByEmail(ctx, c.Email)
		require.NoError(t, err)
		require.Equal(t, "Rui Costa", again.Name)
	})

	t.Run("list newest first", func(t *testing.T) {
		later := seedClient(t, s, "eva@example.com", t0)
		list, err := s.Clients().ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, later.ID, list[0].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Clients().DeleteClient(ctx, c.ID))
		require.ErrorIs(t, s.Clients().DeleteClient(ctx, c.ID), store.ErrNotFound)
	})
}

func TestClientCreatedByMustExist(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	c := domain.Client{
		ID:           idx.New().String(),
		Name:         "Orphan",
		Email:        "orphan@example.com",
		PasswordHash: "hash",
		RegisteredAt: t0,
		ExpiresAt:    t0,
		CreatedBy:    "no-such-admin",
		CreatedAt:    t0,
		UpdatedAt:    t0,
	}
	require.Error(t, s.Clients().CreateClient(ctx, c))
}

func TestRequestsOnePendingPerClient(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	c := seedClient(t, s, "rui@example.com", t0)

	first := domain.RenewalRequest{ID: idx.New().String(), ClientID: c.ID, Type: domain.RequestRenewal, State: domain.RequestPending, CreatedAt: t0}
	require.NoError(t, s.Requests().CreateRequest(ctx, first))

	second := first
	second.ID = idx.New().String()
	require.ErrorIs(t, s.Requests().CreateRequest(ctx, second), store.ErrAlreadyExists)

	// Once decided, a new pending request is allowed again.
	admin := seedAdmin(t, s)
	require.NoError(t, s.Requests().DecideRequest(ctx, first.ID, domain.RequestRejected, admin.ID, t0.Add(time.Minute)))
	require.NoError(t, s.Requests().CreateRequest(ctx, second))
}

func TestRequestsConcurrentCreateKeepsOnePending(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	c := seedClient(t, s, "rui@example.com", t0)

	const n = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		oks  int
		errs []error
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Requests().CreateRequest(ctx, domain.RenewalRequest{
				ID: idx.New().String(), ClientID: c.ID, Type: domain.RequestRenewal, CreatedAt: t0,
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				oks++
			} else {
				errs = append(errs, err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, oks)
	for _, err := range errs {
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	}

	pending := domain.RequestPending
	list, err := s.Requests().ListRequests(ctx, &pending)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestDecideRequest(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	c := seedClient(t, s, "rui@example.com", t0)
	admin := seedAdmin(t, s)

	r := domain.RenewalRequest{ID: idx.New().String(), ClientID: c.ID, Type: domain.RequestRenewal, State: domain.RequestPending, CreatedAt: t0}
	require.NoError(t, s.Requests().CreateRequest(ctx, r))

	decidedAt := t0.Add(2 * time.Hour)
	require.NoError(t, s.Requests().DecideRequest(ctx, r.ID, domain.RequestApproved, admin.ID, decidedAt))

	got, err := s.Requests().GetRequestByID(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestApproved, got.State)
	require.Equal(t, admin.ID, got.DecidedBy)
	require.True(t, decidedAt.Equal(got.DecidedAt))

	t.Run("second decision conflicts", func(t *testing.T) {
		err := s.Requests().DecideRequest(ctx, r.ID, domain.RequestRejected, admin.ID, decidedAt)
		require.ErrorIs(t, err, store.ErrConflict)

		got, err := s.Requests().GetRequestByID(ctx, r.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RequestApproved, got.State)
	})

	t.Run("unknown request", func(t *testing.T) {
		err := s.Requests().DecideRequest(ctx, "missing", domain.RequestRejected, admin.ID, decidedAt)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPendingQueueAndCounts(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	admin := seedAdmin(t, s)

	a := seedClient(t, s, "a@example.com", t0.AddDate(0, 0, 2))
	b := seedClient(t, s, "b@example.com", t0.AddDate(0, 0, 5))
	c := seedClient(t, s, "c@example.com", t0.AddDate(0, 0, -1))

	rb := domain.RenewalRequest{ID: idx.New().String(), ClientID: b.ID, Type: domain.RequestRenewal, CreatedAt: t0}
	ra := domain.RenewalRequest{ID: idx.New().String(), ClientID: a.ID, Type: domain.RequestRevocation, CreatedAt: t0.Add(time.Minute)}
	rc := domain.RenewalRequest{ID: idx.New().String(), ClientID: c.ID, Type: domain.RequestRenewal, CreatedAt: t0.Add(2 * time.Minute)}
	for _, r := range []domain.RenewalRequest{rb, ra, rc} {
		require.NoError(t, s.Requests().CreateRequest(ctx, r))
	}
	require.NoError(t, s.Requests().DecideRequest(ctx, rc.ID, domain.RequestApproved, admin.ID, t0.Add(time.Hour)))

	queue, err := s.Requests().ListPendingWithClient(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	require.Equal(t, rb.ID, queue[0].ID)
	require.Equal(t, b.Email, queue[0].ClientEmail)
	require.True(t, b.ExpiresAt.Equal(queue[0].CurrentExpiration))
	require.Equal(t, domain.RequestRevocation, queue[1].Type)

	counts, err := s.Requests().CountRequestsByState(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.RequestCounts{Pending: 2, Approved: 1}, counts)

	byClient, err := s.Requests().ListRequestsByClient(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	require.Equal(t, domain.RequestApproved, byClient[0].State)

	t.Run("deleting a client drops its requests", func(t *testing.T) {
		require.NoError(t, s.Clients().DeleteClient(ctx, c.ID))
		_, err := s.Requests().GetRequestByID(ctx, rc.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestApprovalRollsBackTogether(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	admin := seedAdmin(t, s)
	c := seedClient(t, s, "rui@example.com", t0)

	r := domain.RenewalRequest{ID: idx.New().String(), ClientID: c.ID, Type: domain.RequestRenewal, CreatedAt: t0}
	require.NoError(t, s.Requests().CreateRequest(ctx, r))

	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Requests().DecideRequest(ctx, r.ID, domain.RequestApproved, admin.ID, t0); err != nil {
			return err
		}
		return tx.Clients().UpdateClientExpiration(ctx, "missing", t0, t0)
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	got, err := s.Requests().GetRequestByID(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestPending, got.State)
}

func TestNestedTxUnsupported(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	err := s.WithTx(ctx, func(tx store.Tx) error {
		return tx.WithTx(ctx, func(store.Tx) error { return nil })
	})
	require.Error(t, err)
}

func TestDemos(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	mk := func(name, vertical string, state domain.DemoState) domain.Demo {
		d := domain.Demo{
			ID: idx.New().String(), Name: name, Vertical: vertical, Horizontal: "Analytics",
			State: state, CreatedAt: t0, UpdatedAt: t0,
		}
		require.NoError(t, s.Demos().CreateDemo(ctx, d))
		return d
	}
	retail := mk("Shelf Vision", "Retail", domain.DemoActive)
	mk("Claims Bot", "Insurance", domain.DemoActive)
	mk("Old Portal", "Retail", domain.DemoInactive)

	all, err := s.Demos().ListDemos(ctx, domain.DemoFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Claims Bot", all[0].Name)

	active, err := s.Demos().ListDemos(ctx, domain.DemoFilter{State: domain.DemoActive, Vertical: "retail"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, retail.ID, active[0].ID)

	retail.State = domain.DemoMaintenance
	retail.UpdatedAt = t0.Add(time.Hour)
	require.NoError(t, s.Demos().UpdateDemo(ctx, retail))
	got, err := s.Demos().GetDemoByID(ctx, retail.ID)
	require.NoError(t, err)
	require.Equal(t, domain.DemoMaintenance, got.State)

	require.NoError(t, s.Demos().DeleteDemo(ctx, retail.ID))
	_, err = s.Demos().GetDemoByID(ctx, retail.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestActivity(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	c := seedClient(t, s, "rui@example.com", t0)

	log := func(typ domain.ActivityType, clientID string, at time.Time) {
		require.NoError(t, s.Activity().CreateActivity(ctx, domain.Activity{
			ID: idx.New().String(), ClientID: clientID, Type: typ, Message: string(typ), CreatedAt: at,
		}))
	}
	log(domain.ActivityLogin, c.ID, t0.AddDate(0, 0, -100))
	log(domain.ActivityDemoOpened, c.ID, t0.Add(-time.Hour))
	log(domain.ActivityWarning, "", t0)

	list, err := s.Activity().ListActivity(ctx, domain.ActivityFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, domain.ActivityWarning, list[0].Type)
	require.Empty(t, list[0].ClientID)

	mine, err := s.Activity().ListActivity(ctx, domain.ActivityFilter{ClientID: c.ID, Limit: 1})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, domain.ActivityDemoOpened, mine[0].Type)

	stats, err := s.Activity().ActivityStats(ctx, t0.Add(-24*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.Last24)
	require.Equal(t, 1, stats.ByType[domain.ActivityLogin])

	n, err := s.Activity().DeleteActivityBefore(ctx, t0.AddDate(0, 0, -90))
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestClientUsage(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	rui := seedClient(t, s, "rui@example.com", t0.AddDate(0, 1, 0))
	eva := seedClient(t, s, "eva@example.com", t0.AddDate(0, 1, 0))
	idle := seedClient(t, s, "idle@example.com", t0.AddDate(0, 1, 0))

	var demos []string
	for _, name := range []string{"Shelf Vision", "Claims Bot"} {
		d := domain.Demo{ID: idx.New().String(), Name: name, State: domain.DemoActive, CreatedAt: t0, UpdatedAt: t0}
		require.NoError(t, s.Demos().CreateDemo(ctx, d))
		demos = append(demos, d.ID)
	}

	log := func(typ domain.ActivityType, clientID, demoID string, at time.Time) {
		require.NoError(t, s.Activity().CreateActivity(ctx, domain.Activity{
			ID: idx.New().String(), ClientID: clientID, DemoID: demoID, Type: typ, CreatedAt: at,
		}))
	}
	log(domain.ActivityLogin, rui.ID, "", t0.Add(-3*time.Hour))
	log(domain.ActivityDemoOpened, rui.ID, demos[0], t0.Add(-2*time.Hour))
	log(domain.ActivityDemoOpened, rui.ID, demos[0], t0.Add(-time.Hour))
	log(domain.ActivityDemoClosed, rui.ID, demos[0], t0.Add(-30*time.Minute))
	log(domain.ActivityDemoOpened, eva.ID, demos[1], t0.Add(-5*time.Hour))
	log(domain.ActivityWarning, "", "", t0)

	usage, err := s.Activity().ClientUsage(ctx)
	require.NoError(t, err)
	require.Len(t, usage, 3)

	require.Equal(t, domain.ClientUsage{
		ClientID:     rui.ID,
		Name:         rui.Name,
		Email:        rui.Email,
		DemosOpened:  1,
		TotalOpens:   2,
		TotalLogins:  1,
		LastActivity: t0.Add(-30 * time.Minute),
	}, usage[0])
	require.Equal(t, eva.ID, usage[1].ClientID)
	require.Equal(t, 1, usage[1].TotalOpens)
	require.Equal(t, idle.ID, usage[2].ClientID)
	require.Zero(t, usage[2].TotalOpens)
	require.True(t, usage[2].LastActivity.IsZero())

	one, err := s.Activity().ClientUsageByID(ctx, eva.ID)
	require.NoError(t, err)
	require.Equal(t, usage[1], one)

	none, err := s.Activity().ClientUsageByID(ctx, idle.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ClientUsage{ClientID: idle.ID, Name: idle.Name, Email: idle.Email}, none)

	_, err = s.Activity().ClientUsageByID(ctx, idx.New().String())
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSigningKeys(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	retired := t0.Add(time.Hour)
	old := domain.SigningKey{
		ID:                  idx.NewAt(t0).String(),
		Kid:                 "democat-old",
		Algorithm:           "EdDSA",
		PrivateKeyEncrypted: []byte{0x01, 0x02, 0x00, 0xff},
		CreatedAt:           t0,
		RetiredAt:           &retired,
		ExpiresAt:           t0.AddDate(0, 0, 1),
	}
	current := domain.SigningKey{
		ID:                  idx.NewAt(t0.AddDate(0, 0, 1)).String(),
		Kid:                 "democat-current",
		Algorithm:           "EdDSA",
		PrivateKeyEncrypted: []byte("sealed"),
		CreatedAt:           t0.AddDate(0, 0, 1),
		ExpiresAt:           t0.AddDate(0, 3, 0),
	}
	require.NoError(t, s.SigningKeys().CreateSigningKey(ctx, current))
	require.NoError(t, s.SigningKeys().CreateSigningKey(ctx, old))

	dup := current
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.SigningKeys().CreateSigningKey(ctx, dup), store.ErrAlreadyExists)

	keys, err := s.SigningKeys().ListSigningKeys(ctx)
	require.NoError(t, err)
	require.Equal(t, []domain.SigningKey{old, current}, keys)
	require.False(t, keys[0].IsActive(t0.Add(2*time.Hour)))
	require.True(t, keys[1].IsActive(t0.AddDate(0, 0, 2)))

	n, err := s.SigningKeys().DeleteSigningKeysExpiredBefore(ctx, t0.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	keys, err = s.SigningKeys().ListSigningKeys(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	require.Equal(t, "democat-current", keys[0].Kid)
}

func TestPersistentKeysSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "catalog.db")
	cipher, err := cryptox.NewKeyCipher([]byte("master key material"))
	require.NoError(t, err)

	open := func() (*sqlite.Store, *jwtx.KeyManager) {
		s, err := sqlite.NewStore(path)
		require.NoError(t, err)
		require.NoError(t, s.ApplyMigrations())
		km, err := jwtx.NewPersistentKeyManager(ctx, jwtx.PersistentKeyManagerOptions{
			Store:   store.KeyStoreAdapter{Keys: s.SigningKeys()},
			Cipher:  cipher,
			Issuer:  "democat",
			NumKeys: 2,
			Now:     func() time.Time { return t0 },
		})
		require.NoError(t, err)
		return s, km
	}

	s1, km1 := open()
	token, err := km1.Signer().Sign(jwtx.NewAccessClaims(jwtx.AccessClaims{
		Subject: "client-1",
		Role:    "viewer",
		Issuer:  "democat",
		TTL:     time.Hour,
	}, t0))
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, km2 := open()
	t.Cleanup(func() { _ = s2.Close() })

	keys, err := s2.SigningKeys().ListSigningKeys(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 2)
	for _, k := range keys {
		require.NotContains(t, string(k.PrivateKeyEncrypted), "PRIVATE KEY")
	}

	claims, err := km2.Verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "client-1", claims.Subject)
}
