package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

func TestRenewalEndToEnd(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	c := e.newClient(t, "rui@example.com", 3)

	require.Equal(t, domain.StatusExpiringSoon, c.Status)
	require.Equal(t, 3, c.DaysRemaining)

	req, err := e.requests().Create(ctx, viewer(c), "", "")
	require.NoError(t, err)
	require.Equal(t, domain.RequestPending, req.State)
	require.Equal(t, domain.RequestRenewal, req.Type)
	require.Equal(t, c.ID, req.ClientID)

	dec, err := e.requests().Approve(ctx, e.admin.ID, req.ID, nil)
	require.NoError(t, err)
	require.Equal(t, domain.RequestApproved, dec.Request.State)
	require.Equal(t, e.admin.ID, dec.Request.DecidedBy)
	require.True(t, today.AddDate(0, 0, 33).Equal(dec.Client.ExpiresAt))
	require.Equal(t, domain.StatusActive, dec.Client.Status)
	require.Equal(t, 33, dec.Client.DaysRemaining)

	got, err := e.clients().Get(ctx, e.adminPrincipal(), c.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusActive, got.Status)
	require.Equal(t, 33, got.DaysRemaining)

	stored, err := e.requests().Get(ctx, e.adminPrincipal(), req.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestApproved, stored.State)
	require.True(t, today.Equal(stored.DecidedAt))

	entries, err := (&ActivityService{Store: e.store, Clock: e.clock}).List(ctx, domain.ActivityFilter{
		ClientID: c.ID, Type: domain.ActivityAccessGranted,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2) // account creation and the approval
}

func TestApproveWithExplicitExpiration(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	c := e.newClient(t, "rui@example.com", -4)

	req, err := e.requests().Create(ctx, viewer(c), "", domain.RequestRenewal)
	require.NoError(t, err)

	override := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dec, err := e.requests().Approve(ctx, e.admin.ID, req.ID, &override)
	require.NoError(t, err)
	require.True(t, override.Equal(dec.Client.ExpiresAt))
}

func TestRenewalAcrossDSTAddsCalendarDays(t *testing.T) {
	ctx := context.Background()
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	e := newEnv(t)
	e.clock = FixedClock(time.Date(2025, time.October, 10, 12, 0, 0, 0, ny))

	reg := time.Date(2025, time.August, 1, 0, 0, 0, 0, ny)
	c, _, err := e.clients().Create(ctx, e.admin.ID, NewClient{
		Name:         "Rui",
		Email:        "rui@example.com",
		Password:     "client-secret",
		RegisteredAt: &reg,
		ExpiresAt:    time.Date(2025, time.October, 14, 0, 0, 0, 0, ny),
	})
	require.NoError(t, err)
	require.Equal(t, 4, c.DaysRemaining)

	req, err := e.requests().Create(ctx, viewer(c), "", "")
	require.NoError(t, err)

	// 30 days from Oct 14 crosses the November fall-back.
	dec, err := e.requests().Approve(ctx, e.admin.ID, req.ID, nil)
	require.NoError(t, err)
	require.Equal(t, "2025-11-13 00:00", dec.Client.ExpiresAt.In(ny).Format("2006-01-02 15:04"))
	require.Equal(t, 34, dec.Client.DaysRemaining)

	got, err := e.clients().Get(ctx, e.adminPrincipal(), c.ID)
	require.NoError(t, err)
	require.Equal(t, 34, got.DaysRemaining)
}

func TestApproveRejectsExpirationBeforeRegistration(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	c := e.newClient(t, "rui@example.com", 2)

	req, err := e.requests().Create(ctx, viewer(c), "", "")
	require.NoError(t, err)

	tooEarly := c.RegisteredAt.AddDate(0, 0, -1)
	_, err = e.requests().Approve(ctx, e.admin.ID, req.ID, &tooEarly)
	require.ErrorIs(t, err, domain.ErrValidation)

	still, err := e.requests().Get(ctx, e.adminPrincipal(), req.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestPending, still.State)
}

func TestCreateRequestRules(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	t.Run("renewal refused while active", func(t *testing.T) {
		c := e.newClient(t, "active@example.com", 30)
		_, err := e.requests().Create(ctx, viewer(c), "", domain.RequestRenewal)
		require.ErrorIs(t, err, domain.ErrRenewalNotDue)
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("revocation allowed while active", func(t *testing.T) {
		c := e.newClient(t, "leaving@example.com", 30)
		req, err := e.requests().Create(ctx, viewer(c), "", domain.RequestRevocation)
		require.NoError(t, err)
		require.Equal(t, domain.RequestRevocation, req.Type)
	})

	t.Run("second pending request conflicts", func(t *testing.T) {
		c := e.newClient(t, "twice@example.com", 1)
		_, err := e.requests().Create(ctx, viewer(c), "", "")
		require.NoError(t, err)

		_, err = e.requests().Create(ctx, viewer(c), "", "")
		require.ErrorIs(t, err, domain.ErrRequestAlreadyOpen)

		counts, err := e.requests().Counts(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, counts.Pending) // this one plus the revocation above
	})

	t.Run("viewer cannot act for another client", func(t *testing.T) {
		mine := e.newClient(t, "mine@example.com", 2)
		other := e.newClient(t, "other@example.com", 2)

		req, err := e.requests().Create(ctx, viewer(mine), other.ID, "")
		require.NoError(t, err)
		require.Equal(t, mine.ID, req.ClientID)

		_, err = e.requests().Get(ctx, viewer(other), req.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("admin must name the client", func(t *testing.T) {
		_, err := e.requests().Create(ctx, e.adminPrincipal(), "", "")
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := e.requests().Create(ctx, e.adminPrincipal(), "missing", "")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestConcurrentCreateLeavesOnePending(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	c := e.newClient(t, "rui@example.com", 1)

	const n = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.requests().Create(ctx, viewer(c), "", "")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, created)
	require.Equal(t, n-1, conflicts)
}

func TestDecisionsAreFinal(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	c := e.newClient(t, "rui@example.com", 0)

	req, err := e.requests().Create(ctx, viewer(c), "", "")
	require.NoError(t, err)

	rejected, err := e.requests().Reject(ctx, e.admin.ID, req.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestRejected, rejected.State)

	_, err = e.requests().Approve(ctx, e.admin.ID, req.ID, nil)
	require.ErrorIs(t, err, domain.ErrConflict)
	_, err = e.requests().Reject(ctx, e.admin.ID, req.ID)
	require.ErrorIs(t, err, domain.ErrConflict)

	got, err := e.requests().Get(ctx, e.adminPrincipal(), req.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestRejected, got.State)

	client, err := e.clients().Get(ctx, e.adminPrincipal(), c.ID)
	require.NoError(t, err)
	require.True(t, c.ExpiresAt.Equal(client.ExpiresAt), "reject must not touch the client")

	// A new request can be raised once the previous one is decided.
	_, err = e.requests().Create(ctx, viewer(c), "", "")
	require.NoError(t, err)
}

func TestApproveRevocation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	c := e.newClient(t, "rui@example.com", 40)

	req, err := e.requests().Create(ctx, viewer(c), "", domain.RequestRevocation)
	require.NoError(t, err)

	t.Run("explicit date refused", func(t *testing.T) {
		at := today.AddDate(0, 1, 0)
		_, err := e.requests().Approve(ctx, e.admin.ID, req.ID, &at)
		require.ErrorIs(t, err, domain.ErrRevocationWithDate)
	})

	dec, err := e.requests().Approve(ctx, e.admin.ID, req.ID, nil)
	require.NoError(t, err)
	require.True(t, today.Equal(dec.Client.ExpiresAt))
	require.Equal(t, domain.StatusExpired, dec.Client.Status)
	require.Equal(t, 0, dec.Client.DaysRemaining)
}

func TestApproveRequiresActingAdmin(t *testing.T) {
	e := newEnv(t)
	_, err := e.requests().Approve(context.Background(), "", "whatever", nil)
	require.ErrorIs(t, err, domain.ErrMissingActor)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestApproveUnknownRequest(t *testing.T) {
	e := newEnv(t)
	_, err := e.requests().Approve(context.Background(), e.admin.ID, "missing", nil)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestApproveClientWriteFailureKeepsRequestPending(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	c := e.newClient(t, "rui@example.com", 3)

	req, err := e.requests().Create(ctx, viewer(c), "", "")
	require.NoError(t, err)

	broken := &RequestService{Store: failingStore{e.store}, Clock: e.clock}
	_, err = broken.Approve(ctx, e.admin.ID, req.ID, nil)
	require.ErrorIs(t, err, domain.ErrDependency)

	got, err := e.requests().Get(ctx, e.adminPrincipal(), req.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestPending, got.State)
	require.Empty(t, got.DecidedBy)

	// Retrying with a healthy store succeeds.
	dec, err := e.requests().Approve(ctx, e.admin.ID, req.ID, nil)
	require.NoError(t, err)
	require.True(t, c.ExpiresAt.AddDate(0, 0, 30).Equal(dec.Client.ExpiresAt))
}

func TestPendingQueueAndFilters(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	first := e.newClient(t, "first@example.com", 1)
	second := e.newClient(t, "second@example.com", -2)
	third := e.newClient(t, "third@example.com", 5)

	r1, err := e.requests().Create(ctx, viewer(first), "", "")
	require.NoError(t, err)

	later := e.requests()
	later.Clock = FixedClock(today.Add(time.Minute))
	r2, err := later.Create(ctx, viewer(second), "", "")
	require.NoError(t, err)

	r3, err := later.Create(ctx, e.adminPrincipal(), third.ID, "")
	require.NoError(t, err)
	_, err = e.requests().Reject(ctx, e.admin.ID, r3.ID)
	require.NoError(t, err)

	queue, err := e.requests().Pending(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	require.Equal(t, r1.ID, queue[0].ID)
	require.Equal(t, first.Name, queue[0].ClientName)
	require.Equal(t, r2.ID, queue[1].ID)
	require.True(t, second.ExpiresAt.Equal(queue[1].CurrentExpiration))

	rejected, err := e.requests().List(ctx, domain.RequestRejected)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	require.Equal(t, r3.ID, rejected[0].ID)

	all, err := e.requests().List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, domain.RequestCounts{Pending: 2, Rejected: 1}, domain.CountRequests(all))

	mine, err := e.requests().ListForClient(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
}
