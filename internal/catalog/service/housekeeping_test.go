package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingRunOnce(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	e.newClient(t, "active@example.com", 30)
	unclaimed := e.newClient(t, "unclaimed@example.com", 2)
	claimed := e.newClient(t, "claimed@example.com", 4)
	e.newClient(t, "gone@example.com", -3)

	_, err := e.requests().Create(ctx, viewer(claimed), "", "")
	require.NoError(t, err)

	old := today.AddDate(0, 0, -120)
	require.NoError(t, e.store.Activity().CreateActivity(ctx, domain.Activity{
		ID: idx.NewAt(old).String(), Type: domain.ActivityLogin, CreatedAt: old,
	}))

	for kid, expires := range map[string]time.Time{
		"long-gone": today.Add(-DefaultKeyGrace - time.Hour),
		"in-grace":  today.AddDate(0, 0, -1),
		"signing":   today.AddDate(0, 2, 0),
	} {
		require.NoError(t, e.store.SigningKeys().CreateSigningKey(ctx, domain.SigningKey{
			ID:                  idx.New().String(),
			Kid:                 kid,
			Algorithm:           "EdDSA",
			PrivateKeyEncrypted: []byte(kid),
			CreatedAt:           expires.AddDate(0, -3, 0),
			ExpiresAt:           expires,
		}))
	}

	hk := NewHousekeepingService(e.store, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Hour, 0, e.clock)
	require.Equal(t, DefaultActivityRetention, hk.Retention)

	rep := hk.RunOnce(ctx)
	require.Equal(t, domain.ClientStatusCounts{Total: 4, Active: 1, ExpiringSoon: 2, Expired: 1}, rep.Counts)
	require.Equal(t, []string{unclaimed.ID}, rep.ExpiringUnclaimed)
	require.EqualValues(t, 1, rep.ActivityPruned)
	require.EqualValues(t, 1, rep.KeysPruned)

	keys, err := e.store.SigningKeys().ListSigningKeys(ctx)
	require.NoError(t, err)
	var kids []string
	for _, k := range keys {
		kids = append(kids, k.Kid)
	}
	require.ElementsMatch(t, []string{"in-grace", "signing"}, kids)
}

func TestHousekeepingStartStop(t *testing.T) {
	e := newEnv(t)
	hk := NewHousekeepingService(e.store, slog.New(slog.NewTextHandler(io.Discard, nil)), time.Hour, time.Hour, e.clock)
	hk.Start()
	hk.Stop()
}
