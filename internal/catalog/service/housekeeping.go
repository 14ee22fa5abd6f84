package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
)

const (
	DefaultActivityRetention = 90 * 24 * time.Hour

	// DefaultKeyGrace is how long an expired signing key keeps verifying
	// before it is pruned.
	DefaultKeyGrace = 30 * 24 * time.Hour
)

// HousekeepingService periodically refreshes the client status gauges,
// reports clients about to lapse without a renewal request, and prunes old
// activity and long-expired signing keys.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration
	KeyGrace  time.Duration
	Clock     Clock

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService defaults interval to 1 hour and retention to 90
// days when they are not positive.
func NewHousekeepingService(
	st store.Store,
	logger *slog.Logger,
	interval, retention time.Duration,
	clock Clock,
) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	if retention <= 0 {
		retention = DefaultActivityRetention
	}
	return &HousekeepingService{
		Store:     st,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		KeyGrace:  DefaultKeyGrace,
		Clock:     clock,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "retention", s.Retention)
}

// Stop blocks until an in-progress pass has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Report is what one housekeeping pass observed.
type Report struct {
	Counts            domain.ClientStatusCounts
	ExpiringUnclaimed []string // ids of expiring_soon clients with no pending request
	ActivityPruned    int64
	KeysPruned        int64
}

// RunOnce performs a single pass. Each step is independent; a failure is
// logged and the remaining steps still run.
func (s *HousekeepingService) RunOnce(ctx context.Context) Report {
	now := s.Clock.now()
	var rep Report

	clients, err := s.Store.Clients().ListClients(ctx)
	if err != nil {
		s.Logger.Error("failed to list clients", "error", err)
	} else {
		rep.Counts = domain.CountStatuses(now, clients)
		clientsByStatus.WithLabelValues(string(domain.StatusActive)).Set(float64(rep.Counts.Active))
		clientsByStatus.WithLabelValues(string(domain.StatusExpiringSoon)).Set(float64(rep.Counts.ExpiringSoon))
		clientsByStatus.WithLabelValues(string(domain.StatusExpired)).Set(float64(rep.Counts.Expired))
		clientsByStatus.WithLabelValues(string(domain.StatusFuture)).Set(float64(rep.Counts.Future))
	}

	if err == nil {
		rep.ExpiringUnclaimed, err = s.expiringWithoutRequest(ctx, now, clients)
		if err != nil {
			s.Logger.Error("failed to list pending requests", "error", err)
		} else {
			clientsExpiringUnrequested.Set(float64(len(rep.ExpiringUnclaimed)))
			for _, id := range rep.ExpiringUnclaimed {
				s.Logger.Info("client expiring without renewal request", "client_id", id)
			}
		}
	}

	cutoff := now.Add(-s.Retention)
	if n, err := s.Store.Activity().DeleteActivityBefore(ctx, cutoff); err != nil {
		s.Logger.Error("failed to prune activity", "error", err)
	} else {
		rep.ActivityPruned = n
		activityPruned.Add(float64(n))
		s.Logger.Debug("pruned activity", "deleted", n, "before", cutoff)
	}

	keyCutoff := now.Add(-s.keyGrace())
	if n, err := s.Store.SigningKeys().DeleteSigningKeysExpiredBefore(ctx, keyCutoff); err != nil {
		s.Logger.Error("failed to prune signing keys", "error", err)
	} else if n > 0 {
		rep.KeysPruned = n
		s.Logger.Info("pruned expired signing keys", "deleted", n, "expired_before", keyCutoff)
	}

	s.Logger.Info("housekeeping completed",
		"clients", rep.Counts.Total,
		"expiring_soon", rep.Counts.ExpiringSoon,
		"expired", rep.Counts.Expired,
		"activity_pruned", rep.ActivityPruned,
	)
	return rep
}

func (s *HousekeepingService) keyGrace() time.Duration {
	if s.KeyGrace <= 0 {
		return DefaultKeyGrace
	}
	return s.KeyGrace
}

func (s *HousekeepingService) expiringWithoutRequest(ctx context.Context, now time.Time, clients []domain.Client) ([]string, error) {
	pending, err := s.Store.Requests().ListPendingWithClient(ctx)
	if err != nil {
		return nil, err
	}
	open := make(map[string]struct{}, len(pending))
	for _, p := range pending {
		open[p.ClientID] = struct{}{}
	}

	var out []string
	for _, c := range clients {
		if c.Status(now).Status != domain.StatusExpiringSoon {
			continue
		}
		if _, ok := open[c.ID]; !ok {
			out = append(out, c.ID)
		}
	}
	return out, nil
}
