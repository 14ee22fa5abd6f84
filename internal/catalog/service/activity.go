package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/pkg/idx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
)

// NewActivity is an entry posted through the API.
type NewActivity struct {
	ClientID string // admins only; viewers always log for themselves
	DemoID   string
	Type     domain.ActivityType
	Message  string
}

type ActivityService struct {
	Store store.Store
	Clock Clock
}

// Record appends an entry. Viewers may only log opening and closing demos,
// and must name the demo.
func (s *ActivityService) Record(ctx context.Context, p domain.Principal, in NewActivity) (domain.Activity, error) {
	if !p.IsAdmin() {
		if !in.Type.ViewerRecordable() {
			return domain.Activity{}, ErrActivityForbidden
		}
		in.ClientID = p.ID
	}
	if in.Type.ViewerRecordable() && in.DemoID == "" {
		return domain.Activity{}, domain.Validationf("demo_id is required for %s", in.Type)
	}
	if len(in.Message) > 500 {
		return domain.Activity{}, domain.Validationf("message must be at most 500 characters")
	}
	if p.IsAdmin() && in.ClientID != "" {
		if _, err := s.Store.Clients().GetClientByID(ctx, in.ClientID); err != nil {
			return domain.Activity{}, storeErr(err, "client")
		}
	}
	if in.DemoID != "" {
		if _, err := s.Store.Demos().GetDemoByID(ctx, in.DemoID); err != nil {
			return domain.Activity{}, storeErr(err, "demo")
		}
	}

	now := s.Clock.now()
	a := domain.Activity{
		ID:        idx.NewAt(now).String(),
		ClientID:  in.ClientID,
		DemoID:    in.DemoID,
		Type:      in.Type,
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: now,
	}
	if err := s.Store.Activity().CreateActivity(ctx, a); err != nil {
		return domain.Activity{}, storeErr(err, "activity")
	}
	slogx.FromContext(ctx).Debug("activity recorded",
		slog.String("type", string(a.Type)),
		slog.String("client_id", a.ClientID),
		slog.String("demo_id", a.DemoID),
	)
	return a, nil
}

func (s *ActivityService) List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error) {
	f, err := f.Normalize()
	if err != nil {
		return nil, err
	}
	entries, err := s.Store.Activity().ListActivity(ctx, f)
	return entries, storeErr(err, "activity")
}

// Stats summarises the log, with a trailing 24 hour window.
func (s *ActivityService) Stats(ctx context.Context) (domain.ActivityStats, error) {
	stats, err := s.Store.Activity().ActivityStats(ctx, s.Clock.now().Add(-24*time.Hour))
	return stats, storeErr(err, "activity")
}

// ClientUsage reports demos opened and logins per client, busiest first.
func (s *ActivityService) ClientUsage(ctx context.Context) ([]domain.ClientUsage, error) {
	usage, err := s.Store.Activity().ClientUsage(ctx)
	return usage, storeErr(err, "activity")
}

func (s *ActivityService) ClientUsageFor(ctx context.Context, clientID string) (domain.ClientUsage, error) {
	u, err := s.Store.Activity().ClientUsageByID(ctx, clientID)
	if err != nil {
		return domain.ClientUsage{}, storeErr(err, "client")
	}
	return u, nil
}
