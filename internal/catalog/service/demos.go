package service

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/democat/internal/catalog/domain"
	"github.com/aussiebroadwan/democat/internal/catalog/store"
	"github.com/aussiebroadwan/democat/pkg/idx"
	"github.com/aussiebroadwan/democat/pkg/slogx"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultDemoCacheSize = 256
	DefaultDemoCacheTTL  = 5 * time.Minute
)

// DemoService manages the demo catalog. Single-demo reads go through an
// expiring LRU; concurrent identical loads share one query.
//
// Every committed write bumps gen. A load only fills the cache when gen did
// not move while it read, so a read that raced a write cannot re-add the old
// row.
type DemoService struct {
	Store store.Store
	Clock Clock

	cache *expirable.LRU[string, domain.Demo]
	group singleflight.Group

	mu  sync.Mutex
	gen uint64
}

func NewDemoService(st store.Store, clock Clock, cacheSize int, cacheTTL time.Duration) *DemoService {
	if cacheSize <= 0 {
		cacheSize = DefaultDemoCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultDemoCacheTTL
	}
	return &DemoService{
		Store: st,
		Clock: clock,
		cache: expirable.NewLRU[string, domain.Demo](cacheSize, nil, cacheTTL),
	}
}

// checkAccess lets admins through and requires viewers to be within their
// access window.
func (s *DemoService) checkAccess(ctx context.Context, p domain.Principal) error {
	if p.IsAdmin() {
		return nil
	}
	c, err := s.Store.Clients().GetClientByID(ctx, p.ID)
	if err != nil {
		return storeErr(err, "client")
	}
	switch r := c.Status(s.Clock.now()); {
	case r.CanBrowse():
		return nil
	case r.Status == domain.StatusFuture:
		return ErrAccessNotStarted
	default:
		return ErrAccessExpired
	}
}

// List returns demos matching f. Viewers only ever see active demos.
func (s *DemoService) List(ctx context.Context, p domain.Principal, f domain.DemoFilter) ([]domain.Demo, error) {
	if err := s.checkAccess(ctx, p); err != nil {
		return nil, err
	}
	if !p.IsAdmin() {
		f.State = domain.DemoActive
	}

	key := strings.Join([]string{
		"list", strconv.FormatUint(s.generation(), 10),
		string(f.State), strings.ToLower(f.Vertical), strings.ToLower(f.Horizontal),
	}, "|")
	v, err, shared := s.group.Do(key, func() (any, error) {
		// Waiters share this result, so one caller going away must not fail
		// the others.
		return s.Store.Demos().ListDemos(context.WithoutCancel(ctx), f)
	})
	if err != nil {
		return nil, storeErr(err, "demos")
	}
	if shared {
		slogx.FromContext(ctx).Debug("demo list load shared", slog.String("key", key))
	}
	return slices.Clone(v.([]domain.Demo)), nil
}

func (s *DemoService) Get(ctx context.Context, p domain.Principal, id string) (domain.Demo, error) {
	if err := s.checkAccess(ctx, p); err != nil {
		return domain.Demo{}, err
	}
	d, err := s.load(ctx, id)
	if err != nil {
		return domain.Demo{}, err
	}
	if !p.IsAdmin() && d.State != domain.DemoActive {
		return domain.Demo{}, storeErr(store.ErrNotFound, "demo")
	}
	return d, nil
}

func (s *DemoService) load(ctx context.Context, id string) (domain.Demo, error) {
	if d, ok := s.cache.Get(id); ok {
		demoCacheLookups.WithLabelValues("hit").Inc()
		return d, nil
	}
	demoCacheLookups.WithLabelValues("miss").Inc()

	gen := s.generation()
	key := "demo|" + strconv.FormatUint(gen, 10) + "|" + id
	v, err, _ := s.group.Do(key, func() (any, error) {
		d, err := s.Store.Demos().GetDemoByID(context.WithoutCancel(ctx), id)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		if s.gen == gen {
			s.cache.Add(id, d)
		}
		s.mu.Unlock()
		return d, nil
	})
	if err != nil {
		return domain.Demo{}, storeErr(err, "demo")
	}
	return v.(domain.Demo), nil
}

func (s *DemoService) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// invalidate runs after a write has committed.
func (s *DemoService) invalidate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if id != "" {
		s.cache.Remove(id)
	}
}

func (s *DemoService) Create(ctx context.Context, adminID string, d domain.Demo) (domain.Demo, error) {
	now := s.Clock.now()
	d.Name = strings.TrimSpace(d.Name)
	d.ID = idx.NewAt(now).String()
	if d.State == "" {
		d.State = domain.DemoActive
	}
	d.CreatedBy = adminID
	d.CreatedAt, d.UpdatedAt = now, now
	if err := d.Validate(); err != nil {
		return domain.Demo{}, err
	}

	if err := s.Store.Demos().CreateDemo(ctx, d); err != nil {
		return domain.Demo{}, storeErr(err, "demo")
	}
	s.invalidate("")
	slogx.FromContext(ctx).Info("demo created", slog.String("demo_id", d.ID), slog.String("admin_id", adminID))
	return d, nil
}

func (s *DemoService) Update(ctx context.Context, id string, patch domain.DemoPatch) (domain.Demo, error) {
	d, err := s.Store.Demos().GetDemoByID(ctx, id)
	if err != nil {
		return domain.Demo{}, storeErr(err, "demo")
	}
	d = patch.Apply(d)
	if err := d.Validate(); err != nil {
		return domain.Demo{}, err
	}
	d.UpdatedAt = s.Clock.now()

	if err := s.Store.Demos().UpdateDemo(ctx, d); err != nil {
		return domain.Demo{}, storeErr(err, "demo")
	}
	s.invalidate(id)
	slogx.FromContext(ctx).Info("demo updated", slog.String("demo_id", id), slog.String("state", string(d.State)))
	return d, nil
}

func (s *DemoService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Demos().DeleteDemo(ctx, id); err != nil {
		return storeErr(err, "demo")
	}
	s.invalidate(id)
	slogx.FromContext(ctx).Info("demo deleted", slog.String("demo_id", id))
	return nil
}
