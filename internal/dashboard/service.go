// Package dashboard owns the last computed analytics aggregate. It fetches consistent
// snapshots of the stores, runs the aggregator and publishes the result.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bsm/redislock"
	"golang.org/x/sync/errgroup"

	"github.com/rogerio-castellano/uniform-analytics/internal/analytics"
	"github.com/rogerio-castellano/uniform-analytics/internal/logger"
	"github.com/rogerio-castellano/uniform-analytics/internal/models"
	"github.com/rogerio-castellano/uniform-analytics/internal/repo"
)

const refreshLockKey = "analytics:refresh"

var (
	ErrStoresUnavailable = errors.New("stores unavailable")
	ErrRefreshInProgress = errors.New("refresh already in progress")
	ErrNotComputed       = errors.New("aggregate not computed yet")
)

// Snapshot is a published aggregate. Generation increases with every successful refresh.
type Snapshot struct {
	analytics.Result
	Generation uint64    `json:"generation"`
	ComputedAt time.Time `json:"computed_at"`
}

// AggregateCache persists the last snapshot so new instances can serve it before their
// first refresh.
type AggregateCache interface {
	Load(ctx context.Context) (Snapshot, bool, error)
	Store(ctx context.Context, snap Snapshot) error
}

// Locker serializes refreshes across instances. *redislock.Client satisfies it.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration, opt *redislock.Options) (*redislock.Lock, error)
}

type Service struct {
	orders  repo.OrderRepository
	batches repo.BatchRepository
	schools repo.SchoolRepository

	agg     *analytics.Aggregator
	cache   AggregateCache
	locker  Locker
	lockTTL time.Duration
	log     *logger.Logger
	now     func() time.Time

	mu      sync.Mutex
	loading atomic.Bool
	current atomic.Pointer[Snapshot]
}

type Option func(*Service)

func WithCache(c AggregateCache) Option {
	return func(s *Service) { s.cache = c }
}

func WithLocker(l Locker, ttl time.Duration) Option {
	return func(s *Service) {
		s.locker = l
		s.lockTTL = ttl
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Service) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(orders repo.OrderRepository, batches repo.BatchRepository, schools repo.SchoolRepository, agg *analytics.Aggregator, opts ...Option) *Service {
	s := &Service{
		orders:  orders,
		batches: batches,
		schools: schools,
		agg:     agg,
		cache:   NewMemoryCache(),
		lockTTL: 30 * time.Second,
		log:     logger.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the last published snapshot.
func (s *Service) Current() (Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return Snapshot{}, ErrNotComputed
	}
	return *snap, nil
}

// Loading reports whether a store fetch is in flight.
func (s *Service) Loading() bool {
	return s.loading.Load()
}

// Warm publishes the cached snapshot when nothing has been computed yet.
func (s *Service) Warm(ctx context.Context) {
	if s.current.Load() != nil {
		return
	}
	snap, ok, err := s.cache.Load(ctx)
	if err != nil {
		s.log.Warn("could not load cached aggregate", "error", err)
		return
	}
	if ok {
		s.current.CompareAndSwap(nil, &snap)
		s.log.Info("served cached aggregate", "generation", snap.Generation)
	}
}

// Refresh fetches the stores and recomputes the aggregate. When the stores fail the last
// snapshot stays published and the error is returned. When another instance holds the refresh
// lock, the snapshot it last cached is adopted if newer and ErrRefreshInProgress is returned.
func (s *Service) Refresh(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.locker != nil {
		lock, err := s.locker.Obtain(ctx, refreshLockKey, s.lockTTL, nil)
		switch {
		case errors.Is(err, redislock.ErrNotObtained):
			s.log.Info("refresh skipped, another instance holds the lock")
			s.adoptCached(ctx)
			return s.lastOrZero(), ErrRefreshInProgress
		case err != nil:
			s.log.Warn("could not obtain refresh lock; proceeding without it", "error", err)
		default:
			defer func() {
				if err := lock.Release(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
					s.log.Warn("could not release refresh lock", "error", err)
				}
			}()
		}
	}

	orders, batches, schools, err := s.fetch(ctx)
	if err != nil {
		s.log.Error("refresh failed, keeping last aggregate", "error", err)
		return s.lastOrZero(), fmt.Errorf("%w: %w", ErrStoresUnavailable, err)
	}

	start := time.Now()
	result := s.agg.Recompute(orders, batches, schools)

	snap := &Snapshot{Result: result, ComputedAt: s.now()}
	if prev := s.current.Load(); prev != nil {
		snap.Generation = prev.Generation + 1
	} else {
		snap.Generation = 1
	}
	s.current.Store(snap)

	s.log.Info("aggregate refreshed",
		"generation", snap.Generation,
		"orders", len(orders),
		"batches", len(batches),
		"schools", len(schools),
		"elapsed", time.Since(start),
	)

	if err := s.cache.Store(ctx, *snap); err != nil {
		s.log.Warn("could not cache aggregate", "error", err)
	}
	return *snap, nil
}

// fetch reads the three collections concurrently. The loading flag is raised for its duration.
func (s *Service) fetch(ctx context.Context) ([]models.Order, []models.Batch, []models.School, error) {
	s.loading.Store(true)
	defer s.loading.Store(false)

	var (
		orders  []models.Order
		batches []models.Batch
		schools []models.School
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		orders, err = s.orders.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		batches, err = s.batches.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		schools, err = s.schools.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return orders, batches, schools, nil
}

// adoptCached publishes the cached snapshot when it was computed after the current one.
// The local generation keeps increasing. Callers hold s.mu.
func (s *Service) adoptCached(ctx context.Context) {
	cached, ok, err := s.cache.Load(ctx)
	if err != nil {
		s.log.Warn("could not load cached aggregate", "error", err)
		return
	}
	if !ok {
		return
	}

	prev := s.current.Load()
	if prev != nil {
		if !cached.ComputedAt.After(prev.ComputedAt) {
			return
		}
		cached.Generation = prev.Generation + 1
	}
	s.current.Store(&cached)
	s.log.Info("adopted aggregate cached by another instance", "generation", cached.Generation)
}

func (s *Service) lastOrZero() Snapshot {
	if snap := s.current.Load(); snap != nil {
		return *snap
	}
	return Snapshot{}
}

// Run refreshes immediately and then on every tick until ctx is done.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	if _, err := s.Refresh(ctx); err != nil {
		s.log.Warn("initial refresh failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInProgress) {
				s.log.Warn("scheduled refresh failed", "error", err)
			}
		}
	}
}
