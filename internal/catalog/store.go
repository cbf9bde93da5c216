package catalog

import (
	"context"
	"slices"
	"strings"
	"sync"

	"hurghada-dream/go_backend/internal/domain/activity"
	"hurghada-dream/go_backend/internal/domain/errs"
	"hurghada-dream/go_backend/internal/infra/kv"
	"hurghada-dream/go_backend/internal/infra/logger"
	"hurghada-dream/go_backend/internal/infra/metrics"
	"hurghada-dream/go_backend/internal/remote"
)

// SlotKey is where the catalog is persisted locally.
const SlotKey = "hd_activities_v1"

// Store owns the activity collection. The slice is never modified in place:
// every change installs a new slice, so a List result stays consistent for as
// long as the caller holds it.
type Store struct {
	mu      sync.RWMutex
	items   []activity.Activity
	slot    *kv.Slot[[]activity.Activity]
	remote  remote.Adapter
	log     *logger.Logger
	metrics *metrics.SyncMetrics
}

type Options struct {
	KV      kv.Store
	Remote  remote.Adapter
	Logger  *logger.Logger
	Metrics *metrics.SyncMetrics
	// Seed is used when the slot holds nothing readable.
	Seed []activity.Activity
}

// NewStore loads the persisted collection, falling back to opts.Seed.
func NewStore(ctx context.Context, opts Options) *Store {
	if opts.Remote == nil {
		opts.Remote = remote.Null{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	s := &Store{
		remote:  opts.Remote,
		log:     opts.Logger,
		metrics: opts.Metrics,
	}
	if opts.KV != nil {
		s.slot = kv.NewSlot[[]activity.Activity](opts.KV, SlotKey, opts.Logger)
		s.items, _ = s.slot.Load(ctx, opts.Seed)
	} else {
		s.items = opts.Seed
	}
	if s.items == nil {
		s.items = []activity.Activity{}
	}
	return s
}

// Synced reports whether writes are mirrored to a remote table.
func (s *Store) Synced() bool {
	return s.remote.Bound()
}

// List returns the current snapshot. Callers must not modify it.
func (s *Store) List() []activity.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items
}

func (s *Store) Get(id string) (activity.Activity, bool) {
	items := s.List()
	i := slices.IndexFunc(items, func(a activity.Activity) bool { return a.ID == id })
	if i < 0 {
		return activity.Activity{}, false
	}
	return items[i], true
}

// Search matches query case-insensitively against activity names.
func (s *Store) Search(query string) []activity.Activity {
	q := strings.ToLower(strings.TrimSpace(query))
	items := s.List()
	if q == "" {
		return items
	}
	out := make([]activity.Activity, 0, len(items))
	for _, a := range items {
		if strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}
	return out
}

// AvailableOn lists the activities that run on weekday (0 = Sunday).
func (s *Store) AvailableOn(weekday int) []activity.Activity {
	return FilterDay(s.List(), weekday)
}

// FilterDay keeps the items that run on weekday. items is not modified.
func FilterDay(items []activity.Activity, weekday int) []activity.Activity {
	out := make([]activity.Activity, 0, len(items))
	for _, a := range items {
		if a.AvailableOn(weekday) {
			out = append(out, a)
		}
	}
	return out
}

// Create validates draft, mirrors it remotely when sync is bound and only
// then appends the stored row locally.
func (s *Store) Create(ctx context.Context, draft activity.Draft) (activity.Activity, error) {
	const op = "catalog.create"
	draft = draft.Normalize()
	if err := activity.Validate(op, draft); err != nil {
		return activity.Activity{}, err
	}
	saved, err := s.upsert(ctx, op, draft.Build(activity.NewID()))
	s.metrics.IncWrite("create", err)
	if err != nil {
		return activity.Activity{}, err
	}

	s.apply(ctx, func(items []activity.Activity) []activity.Activity {
		return append(slices.Clone(items), saved)
	})
	return saved, nil
}

// Update replaces every field of activity id with draft.
func (s *Store) Update(ctx context.Context, id string, draft activity.Draft) (activity.Activity, error) {
	const op = "catalog.update"
	draft = draft.Normalize()
	if err := activity.Validate(op, draft); err != nil {
		return activity.Activity{}, err
	}
	if _, ok := s.Get(id); !ok {
		return activity.Activity{}, errs.NotFound(op, "activity %s not found", id)
	}
	saved, err := s.upsert(ctx, op, draft.Build(id))
	s.metrics.IncWrite("update", err)
	if err != nil {
		return activity.Activity{}, err
	}

	s.apply(ctx, func(items []activity.Activity) []activity.Activity {
		out := slices.Clone(items)
		for i := range out {
			if out[i].ID == id {
				out[i] = saved
			}
		}
		return out
	})
	return saved, nil
}

// Remove deletes remotely first when sync is bound; an unknown id is a local no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	const op = "catalog.remove"
	if s.remote.Bound() {
		if err := s.remote.DeleteByID(ctx, id); err != nil {
			s.metrics.IncWrite("remove", err)
			s.log.Warn(s.log.WithField(ctx, "activity_id", id), "catalog: remote delete failed", err)
			return errs.SyncWrite(op, err)
		}
	}
	s.metrics.IncWrite("remove", nil)

	s.apply(ctx, func(items []activity.Activity) []activity.Activity {
		return slices.DeleteFunc(slices.Clone(items), func(a activity.Activity) bool { return a.ID == id })
	})
	return nil
}

// Reconcile installs fetched as the new collection unless it is structurally
// identical to the current one or ctx is already done. It reports whether
// anything changed.
func (s *Store) Reconcile(ctx context.Context, fetched []activity.Activity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx.Err() != nil {
		return false
	}
	if Decide(s.items, fetched) == Keep {
		return false
	}
	if fetched == nil {
		fetched = []activity.Activity{}
	}
	s.items = fetched
	s.persist(ctx, fetched)
	return true
}

func (s *Store) upsert(ctx context.Context, op string, a activity.Activity) (activity.Activity, error) {
	if !s.remote.Bound() {
		return a, nil
	}
	saved, err := s.remote.Upsert(ctx, a)
	if err != nil {
		s.log.Warn(s.log.WithField(ctx, "activity_id", a.ID), "catalog: remote upsert failed", err)
		return activity.Activity{}, errs.SyncWrite(op, err)
	}
	if saved.ID == "" {
		saved.ID = a.ID
	}
	return saved, nil
}

// apply swaps in the slice built by fn and persists it. Writes are applied
// and persisted in call order.
func (s *Store) apply(ctx context.Context, fn func([]activity.Activity) []activity.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = fn(s.items)
	s.persist(ctx, s.items)
}

func (s *Store) persist(ctx context.Context, items []activity.Activity) {
	if s.slot == nil {
		return
	}
	s.slot.Save(ctx, items)
}
