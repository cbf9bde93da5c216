package kv

import (
	"context"
	"encoding/json"
	"errors"

	"hurghada-dream/go_backend/internal/infra/logger"
)

// Slot is one JSON-encoded value under a fixed key. Reads and writes never
// fail towards the caller: problems are logged and the in-memory state stays
// authoritative.
type Slot[T any] struct {
	store Store
	key   string
	log   *logger.Logger
}

func NewSlot[T any](store Store, key string, log *logger.Logger) *Slot[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Slot[T]{store: store, key: key, log: log}
}

// Load returns the stored value, or fallback when the key is missing or unreadable.
func (s *Slot[T]) Load(ctx context.Context, fallback T) (T, bool) {
	raw, err := s.store.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Warn(s.log.WithField(ctx, "slot", s.key), "kv: slot read failed", err)
		}
		return fallback, false
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn(s.log.WithField(ctx, "slot", s.key), "kv: slot decode failed", err)
		return fallback, false
	}
	return v, true
}

func (s *Slot[T]) Save(ctx context.Context, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warn(s.log.WithField(ctx, "slot", s.key), "kv: slot encode failed", err)
		return
	}
	if err := s.store.Set(ctx, s.key, raw); err != nil {
		s.log.Warn(s.log.WithField(ctx, "slot", s.key), "kv: slot write failed", err)
	}
}
