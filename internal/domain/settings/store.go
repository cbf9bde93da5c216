package settings

import (
	"context"
	"sync"

	"hurghada-dream/go_backend/internal/infra/kv"
	"hurghada-dream/go_backend/internal/infra/logger"
)

const SlotKey = "hd_settings_v1"

// Store keeps the current settings in memory and mirrors them to the
// settings slot.
type Store struct {
	mu      sync.RWMutex
	current Settings
	slot    *kv.Slot[Settings]
}

// NewStore loads the slot; seed is used only when nothing was saved yet. A
// saved value wins entirely, including fields the operator cleared.
func NewStore(ctx context.Context, store kv.Store, seed Settings, log *logger.Logger) *Store {
	slot := kv.NewSlot[Settings](store, SlotKey, log)
	current, _ := slot.Load(ctx, seed)
	return &Store{current: current, slot: slot}
}

func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Save replaces the current settings with next and persists the result.
func (s *Store) Save(ctx context.Context, next Settings) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.current.Replace(next)
	s.slot.Save(ctx, s.current)
	return s.current
}
