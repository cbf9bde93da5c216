package handlers

import (
	"sync"
	"time"

	"hurghada-dream/go_backend/internal/domain/quote"
)

const (
	DefaultDraftTTL = 12 * time.Hour
	maxDrafts       = 500
)

type draft struct {
	b        *quote.Builder
	lastSeen time.Time
}

// drafts keeps the quotes being edited. They are never persisted: a draft
// untouched for ttl is dropped, and past maxDrafts the least recently used
// one goes first.
type drafts struct {
	mu    sync.Mutex
	items map[string]*draft
	ttl   time.Duration
	now   func() time.Time
}

func newDrafts(ttl time.Duration) *drafts {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &drafts{items: make(map[string]*draft), ttl: ttl, now: time.Now}
}

func (d *drafts) put(b *quote.Builder) string {
	id := b.Quote().ID
	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	d.sweep(now)
	if len(d.items) >= maxDrafts {
		d.evictOldest()
	}
	d.items[id] = &draft{b: b, lastSeen: now}
	return id
}

func (d *drafts) get(id string) (*quote.Builder, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	e, ok := d.items[id]
	if !ok {
		return nil, false
	}
	now := d.now()
	if now.Sub(e.lastSeen) > d.ttl {
		delete(d.items, id)
		return nil, false
	}
	e.lastSeen = now
	return e.b, true
}

func (d *drafts) delete(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.items[id]; !ok {
		return false
	}
	delete(d.items, id)
	return true
}

func (d *drafts) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.items)
}

func (d *drafts) sweep(now time.Time) {
	for id, e := range d.items {
		if now.Sub(e.lastSeen) > d.ttl {
			delete(d.items, id)
		}
	}
}

func (d *drafts) evictOldest() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range d.items {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	delete(d.items, oldestID)
}
