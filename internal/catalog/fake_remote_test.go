package catalog

import (
	"context"
	"slices"
	"sync"

	"hurghada-dream/go_backend/internal/domain/activity"
)

type fakeRemote struct {
	mu        sync.Mutex
	bound     bool
	list      []activity.Activity
	listErr   error
	upsertErr error
	deleteErr error
	// rename simulates server-side fields winning over the draft.
	rename string
	// gate, when set, blocks ListAll until it is closed.
	gate chan struct{}

	listCalls int
	upserts   []activity.Activity
	deletes   []string
}

func (f *fakeRemote) Bound() bool { return f.bound }

func (f *fakeRemote) ListAll(ctx context.Context) ([]activity.Activity, error) {
	f.mu.Lock()
	f.listCalls++
	gate := f.gate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return slices.Clone(f.list), nil
}

func (f *fakeRemote) Upsert(_ context.Context, a activity.Activity) (activity.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return activity.Activity{}, f.upsertErr
	}
	f.upserts = append(f.upserts, a)
	if f.rename != "" {
		a.Name = f.rename
	}
	return a, nil
}

func (f *fakeRemote) DeleteByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeRemote) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}
