package catalog

import (
	"context"
	"sync"
	"time"

	"hurghada-dream/go_backend/internal/domain/activity"
	"hurghada-dream/go_backend/internal/domain/errs"
	"hurghada-dream/go_backend/internal/infra/logger"
	"hurghada-dream/go_backend/internal/infra/metrics"
	"hurghada-dream/go_backend/internal/remote"
)

const DefaultPollInterval = 3 * time.Second

type reconciler interface {
	Reconcile(ctx context.Context, fetched []activity.Activity) bool
}

// Poller pulls the full remote catalog on a fixed interval and reconciles it
// into the local store. Fetches are not serialized: a slow fetch can overlap
// the next one and results apply in completion order.
type Poller struct {
	source   remote.Adapter
	store    reconciler
	interval time.Duration
	log      *logger.Logger
	metrics  *metrics.SyncMetrics

	inflight sync.WaitGroup
}

func NewPoller(
	source remote.Adapter,
	store reconciler,
	interval time.Duration,
	log *logger.Logger,
	m *metrics.SyncMetrics,
) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Poller{
		source:   source,
		store:    store,
		interval: interval,
		log:      log,
		metrics:  m,
	}
}

// Start fetches immediately, then on every tick, until ctx is done. It
// returns at once when no remote is bound. Cancelling ctx also discards the
// result of any fetch still in flight.
func (p *Poller) Start(ctx context.Context) {
	if p.source == nil || !p.source.Bound() {
		p.log.Info(ctx, "catalog sync disabled")
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Info(p.log.WithField(ctx, "interval", p.interval.String()), "catalog sync started")
	p.launch(ctx)

	for {
		select {
		case <-ctx.Done():
			p.log.Info(ctx, "catalog sync stopped")
			return
		case <-ticker.C:
			p.launch(ctx)
		}
	}
}

// Wait blocks until every fetch started so far has finished.
func (p *Poller) Wait() {
	p.inflight.Wait()
}

func (p *Poller) launch(ctx context.Context) {
	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		p.poll(ctx)
	}()
}

func (p *Poller) poll(ctx context.Context) string {
	start := time.Now()
	fetched, err := p.source.ListAll(ctx)

	result := metrics.PollKept
	switch {
	case ctx.Err() != nil:
		result = metrics.PollDiscarded
	case err != nil:
		result = metrics.PollFailed
		p.log.Warn(ctx, "catalog sync: fetch failed, keeping local catalog", errs.SyncRead("catalog.poll", err))
	case p.store.Reconcile(ctx, fetched):
		result = metrics.PollReplaced
		p.log.Debug(p.log.WithField(ctx, "count", len(fetched)), "catalog sync: snapshot replaced")
	case ctx.Err() != nil:
		result = metrics.PollDiscarded
	}
	p.metrics.ObservePoll(result, time.Since(start))
	return result
}
