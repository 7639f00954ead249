package schedule

import (
	"context"

	"github.com/herohde/vantage/internal/qos"
	"github.com/seekerror/logw"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool is a bounded, QoS-hinted worker pool: an errgroup.Group whose
// concurrency is capped by a semaphore.Weighted sized to cfg.Threads.
type Pool struct {
	cfg   Config
	group *errgroup.Group
	gctx  context.Context
	sem   *semaphore.Weighted
}

// NewPool builds a Pool for cfg. If cfg is invalid (non-positive thread
// count, or a Mixed policy missing/out-of-range MixedRatio), it logs a
// warning and falls back to an unbiased (None) pool of the same size,
// clamped to at least one worker.
func NewPool(ctx context.Context, cfg Config) *Pool {
	if err := cfg.validate(); err != nil {
		threads := cfg.Threads
		if threads <= 0 {
			threads = 1
		}
		logw.Warningf(ctx, "Failed to build %v pool: %v. Falling back to an unbiased pool of %v workers", cfg, err, threads)
		cfg = Config{Policy: None, Threads: threads}
	}

	group, gctx := errgroup.WithContext(ctx)
	return &Pool{
		cfg:   cfg,
		group: group,
		gctx:  gctx,
		sem:   semaphore.NewWeighted(int64(cfg.Threads)),
	}
}

// Size returns the pool's worker count (and concurrency bound).
func (p *Pool) Size() int {
	return p.cfg.Threads
}

// WorkerName returns the stable trace name for worker i.
func (p *Pool) WorkerName(i int) string {
	return p.cfg.WorkerName(i)
}

// QoSClass returns the QoS hint applied to worker i.
func (p *Pool) QoSClass(i int) qos.Class {
	switch p.cfg.Policy {
	case FastBias:
		return qos.UserInitiated
	case EfficientBias:
		return qos.Background
	case Mixed:
		if i < p.cfg.fastWorkers() {
			return qos.UserInitiated
		}
		return qos.Background
	default:
		return qos.Default
	}
}

// Go schedules fn as worker i and returns without blocking: the spawned
// goroutine waits until a semaphore slot is free, applies worker i's QoS hint
// to its own thread, then runs fn. fn's error, if any, cancels the pool's
// context and is returned by Wait.
func (p *Pool) Go(i int, fn func(ctx context.Context) error) {
	p.group.Go(func() error {
		if err := p.sem.Acquire(p.gctx, 1); err != nil {
			return err
		}
		defer p.sem.Release(1)

		qos.Apply(p.QoSClass(i))
		return fn(p.gctx)
	})
}

// Wait blocks until every Go'd task has returned, and returns the first
// non-nil error, if any, exactly like errgroup.Group.Wait.
func (p *Pool) Wait() error {
	return p.group.Wait()
}
