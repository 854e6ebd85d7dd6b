// Package worker analyses batches of positions on a pool of goroutines.
package worker

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Pool fans position analysis out over a fixed number of goroutines.
// A Pool holds no per-batch state, so Run may be called repeatedly.
type Pool struct {
	workers int
	analyse ProcessFunc
	log     *zap.Logger
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 mean one per
// CPU.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithLogger sets the logger used for per-batch debug output.
func WithLogger(log *zap.Logger) PoolOption {
	return func(p *Pool) {
		if log != nil {
			p.log = log
		}
	}
}

// NewPool creates a pool that runs analyse on every submitted item.
// Default: one worker per CPU, no logging.
func NewPool(analyse ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: runtime.NumCPU(),
		analyse: analyse,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Workers returns the number of goroutines Run starts.
func (p *Pool) Workers() int {
	return p.workers
}

// Run analyses items and returns the results ordered by Index. When ctx is
// cancelled the pool stops: items still queued are skipped, the results
// gathered so far are returned, and so is ctx.Err().
func (p *Pool) Run(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	r := &run{
		analyse: p.analyse,
		queue:   make(chan WorkItem, 2*p.workers),
		results: make(chan ProcessResult, 2*p.workers),
	}
	detach := context.AfterFunc(ctx, r.stop)
	defer detach()

	for i := 0; i < p.workers; i++ {
		r.wg.Add(1)
		go r.work()
	}

	go func() {
		defer r.close()
		for _, item := range items {
			if !r.submit(ctx, item) {
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for result := range r.results {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	p.log.Debug("pool drained",
		zap.Int("workers", p.workers),
		zap.Int("submitted", len(items)),
		zap.Int("analysed", len(results)),
		zap.Bool("stopped", r.stopped.Load()))
	return results, ctx.Err()
}

// run is the channel state of a single Run call.
type run struct {
	analyse ProcessFunc
	queue   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
}

func (r *run) work() {
	defer r.wg.Done()
	for item := range r.queue {
		if r.stopped.Load() {
			continue // drain without analysing
		}
		r.results <- r.analyse(item)
	}
}

// submit queues item, waiting for room until ctx is done. It reports
// whether the item was queued.
func (r *run) submit(ctx context.Context, item WorkItem) bool {
	if r.stopped.Load() {
		return false
	}
	if ctx.Err() != nil {
		r.stop()
		return false
	}
	select {
	case r.queue <- item:
		return true
	case <-ctx.Done():
		r.stop()
		return false
	}
}

func (r *run) stop() {
	r.stopped.Store(true)
}

// close ends submission and closes results once every worker returns.
func (r *run) close() {
	close(r.queue)
	r.wg.Wait()
	close(r.results)
}
