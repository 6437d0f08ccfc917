package replay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/orbitrig/engine/camera"
	"go.uber.org/zap"
)

const (
	// batchQueueSize is the number of traces that may wait for a free worker.
	batchQueueSize = 256
)

// ErrBatchClosed is returned by Run after Close.
var ErrBatchClosed = errors.New("replay: batch is closed")

// RigFactory builds a fresh rig for one trace.
type RigFactory func() (camera.Rig, error)

// Batch replays many traces concurrently, one independent rig per trace.
// The workers live until Close; a Batch must be closed when no longer needed.
type Batch struct {
	// mu is held for reading while a Run submits tasks and for writing by Close,
	// so the task channel is never written after it is closed.
	mu     sync.RWMutex
	closed bool

	tasks   chan worker.Task
	workers []worker.Worker
	logger  *zap.Logger
}

// BatchOption is a functional option for configuring a Batch.
type BatchOption func(*Batch)

// WithLogger sets the logger used for per-trace progress.
//
// Parameters:
//   - logger: the zap logger
//
// Returns:
//   - BatchOption: option function to apply
func WithLogger(logger *zap.Logger) BatchOption {
	return func(b *Batch) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBatch creates a batch runner and starts its workers. Workers are reused across Run calls
// and exit when Close is called.
//
// Parameters:
//   - workers: maximum number of traces replayed at once (at least 1)
//   - options: functional options to configure the batch
//
// Returns:
//   - *Batch: the newly created batch runner
func NewBatch(workers int, options ...BatchOption) *Batch {
	if workers < 1 {
		workers = 1
	}
	b := &Batch{
		tasks:  make(chan worker.Task, batchQueueSize),
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		opt(b)
	}

	// Workers share one task channel and return once it is closed.
	stop := make(chan int, workers)
	for i := range workers {
		w := worker.NewWorker(i, b.tasks, stop, 1*time.Second, func(int) {})
		w.Start()
		b.workers = append(b.workers, w)
	}
	return b
}

// Run replays every trace on its own rig and returns the results in trace order.
// Submission stops when ctx is cancelled; traces already running finish.
//
// Parameters:
//   - ctx: cancels submission of remaining traces
//   - traces: the traces to replay
//   - factory: builds one rig per trace
//
// Returns:
//   - []Result: one result per trace; zero-valued for traces that failed or were not run
//   - error: all per-trace errors joined, the context error, or ErrBatchClosed
func (b *Batch) Run(ctx context.Context, traces []*Trace, factory RigFactory) ([]Result, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil, ErrBatchClosed
	}

	results := make([]Result, len(traces))
	errs := make([]error, len(traces))

	var wg sync.WaitGroup
	for i, tr := range traces {
		idx, trace := i, tr
		task := worker.Task{
			ID:      idx,
			Payload: trace.Name,
			Do: func() (any, error) {
				defer wg.Done()

				rig, err := factory()
				if err != nil {
					errs[idx] = fmt.Errorf("trace %d: build rig: %w", idx, err)
					return nil, errs[idx]
				}
				res, _, err := Play(rig, trace)
				if err != nil {
					errs[idx] = fmt.Errorf("trace %d: %w", idx, err)
					return nil, errs[idx]
				}
				results[idx] = res
				b.logger.Debug("trace replayed",
					zap.String("name", res.Name),
					zap.Int("frames", res.Frames),
					zap.Int("suppressed", res.Suppressed),
				)
				return res, nil
			},
		}

		if err := ctx.Err(); err != nil {
			wg.Wait()
			return results, err
		}
		wg.Add(1)
		select {
		case b.tasks <- task:
		case <-ctx.Done():
			wg.Done()
			wg.Wait()
			return results, ctx.Err()
		}
	}
	wg.Wait()

	return results, errors.Join(errs...)
}

// Close stops the workers after any running Run returns. It is safe to call more than once.
func (b *Batch) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.tasks)
}
