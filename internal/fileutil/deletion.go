package fileutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"mfsim/internal/common"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
)

// DeletionTask is a handle on a background removal of files and directories.
type DeletionTask struct {
	ID    string
	Paths []string

	done     chan struct{}
	cancel   context.CancelFunc
	once     sync.Once
	started  atomic.Bool
	finished atomic.Bool
	err      error
}

func newDeletionTask(paths []string, cancel context.CancelFunc) *DeletionTask {
	return &DeletionTask{
		ID:     common.GenerateUUID(),
		Paths:  paths,
		done:   make(chan struct{}),
		cancel: cancel,
	}
}

// Done is closed once the task has finished
func (t *DeletionTask) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes or ctx is done
func (t *DeletionTask) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel stops the task before the next path is removed
func (t *DeletionTask) Cancel() {
	t.cancel()
}

// IsWorking reports whether the task has started and not yet finished
func (t *DeletionTask) IsWorking() bool {
	return t.started.Load() && !t.finished.Load()
}

// Finished reports whether the task has completed
func (t *DeletionTask) Finished() bool {
	return t.finished.Load()
}

// Err returns the task result. It is nil while the task is running.
func (t *DeletionTask) Err() error {
	if !t.finished.Load() {
		return nil
	}
	return t.err
}

func (t *DeletionTask) finish(err error) {
	t.once.Do(func() {
		t.err = err
		t.finished.Store(true)
		t.cancel()
		close(t.done)
	})
}

// Deleter runs deletion tasks on a bounded goroutine pool
type Deleter struct {
	pool   *ants.Pool
	logger zerolog.Logger
}

// NewDeleter creates a deleter with at most size concurrent tasks
func NewDeleter(size int, logger zerolog.Logger) (*Deleter, error) {
	if size < 1 {
		size = 1
	}
	pool, err := ants.NewPool(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create deletion pool: %w", err)
	}

	return &Deleter{
		pool:   pool,
		logger: logger.With().Str("component", "deleter").Logger(),
	}, nil
}

// Delete removes the given paths in the background and returns the task handle
func (d *Deleter) Delete(ctx context.Context, paths ...string) *DeletionTask {
	ctx, cancel := context.WithCancel(ctx)
	task := newDeletionTask(paths, cancel)

	if len(paths) == 0 {
		task.started.Store(true)
		task.finish(nil)
		return task
	}

	err := d.pool.Submit(func() {
		task.started.Store(true)
		err := removeAll(ctx, paths)
		if err != nil {
			d.logger.Warn().Err(err).Str("task_id", task.ID).Int("paths", len(paths)).Msg("Deletion task failed")
		} else {
			d.logger.Debug().Str("task_id", task.ID).Int("paths", len(paths)).Msg("Deletion task finished")
		}
		task.finish(err)
	})
	if err != nil {
		d.logger.Error().Err(err).Str("task_id", task.ID).Msg("Failed to submit deletion task")
		task.finish(fmt.Errorf("failed to submit deletion task: %w", err))
	}

	return task
}

// Release shuts the pool down
func (d *Deleter) Release() {
	d.pool.Release()
}

func removeAll(ctx context.Context, paths []string) error {
	var errs []error
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.RemoveAll(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
