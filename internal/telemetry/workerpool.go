package telemetry

import (
	"context"

	"go.uber.org/zap"
)

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// Task is one queued unit of work, typically a single reading push.
type Task func() error

// WorkerPool fans tasks out to a fixed set of goroutines so a slow
// measurement store cannot back up the scheduling tick.
type WorkerPool struct {
	tasks chan Task
}

func NewWorkerPool(size int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, size)}
	for i := 0; i < size; i++ {
		go wp.run()
	}
	return wp
}

func (wp *WorkerPool) run() {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("telemetry task failed", zap.Error(err))
		}
	}
}

// AddTask queues task for execution. It gives up when ctx is canceled
// instead of blocking on a full queue.
func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

// Close lets the workers drain and exit. Calling it twice is tolerated.
func (wp *WorkerPool) Close() {
	select {
	case <-wp.tasks:
	default:
		close(wp.tasks)
	}
}
