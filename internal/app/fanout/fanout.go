// Package fanout runs independent application-layer lookups concurrently,
// such as the owned and invited list queries behind an account overview.
package fanout

import (
	"context"
	"sync"
)

// Task is one named lookup. Name identifies the task in a returned *Error.
type Task[R any] struct {
	Name string
	Run  func(ctx context.Context) (R, error)
}

// Error reports the first task that failed.
type Error struct {
	Task string
	Err  error
}

func (e *Error) Error() string { return e.Task + ": " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// All runs every task in its own goroutine and returns the values in input
// order. The first failure cancels the context seen by the remaining tasks;
// All still waits for every task to return before reporting that failure as
// an *Error. If ctx is already done, no task runs.
func All[R any](ctx context.Context, tasks ...Task[R]) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	values := make([]R, len(tasks))
	var (
		wg    sync.WaitGroup
		once  sync.Once
		first *Error
	)

	for i, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			v, err := task.Run(ctx)
			if err != nil {
				once.Do(func() {
					first = &Error{Task: task.Name, Err: err}
					cancel()
				})
				return
			}
			values[i] = v
		}()
	}

	wg.Wait()
	if first != nil {
		return nil, first
	}
	return values, nil
}
