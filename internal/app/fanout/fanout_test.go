package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/arimodu/shopper/internal/app/fanout"
)

func constant(name string, v int) fanout.Task[int] {
	return fanout.Task[int]{Name: name, Run: func(context.Context) (int, error) { return v, nil }}
}

func TestAll_NoTasks(t *testing.T) {
	t.Parallel()

	values, err := fanout.All[int](context.Background())
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if values == nil || len(values) != 0 {
		t.Errorf("All() = %v, want empty non-nil slice", values)
	}
}

func TestAll_PreservesOrder(t *testing.T) {
	t.Parallel()

	slow := fanout.Task[int]{Name: "slow", Run: func(context.Context) (int, error) {
		time.Sleep(20 * time.Millisecond)
		return 1, nil
	}}

	values, err := fanout.All(context.Background(), slow, constant("fast", 2), constant("faster", 3))
	if err != nil {
		t.Fatalf("All() error = %v", err)
	}

	want := []int{1, 2, 3}
	for i := range want {
		if values[i] != want[i] {
			t.Errorf("values[%d] = %d, want %d", i, values[i], want[i])
		}
	}
}

func TestAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32
	release := make(chan struct{})
	task := fanout.Task[int]{Name: "blocking", Run: func(ctx context.Context) (int, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		if n == 3 {
			close(release)
		}
		select {
		case <-release:
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Second):
			return 0, errors.New("tasks did not overlap")
		}
		running.Add(-1)
		return int(n), nil
	}}

	if _, err := fanout.All(context.Background(), task, task, task); err != nil {
		t.Fatalf("All() error = %v", err)
	}
	if peak.Load() != 3 {
		t.Errorf("peak concurrency = %d, want 3", peak.Load())
	}
}

func TestAll_FirstFailureCancelsOthers(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")
	failing := fanout.Task[int]{Name: "GetInvitedLists", Run: func(context.Context) (int, error) {
		return 0, boom
	}}

	var sawCancel atomic.Bool
	waiting := fanout.Task[int]{Name: "GetListsByUserID", Run: func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			sawCancel.Store(true)
			return 0, ctx.Err()
		case <-time.After(time.Second):
			return 1, nil
		}
	}}

	values, err := fanout.All(context.Background(), waiting, failing)
	if values != nil {
		t.Errorf("All() values = %v, want nil", values)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("All() error = %v, want %v", err, boom)
	}

	var ferr *fanout.Error
	if !errors.As(err, &ferr) {
		t.Fatalf("All() error type = %T, want *fanout.Error", err)
	}
	if ferr.Task != "GetInvitedLists" {
		t.Errorf("Error.Task = %q, want %q", ferr.Task, "GetInvitedLists")
	}
	if !sawCancel.Load() {
		t.Error("sibling task did not observe cancellation")
	}
}

func TestAll_CanceledContextRunsNothing(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	task := fanout.Task[int]{Name: "counted", Run: func(context.Context) (int, error) {
		calls.Add(1)
		return 0, nil
	}}

	_, err := fanout.All(ctx, task, task)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("All() error = %v, want context.Canceled", err)
	}
	if calls.Load() != 0 {
		t.Errorf("tasks ran %d times, want 0", calls.Load())
	}
}
