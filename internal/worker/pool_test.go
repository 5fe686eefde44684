package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gamevault/backend/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

func TestPool(t *testing.T) {
	var executed int32

	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(2, 10)
		pool.Start()

		job := &testJob{executed: &executed}
		pool.Enqueue(job)
		pool.Enqueue(job)

		// Wait a bit for workers to process
		time.Sleep(50 * time.Millisecond)

		pool.Stop()
	})

	if atomic.LoadInt32(&executed) != 2 {
		t.Errorf("Expected 2 jobs executed, got %d", executed)
	}
}

func TestPool_JobErrorDoesNotStopWorkers(t *testing.T) {
	var executed int32
	pool := NewPool(1, 10)
	pool.Start()

	pool.Enqueue(&testJob{executed: &executed, err: errors.New("job failed")})
	pool.Enqueue(&testJob{executed: &executed})

	time.Sleep(50 * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != 2 {
		t.Errorf("Expected 2 jobs executed, got %d", executed)
	}
}
