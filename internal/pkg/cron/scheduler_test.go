package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunNow(t *testing.T) {
	t.Parallel()

	var first, second atomic.Int64
	s := NewScheduler()
	s.Register(Task{Name: "first", Every: time.Hour, Run: func(ctx context.Context) error {
		first.Add(1)
		return nil
	}})
	s.Register(Task{Name: "second", Every: time.Hour, Run: func(ctx context.Context) error {
		second.Add(1)
		return errors.New("boom")
	}})

	s.RunNow(context.Background())
	s.RunNow(context.Background())

	assert.Equal(t, int64(2), first.Load())
	assert.Equal(t, int64(2), second.Load(), "a failing task must not block the others")
}

func TestScheduler_StartFiresImmediately(t *testing.T) {
	t.Parallel()

	fired := make(chan struct{}, 1)
	s := NewScheduler()
	s.Register(Task{Name: "sweep", Every: time.Hour, Run: func(ctx context.Context) error {
		select {
		case fired <- struct{}{}:
		default:
		}
		return nil
	}})

	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		require.Fail(t, "task did not fire on start")
	}
}

func TestScheduler_StopWaitsForTasks(t *testing.T) {
	t.Parallel()

	var runs atomic.Int64
	s := NewScheduler()
	s.Register(Task{Name: "sweep", Every: time.Hour, Run: func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}})

	s.Start()
	s.Stop()

	assert.Equal(t, int64(1), runs.Load(), "the immediate run completes before Stop returns")
}
