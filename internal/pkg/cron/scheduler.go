package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a recurring background job. Run receives the scheduler's context
// and is expected to return quickly; long sweeps should chunk their work.
type Task struct {
	Name  string
	Every time.Duration
	Run   func(ctx context.Context) error
}

// Scheduler drives the clinic's background tasks on fixed intervals. Each
// task gets its own goroutine and fires once immediately on Start, so an
// overdue appointment left over from before a restart is picked up without
// waiting a full interval.
type Scheduler struct {
	mu     sync.Mutex
	tasks  []Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) Register(t Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, t)
	slog.Info("Background task registered", "task", t.Name, "every", t.Every)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		s.wg.Add(1)
		go s.loop(t)
	}

	slog.Info("Background scheduler started", "tasks", len(s.tasks))
}

// Stop cancels the shared context and waits for running tasks to drain.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Background scheduler stopped")
}

func (s *Scheduler) loop(t Task) {
	defer s.wg.Done()

	s.fire(s.ctx, t)

	ticker := time.NewTicker(t.Every)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.fire(s.ctx, t)
		}
	}
}

func (s *Scheduler) fire(ctx context.Context, t Task) {
	start := time.Now()
	if err := t.Run(ctx); err != nil {
		slog.Error("Background task failed", "task", t.Name, "error", err, "took", time.Since(start))
		return
	}
	slog.Debug("Background task done", "task", t.Name, "took", time.Since(start))
}

// RunNow fires every registered task once on the caller's context, outside
// any schedule. Used by tests.
func (s *Scheduler) RunNow(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		s.fire(ctx, t)
	}
}
