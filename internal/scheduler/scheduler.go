// Package scheduler runs the periodic sweep that publishes scheduled posts
// once their time has come.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron"

	"campaign-desk/internal/config/configs"
)

// Publisher publishes every post due at now.
type Publisher interface {
	PublishDuePosts(ctx context.Context, now time.Time) (int, error)
}

// Scheduler triggers Publisher on a cron schedule. A sweep that is still
// running when the next tick fires causes that tick to be skipped.
type Scheduler struct {
	cron   *cron.Cron
	pub    Publisher
	logger *slog.Logger
	now    func() time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
	running atomic.Bool
}

// New registers the sweep under cfg.Spec. The schedule does not run until
// Start is called.
func New(pub Publisher, cfg configs.Scheduler, logger *slog.Logger) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:   cron.New(),
		pub:    pub,
		logger: logger,
		now:    time.Now,
		ctx:    ctx,
		cancel: cancel,
	}
	if err := s.cron.AddFunc(cfg.Spec, s.tick); err != nil {
		cancel()
		return nil, fmt.Errorf("scheduler spec %q: %w", cfg.Spec, err)
	}
	return s, nil
}

// Start begins running the schedule in the background.
func (s *Scheduler) Start() {
	s.logger.Info("scheduler started", slog.Int("entries", len(s.cron.Entries())))
	s.cron.Start()
}

// Stop halts the schedule, cancels a sweep in progress and waits for it to
// return.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
	s.cancel()
	s.wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) tick() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	if _, err := s.RunOnce(s.ctx); err != nil {
		s.logger.Error("publish due posts", slog.Any("error", err))
	}
}

// RunOnce performs a single sweep. It reports zero without calling the
// publisher when another sweep is in progress.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Debug("previous sweep still running, skipping")
		return 0, nil
	}
	defer s.running.Store(false)

	n, err := s.pub.PublishDuePosts(ctx, s.now())
	if n > 0 {
		s.logger.Info("published due posts", slog.Int("count", n))
	}
	return n, err
}
