package scheduler

import (
	"context"
	"fmt"
	"sync"

	"todo-backend/pkg/adapter/controller"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StatsJobName is the name of the todo count report job.
const StatsJobName = "todo-stats"

// Scheduler manages cron jobs
type Scheduler struct {
	cron     *cron.Cron
	todo     controller.Todo
	logger   *zap.Logger
	mu       sync.Mutex
	entryIDs map[string]cron.EntryID // Map job names to cron entry IDs
	lastRun  int
}

// NewScheduler creates a new scheduler
func NewScheduler(todo controller.Todo, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		cron:     cron.New(),
		todo:     todo,
		logger:   logger,
		entryIDs: make(map[string]cron.EntryID),
	}
}

// Start registers the stats job on schedule and starts the cron scheduler
func (s *Scheduler) Start(ctx context.Context, schedule string) error {
	s.logger.Info("starting cron scheduler", zap.String("schedule", schedule))

	entryID, err := s.cron.AddFunc(schedule, func() {
		if _, err := s.RunStatsJob(ctx); err != nil {
			s.logger.Error("job failed", zap.String("job", StatsJobName), zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.mu.Lock()
	s.entryIDs[StatsJobName] = entryID
	s.mu.Unlock()

	s.cron.Start()
	return nil
}

// Stop stops the cron scheduler and waits for running jobs
func (s *Scheduler) Stop() {
	s.logger.Info("stopping cron scheduler")
	cronCtx := s.cron.Stop()
	<-cronCtx.Done()
	s.logger.Info("cron scheduler stopped")
}

// RunStatsJob logs the number of stored todos and returns it.
func (s *Scheduler) RunStatsJob(ctx context.Context) (int, error) {
	n, err := s.todo.Count(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	delta := n - s.lastRun
	s.lastRun = n
	s.mu.Unlock()

	s.logger.Info("todo stats",
		zap.String("job", StatsJobName),
		zap.Int("count", n),
		zap.Int("delta", delta),
	)
	return n, nil
}

// Entries returns the registered job names.
func (s *Scheduler) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.entryIDs))
	for name := range s.entryIDs {
		names = append(names, name)
	}
	return names
}
