// Package jobs runs background maintenance on a cron schedule.
package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/profilkantor/profile-api/internal/metrics"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one unit of scheduled work. The context is cancelled after the
// job's timeout or when the scheduler stops.
type Job func(ctx context.Context) error

// Scheduler manages background jobs using cron scheduling.
type Scheduler struct {
	cron    *cron.Cron
	logger  *zap.Logger
	metrics *metrics.JobMetrics
	mu      sync.Mutex
	jobs    map[string]registeredJob
	ctx     context.Context
	cancel  context.CancelFunc
}

type registeredJob struct {
	id  cron.EntryID
	run func()
}

// cronParser accepts 5-field, 6-field (leading seconds) and @descriptor expressions
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// NewScheduler creates a new job scheduler. m may be nil.
func NewScheduler(logger *zap.Logger, m *metrics.JobMetrics) *Scheduler {
	cronLogger := zapCronLogger{logger: logger.Sugar()}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithParser(cronParser),
			cron.WithLogger(cronLogger),
			cron.WithChain(
				cron.SkipIfStillRunning(cronLogger),
				cron.Recover(cronLogger),
			),
		),
		logger:  logger,
		metrics: m,
		jobs:    make(map[string]registeredJob),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start starts the scheduler. Jobs added before this call will begin running.
func (s *Scheduler) Start() {
	s.logger.Info("starting job scheduler")
	s.cron.Start()
}

// Stop cancels running jobs and returns a context that is done once they return.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("stopping job scheduler")
	s.cancel()
	return s.cron.Stop()
}

// AddJob adds a job with the given name and cron expression. Examples:
//   - "0 15 * * * *" - At minute 15 of every hour (with seconds field)
//   - "15 * * * *"   - At minute 15 of every hour (standard 5-field format)
//   - "@every 1h"    - Every hour
func (s *Scheduler) AddJob(name, cronExpr string, timeout time.Duration, job Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[name]; exists {
		return fmt.Errorf("job %s already exists", name)
	}

	run := func() { s.execute(name, timeout, job) }
	entryID, err := s.cron.AddFunc(cronExpr, run)
	if err != nil {
		return fmt.Errorf("failed to add job %s: %w", name, err)
	}

	s.jobs[name] = registeredJob{id: entryID, run: run}
	s.logger.Info("added scheduled job",
		zap.String("job_name", name),
		zap.String("cron_expr", cronExpr))

	return nil
}

// RunNow executes a registered job synchronously, outside its schedule.
func (s *Scheduler) RunNow(name string) error {
	s.mu.Lock()
	j, exists := s.jobs[name]
	s.mu.Unlock()
	if !exists {
		return fmt.Errorf("job %s not found", name)
	}
	j.run()
	return nil
}

// RemoveJob removes a job by name.
func (s *Scheduler) RemoveJob(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, exists := s.jobs[name]
	if !exists {
		return fmt.Errorf("job %s not found", name)
	}

	s.cron.Remove(j.id)
	delete(s.jobs, name)

	s.logger.Info("removed scheduled job",
		zap.String("job_name", name))

	return nil
}

// GetJobNames returns the names of all registered jobs.
func (s *Scheduler) GetJobNames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	return names
}

func (s *Scheduler) execute(name string, timeout time.Duration, job Job) {
	ctx := s.ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	s.logger.Info("running scheduled job", zap.String("job_name", name))

	err := job(ctx)
	duration := time.Since(start)
	s.metrics.ObserveDuration(name, duration)

	if err != nil {
		s.metrics.IncFailure(name)
		s.logger.Error("scheduled job failed",
			zap.String("job_name", name),
			zap.Duration("duration", duration),
			zap.Error(err))
		return
	}

	s.metrics.IncSuccess(name)
	s.logger.Info("completed scheduled job",
		zap.String("job_name", name),
		zap.Duration("duration", duration))
}

// zapCronLogger routes cron's internal logging to zap
type zapCronLogger struct {
	logger *zap.SugaredLogger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
