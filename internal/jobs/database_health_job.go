package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"taxi/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ErrNotChecked is reported until the first probe has run.
var ErrNotChecked = errors.New("database health has not been checked yet")

const pingTimeout = 3 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DatabaseHealthJob pings the database on a cron schedule and keeps the
// latest result for GET /health.
type DatabaseHealthJob struct {
	db       Pinger
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger

	mu      sync.RWMutex
	lastErr error
}

// NewDatabaseHealthJob creates a probe. schedule is a six-field cron
// expression with seconds, e.g. "*/15 * * * * *".
func NewDatabaseHealthJob(db Pinger, schedule string, log *zap.Logger) *DatabaseHealthJob {
	return &DatabaseHealthJob{
		db:       db,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   log.With(logger.String("component", "database_health_job")),
		lastErr:  ErrNotChecked,
	}
}

// Start runs one probe immediately, then schedules the rest.
func (j *DatabaseHealthJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Check(context.Background())
	})
	if err != nil {
		return err
	}

	j.Check(context.Background())
	j.cron.Start()
	j.logger.Info("Database health job started", logger.String("schedule", j.schedule))
	return nil
}

// Stop halts scheduling and waits for a running probe to finish.
func (j *DatabaseHealthJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Database health job stopped")
}

// Check pings the database once and records the result. Transitions between
// healthy and unhealthy are logged.
func (j *DatabaseHealthJob) Check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := j.db.PingContext(ctx)

	j.mu.Lock()
	prev := j.lastErr
	j.lastErr = err
	j.mu.Unlock()

	switch {
	case err != nil && prev == nil:
		j.logger.Error("Database became unreachable", logger.Error(err))
	case err != nil && errors.Is(prev, ErrNotChecked):
		j.logger.Error("Database is unreachable", logger.Error(err))
	case err == nil && prev != nil:
		j.logger.Info("Database is reachable")
	}
}

// Err returns nil when the latest probe succeeded.
func (j *DatabaseHealthJob) Err() error {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.lastErr
}
