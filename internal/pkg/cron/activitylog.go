package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
)

// LogJobs holds the audit trail maintenance jobs
type LogJobs struct {
	logRepo   activitylog.LogRepository
	retention time.Duration
}

// NewLogJobs creates the audit trail job set. retention is how long
// entries are kept before pruning.
func NewLogJobs(logRepo activitylog.LogRepository, retention time.Duration) *LogJobs {
	return &LogJobs{
		logRepo:   logRepo,
		retention: retention,
	}
}

// RegisterJobs registers the maintenance jobs with the scheduler
func (j *LogJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("prune-activity-logs", 24*time.Hour, j.PruneOldLogs)
}

// PruneOldLogs deletes audit entries older than the retention window.
// The API already caps reads at the most recent entries; this keeps the
// table from growing without bound.
func (j *LogJobs) PruneOldLogs(ctx context.Context) error {
	cutoff := time.Now().Add(-j.retention)

	deleted, err := j.logRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	if deleted > 0 {
		slog.Info("Pruned activity logs", "deleted", deleted, "cutoff", cutoff.Format(time.RFC3339))
	}

	return nil
}
