package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	cutoffs []time.Time
	deleted int64
	err     error
}

func (f *fakeLogRepo) Create(_ context.Context, l activitylog.Log) (activitylog.Log, error) {
	return l, nil
}

func (f *fakeLogRepo) ListRecent(_ context.Context, _ int) ([]activitylog.Log, error) {
	return nil, nil
}

func (f *fakeLogRepo) DeleteOlderThan(_ context.Context, before time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, before)
	return f.deleted, f.err
}

func TestRunOnceExecutesRegisteredJobs(t *testing.T) {
	s := NewScheduler()

	calls := 0
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		calls++
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		calls++
		return errors.New("boom") // a failing job must not stop the rest
	})
	s.AddJob("third", time.Hour, func(ctx context.Context) error {
		calls++
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, 3, calls)
}

func TestPruneOldLogsUsesRetentionCutoff(t *testing.T) {
	repo := &fakeLogRepo{deleted: 7}
	jobs := NewLogJobs(repo, 30*24*time.Hour)

	s := NewScheduler()
	jobs.RegisterJobs(s)
	s.RunOnce(context.Background())

	require.Len(t, repo.cutoffs, 1)
	wantCutoff := time.Now().Add(-30 * 24 * time.Hour)
	assert.WithinDuration(t, wantCutoff, repo.cutoffs[0], time.Minute)
}

func TestPruneOldLogsPropagatesRepoError(t *testing.T) {
	repo := &fakeLogRepo{err: errors.New("db down")}
	jobs := NewLogJobs(repo, time.Hour)

	err := jobs.PruneOldLogs(context.Background())
	assert.Error(t, err)
}
