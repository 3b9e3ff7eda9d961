package activitylog

import (
	"context"
	"time"
)

type LogRepository interface {
	Create(ctx context.Context, l Log) (Log, error)
	// ListRecent returns the newest entries first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]Log, error)
	// DeleteOlderThan prunes the trail; returns the number of rows removed.
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}
