package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/dost-electric/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type logRepository struct {
	db *database.DB
}

// Create implements activitylog.LogRepository.
func (r *logRepository) Create(ctx context.Context, l activitylog.Log) (activitylog.Log, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	query := `
		INSERT INTO activity_logs (id, action, performer)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, l.ID, l.Action, l.Performer).Scan(&l.CreatedAt)
	if err != nil {
		return activitylog.Log{}, fmt.Errorf("failed to create activity log: %w", err)
	}

	return l, nil
}

// ListRecent implements activitylog.LogRepository.
func (r *logRepository) ListRecent(ctx context.Context, limit int) ([]activitylog.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, action, performer, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	var logs []activitylog.Log
	for rows.Next() {
		var l activitylog.Log
		if err := rows.Scan(&l.ID, &l.Action, &l.Performer, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, nil
}

// DeleteOlderThan implements activitylog.LogRepository.
func (r *logRepository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM activity_logs WHERE created_at < $1`

	commandTag, err := q.Exec(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to prune activity logs: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func NewLogRepository(db *database.DB) activitylog.LogRepository {
	return &logRepository{db: db}
}
