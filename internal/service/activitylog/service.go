package activitylog

import (
	"context"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
)

type LogServiceImpl struct {
	activitylog.LogRepository
}

func NewLogService(logRepository activitylog.LogRepository) activitylog.LogService {
	return &LogServiceImpl{LogRepository: logRepository}
}

// Record implements activitylog.LogService.
func (s *LogServiceImpl) Record(ctx context.Context, req activitylog.CreateLogRequest) (activitylog.LogResponse, error) {
	created, err := s.LogRepository.Create(ctx, activitylog.Log{
		Action:    req.Action,
		Performer: req.Performer,
	})
	if err != nil {
		return activitylog.LogResponse{}, err
	}
	return activitylog.ToResponse(created), nil
}

// Recent implements activitylog.LogService.
func (s *LogServiceImpl) Recent(ctx context.Context) ([]activitylog.LogResponse, error) {
	logs, err := s.LogRepository.ListRecent(ctx, activitylog.RecentLimit)
	if err != nil {
		return nil, err
	}
	return activitylog.ToResponseList(logs), nil
}
