package activitylog

import "context"

// RecentLimit caps how many entries a read returns. The dashboard only
// ever shows the latest page; older entries age out via the cron job.
const RecentLimit = 50

type LogService interface {
	Record(ctx context.Context, req CreateLogRequest) (LogResponse, error)
	Recent(ctx context.Context) ([]LogResponse, error)
}
