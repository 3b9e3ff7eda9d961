package attendance

import (
	"context"

	"github.com/dost-electric/workforce-backend-go/internal/domain/user"
)

type AttendanceService interface {
	// Upsert routes by actor role: employees self check-in for today
	// only and land PENDING; admins mark anyone for any date as PRESENT
	// or ABSENT directly.
	Upsert(ctx context.Context, actor user.Actor, req UpsertAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, actor user.Actor, filter Filter) ([]AttendanceResponse, error)
	Approve(ctx context.Context, id string, performer string) (AttendanceResponse, error)
	Delete(ctx context.Context, id string, performer string) error
}
