package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("attendance for this date already submitted")
	ErrCheckInNotToday    = errors.New("self check-in is only allowed for today")
	ErrNotPending         = errors.New("attendance record is not pending")
)
