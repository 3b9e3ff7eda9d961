package activitylog

import (
	"time"

	"github.com/dost-electric/workforce-backend-go/internal/pkg/validator"
)

type CreateLogRequest struct {
	Action    string `json:"action"`
	Performer string `json:"performer"`
}

func (r *CreateLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	}
	if len(r.Action) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must not exceed 500 characters",
		})
	}
	if len(r.Performer) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "performer",
			Message: "performer must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LogResponse struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Performer string    `json:"performer"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToResponse(l Log) LogResponse {
	return LogResponse{
		ID:        l.ID,
		Action:    l.Action,
		Performer: l.Performer,
		CreatedAt: l.CreatedAt,
	}
}

func ToResponseList(logs []Log) []LogResponse {
	out := make([]LogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToResponse(l))
	}
	return out
}
