package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dost-electric/workforce-backend-go/internal/domain/attendance"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/middleware"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Upsert implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.UpsertAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Upsert attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Self check-in may omit the employee id; it is always the caller.
	if req.EmployeeID == "" && actor.EmployeeID != nil {
		req.EmployeeID = *actor.EmployeeID
	}
	if req.Status == "" {
		req.Status = string(attendance.StatusPending)
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	saved, err := h.attendanceService.Upsert(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", saved)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.Filter{
		EmployeeID: queryParam(r, "employee_id"),
		Date:       queryParam(r, "date"),
		From:       queryParam(r, "from"),
		To:         queryParam(r, "to"),
		Status:     queryParam(r, "status"),
	}

	records, err := h.attendanceService.List(r.Context(), actor, filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Approve implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	approved, err := h.attendanceService.Approve(r.Context(), id, actor.Name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance approved", approved)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Delete(r.Context(), id, actor.Name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance removed", nil)
}

// queryParam returns a pointer to the query value, nil when absent.
func queryParam(r *http.Request, key string) *string {
	if !r.URL.Query().Has(key) {
		return nil
	}
	v := r.URL.Query().Get(key)
	return &v
}
