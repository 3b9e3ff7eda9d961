package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dost-electric/workforce-backend-go/internal/domain/payroll"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/middleware"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Create implements PayrollHandler.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req payroll.CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Advance requests may omit the employee id; it is the caller.
	if req.EmployeeID == "" && actor.EmployeeID != nil {
		req.EmployeeID = *actor.EmployeeID
	}
	if req.Type == "" {
		req.Type = string(payroll.TypeDailyPay)
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.payrollService.Create(r.Context(), actor, req)
	if err != nil {
		slog.Error("Create payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll recorded", created)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	objectID := queryParam(r, "object_id")
	if objectID == nil {
		// Older clients still send the pre-rename parameter.
		objectID = queryParam(r, "project_id")
	}

	filter := payroll.Filter{
		EmployeeID: queryParam(r, "employee_id"),
		ObjectID:   objectID,
		Month:      queryParam(r, "month"),
		Status:     queryParam(r, "status"),
	}

	records, err := h.payrollService.List(r.Context(), actor, filter)
	if err != nil {
		slog.Error("List payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Approve implements PayrollHandler.
func (h *PayrollHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	approved, err := h.payrollService.Approve(r.Context(), id, actor.Name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll approved", approved)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.payrollService.Delete(r.Context(), id, actor.Name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll removed", nil)
}
