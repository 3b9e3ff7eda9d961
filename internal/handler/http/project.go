package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dost-electric/workforce-backend-go/internal/domain/project"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/middleware"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddIncome(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
}

func NewProjectHandler(projectService project.ProjectService) ProjectHandler {
	return &ProjectHandlerImpl{projectService: projectService}
}

// Create implements ProjectHandler.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create object decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.projectService.Create(r.Context(), req, actor.Name)
	if err != nil {
		slog.Error("Create object service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Object created", created)
}

// List implements ProjectHandler.
func (h *ProjectHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		slog.Error("List objects service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, projects)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.projectService.Delete(r.Context(), id, actor.Name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Object deleted", nil)
}

// AddIncome implements ProjectHandler.
func (h *ProjectHandlerImpl) AddIncome(w http.ResponseWriter, r *http.Request) {
	actor, err := middleware.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req project.AddIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Add income decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ProjectID = chi.URLParam(r, "id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := h.projectService.AddIncome(r.Context(), req, actor.Name)
	if err != nil {
		slog.Error("Add income service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Income added", updated)
}

// Stats implements ProjectHandler.
func (h *ProjectHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	stats, err := h.projectService.Stats(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
