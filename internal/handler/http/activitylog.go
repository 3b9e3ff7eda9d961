package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dost-electric/workforce-backend-go/internal/domain/activitylog"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/middleware"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/response"
)

type LogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LogHandlerImpl struct {
	logService activitylog.LogService
}

func NewLogHandler(logService activitylog.LogService) LogHandler {
	return &LogHandlerImpl{logService: logService}
}

// Create implements LogHandler.
func (h *LogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req activitylog.CreateLogRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Fill the performer from the token when the client leaves it out.
	if req.Performer == "" {
		if actor, err := middleware.ActorFromContext(r.Context()); err == nil {
			req.Performer = actor.Name
		}
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.logService.Record(r.Context(), req)
	if err != nil {
		slog.Error("Create log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Log recorded", created)
}

// List implements LogHandler.
func (h *LogHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.logService.Recent(r.Context())
	if err != nil {
		slog.Error("List logs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}
