package http

import (
	"log/slog"
	"net/http"

	"github.com/dost-electric/workforce-backend-go/internal/domain/dashboard"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	req := dashboard.SummaryRequest{
		Date:  queryParam(r, "date"),
		From:  queryParam(r, "from"),
		To:    queryParam(r, "to"),
		Month: queryParam(r, "month"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.dashboardService.Summary(r.Context(), req)
	if err != nil {
		slog.Error("Dashboard summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
