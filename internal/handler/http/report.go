package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dost-electric/workforce-backend-go/internal/domain/report"
	"github.com/dost-electric/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	CSV(w http.ResponseWriter, r *http.Request)
	ExportJSON(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// CSV implements ReportHandler.
// Reports are file downloads; the JSON envelope only applies to error
// paths here.
func (h *ReportHandlerImpl) CSV(w http.ResponseWriter, r *http.Request) {
	objectID := queryParam(r, "object_id")
	if objectID == nil {
		objectID = queryParam(r, "project_id")
	}

	req := report.ReportRequest{
		Kind:     report.Kind(chi.URLParam(r, "kind")),
		Month:    queryParam(r, "month"),
		ObjectID: objectID,
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	data, filename, err := h.reportService.RenderCSV(r.Context(), req)
	if err != nil {
		slog.Error("Render CSV service error", "kind", req.Kind, "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// ExportJSON implements ReportHandler.
// The export is the backup document itself, 2-space indented so it
// stays diffable and human-readable.
func (h *ReportHandlerImpl) ExportJSON(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.ExportJSON(r.Context())
	if err != nil {
		slog.Error("Export JSON service error", "error", err)
		response.HandleError(w, err)
		return
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		response.InternalServerError(w, "Failed to encode export")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "export-"+export.ExportDate[:10]+".json"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
