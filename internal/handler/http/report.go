package http

import (
	"log/slog"
	"net/http"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/reconcile"
	"github.com/chronoshq/timeclock-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceBalance(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reconcileService reconcile.ReconcileService
}

func NewReportHandler(reconcileService reconcile.ReconcileService) ReportHandler {
	return &ReportHandlerImpl{reconcileService: reconcileService}
}

// AttendanceBalance implements ReportHandler.
func (h *ReportHandlerImpl) AttendanceBalance(w http.ResponseWriter, r *http.Request) {
	req := reconcile.BalanceReportRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	report, err := h.reconcileService.GenerateBalanceReport(r.Context(), req)
	if err != nil {
		slog.Error("Attendance balance report error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
