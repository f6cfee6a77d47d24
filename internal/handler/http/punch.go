package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chronoshq/timeclock-backend-go/internal/domain/punch"
	"github.com/chronoshq/timeclock-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PunchHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &PunchHandlerImpl{punchService: punchService}
}

// Record implements PunchHandler.
func (h *PunchHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req punch.RecordPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Punch record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.punchService.Record(r.Context(), req)
	if err != nil {
		slog.Error("Punch record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", resp)
}

// List implements PunchHandler.
func (h *PunchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := punch.ListPunchesRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	resp, err := h.punchService.List(r.Context(), req)
	if err != nil {
		slog.Error("Punch list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
