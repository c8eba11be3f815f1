package http

import (
	"net/http"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/rostering-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeLogHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	StartBreak(w http.ResponseWriter, r *http.Request)
	EndBreak(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
}

type timeLogHandlerImpl struct {
	timeLogService timelog.TimeLogService
}

func NewTimeLogHandler(timeLogService timelog.TimeLogService) TimeLogHandler {
	return &timeLogHandlerImpl{
		timeLogService: timeLogService,
	}
}

// ClockIn implements TimeLogHandler.
func (h *timeLogHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req timelog.ClockInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.timeLogService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements TimeLogHandler.
func (h *timeLogHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req timelog.ClockOutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.timeLogService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock out successful", result)
}

// StartBreak implements TimeLogHandler.
func (h *timeLogHandlerImpl) StartBreak(w http.ResponseWriter, r *http.Request) {
	var req timelog.StartBreakRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.timeLogService.StartBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break started", result)
}

// EndBreak implements TimeLogHandler.
func (h *timeLogHandlerImpl) EndBreak(w http.ResponseWriter, r *http.Request) {
	var req timelog.EndBreakRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.timeLogService.EndBreak(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Break ended", result)
}

// Get implements TimeLogHandler.
func (h *timeLogHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeLogService.GetTimeLog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMy implements TimeLogHandler.
func (h *timeLogHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	filter := timelog.TimeLogFilter{
		From: optionalQuery(r, "from"),
		To:   optionalQuery(r, "to"),
	}
	filter.Page, filter.Limit = pagination(r)

	result, err := h.timeLogService.ListMyTimeLogs(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
