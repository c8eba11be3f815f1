package http

import (
	"net/http"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/rostering-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeOffHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type timeOffHandlerImpl struct {
	timeOffService timeoff.TimeOffService
}

func NewTimeOffHandler(timeOffService timeoff.TimeOffService) TimeOffHandler {
	return &timeOffHandlerImpl{
		timeOffService: timeOffService,
	}
}

// Request implements TimeOffHandler.
func (h *timeOffHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req timeoff.CreateTimeOffRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.timeOffService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time off requested", result)
}

// Approve implements TimeOffHandler.
func (h *timeOffHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeOffService.Approve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time off approved", result)
}

// Reject implements TimeOffHandler.
func (h *timeOffHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	result, err := h.timeOffService.Reject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time off rejected", result)
}

// List implements TimeOffHandler.
func (h *timeOffHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := timeoff.TimeOffFilter{
		EmployeeID: optionalQuery(r, "employeeId"),
		Status:     optionalQuery(r, "status"),
	}

	result, err := h.timeOffService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
