package http

import (
	"net/http"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/rostering-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Reassign(w http.ResponseWriter, r *http.Request)
	AutoAssign(w http.ResponseWriter, r *http.Request)
}

type shiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &shiftHandlerImpl{
		shiftService: shiftService,
	}
}

// Create implements ShiftHandler.
func (h *shiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.shiftService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created successfully", result)
}

// Get implements ShiftHandler.
func (h *shiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.GetShift(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ShiftHandler.
func (h *shiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := shift.ShiftFilter{
		OfficeID:   optionalQuery(r, "officeId"),
		EmployeeID: optionalQuery(r, "employeeId"),
		Status:     optionalQuery(r, "status"),
		From:       optionalQuery(r, "from"),
		To:         optionalQuery(r, "to"),
	}
	filter.Page, filter.Limit = pagination(r)

	result, err := h.shiftService.ListShifts(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements ShiftHandler.
func (h *shiftHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.shiftService.UpdateShiftStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift status updated", result)
}

// Reassign implements ShiftHandler.
func (h *shiftHandlerImpl) Reassign(w http.ResponseWriter, r *http.Request) {
	var req shift.ReassignShiftRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.shiftService.ReassignShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift reassigned", result)
}

// AutoAssign implements ShiftHandler.
func (h *shiftHandlerImpl) AutoAssign(w http.ResponseWriter, r *http.Request) {
	var req shift.AutoAssignRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.shiftService.AutoAssign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}
