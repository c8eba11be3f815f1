package http

import (
	"net/http"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OfficeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CheckFence(w http.ResponseWriter, r *http.Request)
}

type officeHandlerImpl struct {
	officeService office.OfficeService
}

func NewOfficeHandler(officeService office.OfficeService) OfficeHandler {
	return &officeHandlerImpl{
		officeService: officeService,
	}
}

// Create implements OfficeHandler.
func (h *officeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req office.CreateOfficeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.officeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office created successfully", result)
}

// Get implements OfficeHandler.
func (h *officeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.officeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements OfficeHandler.
func (h *officeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.officeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements OfficeHandler.
func (h *officeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req office.UpdateOfficeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.officeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office updated successfully", result)
}

// Delete implements OfficeHandler.
func (h *officeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.officeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office deleted successfully", nil)
}

// CheckFence implements OfficeHandler.
func (h *officeHandlerImpl) CheckFence(w http.ResponseWriter, r *http.Request) {
	var req office.CheckFenceRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.OfficeID = chi.URLParam(r, "id")

	result, err := h.officeService.CheckFence(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
