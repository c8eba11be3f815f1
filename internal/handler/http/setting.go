package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/setting"
	"github.com/cmlabs-hris/rostering-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettingHandler interface {
	GetPayRates(w http.ResponseWriter, r *http.Request)
	UpdatePayRates(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &settingHandlerImpl{
		settingService: settingService,
	}
}

// GetPayRates implements SettingHandler.
func (h *settingHandlerImpl) GetPayRates(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.GetPayRates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdatePayRates implements SettingHandler.
func (h *settingHandlerImpl) UpdatePayRates(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdatePayRatesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.settingService.UpdatePayRates(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Pay rates updated", result)
}

// ListHolidays implements SettingHandler.
func (h *settingHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	var filter setting.HolidayFilter
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		filter.Year = year
	}

	result, err := h.settingService.ListHolidays(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateHoliday implements SettingHandler.
func (h *settingHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req setting.CreateHolidayRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.settingService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Public holiday created", result)
}

// DeleteHoliday implements SettingHandler.
func (h *settingHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.settingService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Public holiday deleted", nil)
}
