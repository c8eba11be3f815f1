package http

import (
	"net/http"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	AddOffice(w http.ResponseWriter, r *http.Request)
	RemoveOffice(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// CreateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployees implements EmployeeHandler.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{
		OfficeID:         optionalQuery(r, "officeId"),
		EmploymentStatus: optionalQuery(r, "employmentStatus"),
		EmploymentType:   optionalQuery(r, "employmentType"),
		Search:           optionalQuery(r, "search"),
	}
	filter.Page, filter.Limit = pagination(r)

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// AddOffice implements EmployeeHandler.
func (h *employeeHandlerImpl) AddOffice(w http.ResponseWriter, r *http.Request) {
	req := employee.OfficeMembershipRequest{
		EmployeeID: chi.URLParam(r, "id"),
		OfficeID:   chi.URLParam(r, "officeID"),
	}
	if err := h.employeeService.AddOffice(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Office membership added", nil)
}

// RemoveOffice implements EmployeeHandler.
func (h *employeeHandlerImpl) RemoveOffice(w http.ResponseWriter, r *http.Request) {
	req := employee.OfficeMembershipRequest{
		EmployeeID: chi.URLParam(r, "id"),
		OfficeID:   chi.URLParam(r, "officeID"),
	}
	if err := h.employeeService.RemoveOffice(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office membership removed", nil)
}
