package employee

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	officeRepo   office.OfficeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, officeRepo office.OfficeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		officeRepo:   officeRepo,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	officeIDs := emp.OfficeIDs
	if officeIDs == nil {
		officeIDs = []string{}
	}
	return employee.EmployeeResponse{
		ID:               emp.ID,
		FullName:         emp.FullName,
		Email:            emp.Email,
		EmploymentType:   string(emp.EmploymentType),
		EmploymentStatus: string(emp.EmploymentStatus),
		BaseRate:         emp.BaseRate.StringFixed(2),
		Role:             string(emp.Role),
		OfficeIDs:        officeIDs,
		CreatedAt:        emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        emp.UpdatedAt.Format(time.RFC3339),
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	for _, officeID := range req.OfficeIDs {
		if _, err := s.officeRepo.GetByID(ctx, officeID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	status := employee.EmploymentStatusActive
	if req.EmploymentStatus != "" {
		status = employee.EmploymentStatus(req.EmploymentStatus)
	}
	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FullName:         req.FullName,
		Email:            req.Email,
		EmploymentType:   employee.EmploymentType(req.EmploymentType),
		EmploymentStatus: status,
		BaseRate:         req.BaseRate,
		Role:             role,
		OfficeIDs:        req.OfficeIDs,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp = append(resp, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  resp,
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	updated, err := s.employeeRepo.Update(ctx, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return mapEmployeeToResponse(updated), nil
}

// AddOffice implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AddOffice(ctx context.Context, req employee.OfficeMembershipRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}
	if _, err := s.officeRepo.GetByID(ctx, req.OfficeID); err != nil {
		return err
	}
	return s.employeeRepo.AddOffice(ctx, req.EmployeeID, req.OfficeID)
}

// RemoveOffice implements employee.EmployeeService.
func (s *EmployeeServiceImpl) RemoveOffice(ctx context.Context, req employee.OfficeMembershipRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepo.RemoveOffice(ctx, req.EmployeeID, req.OfficeID)
}
