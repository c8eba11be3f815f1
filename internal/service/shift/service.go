package shift

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
)

type ShiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
	officeRepo   office.OfficeRepository
	timeOffRepo  timeoff.TimeOffRepository
	transactor   database.Transactor
	decider      shift.Decider
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	employeeRepo employee.EmployeeRepository,
	officeRepo office.OfficeRepository,
	timeOffRepo timeoff.TimeOffRepository,
	transactor database.Transactor,
	decider shift.Decider,
) shift.ShiftService {
	if decider == nil {
		decider = shift.RandomDecider{}
	}
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		officeRepo:   officeRepo,
		timeOffRepo:  timeOffRepo,
		transactor:   transactor,
		decider:      decider,
	}
}

func timePtrToDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func mapShiftToResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:              s.ID,
		EmployeeID:      s.EmployeeID,
		EmployeeName:    s.EmployeeName,
		OfficeID:        s.OfficeID,
		StartTime:       s.StartTime.Format(time.RFC3339),
		EndTime:         s.EndTime.Format(time.RFC3339),
		Status:          string(s.Status),
		RepeatFrequency: string(s.RepeatFrequency),
		RepeatEndDate:   timePtrToDate(s.RepeatEndDate),
		RepeatGroupID:   s.RepeatGroupID,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}

// ensureMember fails unless the employee exists and belongs to officeID.
func (s *ShiftServiceImpl) ensureMember(ctx context.Context, employeeID, officeID string) error {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return err
	}
	offices, err := s.officeRepo.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to list employee offices: %w", err)
	}
	if !slices.ContainsFunc(offices, func(o office.OfficeLocation) bool { return o.ID == officeID }) {
		return shift.ErrEmployeeNotOfficeMember
	}
	return nil
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) ([]shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.officeRepo.GetByID(ctx, req.OfficeID); err != nil {
		return nil, err
	}
	status := shift.StatusPending
	if req.EmployeeID != nil {
		if err := s.ensureMember(ctx, *req.EmployeeID, req.OfficeID); err != nil {
			return nil, err
		}
		status = shift.StatusAssigned
	}

	freq := shift.RepeatFrequency(req.RepeatFrequency)
	occurrences, err := shift.Occurrences(req.Start, req.End, freq, req.RepeatEnd)
	if err != nil {
		return nil, err
	}

	var groupID *string
	if len(occurrences) > 1 {
		id := uuid.NewString()
		groupID = &id
	}

	created := make([]shift.ShiftResponse, 0, len(occurrences))
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, occ := range occurrences {
			row, err := s.shiftRepo.Create(ctx, shift.Shift{
				EmployeeID:      req.EmployeeID,
				OfficeID:        req.OfficeID,
				StartTime:       occ.Start,
				EndTime:         occ.End,
				Status:          status,
				RepeatFrequency: freq,
				RepeatEndDate:   req.RepeatEnd,
				RepeatGroupID:   groupID,
				Notes:           req.Notes,
			})
			if err != nil {
				return fmt.Errorf("failed to create shift: %w", err)
			}
			created = append(created, mapShiftToResponse(row))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	row, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !identity.Can(user.PermissionShiftViewAll) && (row.EmployeeID == nil || *row.EmployeeID != identity.EmployeeID) {
		return shift.ShiftResponse{}, shift.ErrShiftNotFound
	}
	return mapShiftToResponse(row), nil
}

// ListShifts implements shift.ShiftService. Callers without shift.view_all only see their own shifts.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context, filter shift.ShiftFilter) (shift.ListShiftResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return shift.ListShiftResponse{}, err
	}
	if !identity.Can(user.PermissionShiftViewAll) {
		if identity.EmployeeID == "" {
			return shift.ListShiftResponse{}, user.ErrEmployeeIDRequired
		}
		filter.EmployeeID = &identity.EmployeeID
	}
	if err := filter.Validate(); err != nil {
		return shift.ListShiftResponse{}, err
	}

	rows, total, err := s.shiftRepo.List(ctx, filter)
	if err != nil {
		return shift.ListShiftResponse{}, fmt.Errorf("failed to list shifts: %w", err)
	}

	resp := make([]shift.ShiftResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapShiftToResponse(row))
	}
	return shift.ListShiftResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Shifts:     resp,
	}, nil
}

// UpdateShiftStatus implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateShiftStatus(ctx context.Context, req shift.UpdateShiftStatusRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	var updated shift.Shift
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		row, err := s.shiftRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		next := shift.Status(req.Status)
		if !shift.CanTransition(row.Status, next) {
			return shift.ErrInvalidStatusChange
		}
		// Only a shift with an employee can be assigned or worked.
		if row.EmployeeID == nil && (next == shift.StatusAssigned || next == shift.StatusActive) {
			return shift.ErrInvalidStatusChange
		}
		row.Status = next
		if err := s.shiftRepo.Update(ctx, row); err != nil {
			return err
		}
		updated = row
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return mapShiftToResponse(updated), nil
}

// ReassignShift implements shift.ShiftService. A nil employee unassigns the shift.
func (s *ShiftServiceImpl) ReassignShift(ctx context.Context, req shift.ReassignShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	var updated shift.Shift
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		row, err := s.shiftRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if row.Status.IsTerminal() || row.Status == shift.StatusActive {
			return shift.ErrShiftClosed
		}

		if req.EmployeeID == nil {
			row.EmployeeID = nil
			row.Status = shift.StatusPending
		} else {
			if err := s.ensureMember(ctx, *req.EmployeeID, row.OfficeID); err != nil {
				return err
			}
			row.EmployeeID = req.EmployeeID
			row.Status = shift.StatusAssigned
		}
		if err := s.shiftRepo.Update(ctx, row); err != nil {
			return err
		}
		updated = row
		return nil
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return mapShiftToResponse(updated), nil
}
