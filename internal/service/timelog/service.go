package timelog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/geofence"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/jwt"
)

type TimeLogServiceImpl struct {
	timeLogRepo  timelog.TimeLogRepository
	employeeRepo employee.EmployeeRepository
	officeRepo   office.OfficeRepository
	matcher      shift.Matcher
	now          func() time.Time
}

func NewTimeLogService(
	timeLogRepo timelog.TimeLogRepository,
	employeeRepo employee.EmployeeRepository,
	officeRepo office.OfficeRepository,
	matcher shift.Matcher,
	now func() time.Time,
) timelog.TimeLogService {
	if now == nil {
		now = time.Now
	}
	return &TimeLogServiceImpl{
		timeLogRepo:  timeLogRepo,
		employeeRepo: employeeRepo,
		officeRepo:   officeRepo,
		matcher:      matcher,
		now:          now,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

func mapTimeLogToResponse(l timelog.TimeLog) timelog.TimeLogResponse {
	var clockOutStatus *string
	if l.ClockOutStatus != nil {
		s := string(*l.ClockOutStatus)
		clockOutStatus = &s
	}
	return timelog.TimeLogResponse{
		ID:                l.ID,
		EmployeeID:        l.EmployeeID,
		OfficeID:          l.OfficeID,
		Date:              l.ClockInDate.Format("2006-01-02"),
		ClockInTime:       l.ClockIn.Format(time.RFC3339),
		ClockOutTime:      timePtrToString(l.ClockOut),
		BreakStartTime:    timePtrToString(l.BreakStart),
		BreakEndTime:      timePtrToString(l.BreakEnd),
		HasShift:          l.HasShift,
		ClockInStatus:     string(l.ClockInStatus),
		ClockInDiffInMin:  l.ClockInDiffInMin,
		ClockOutStatus:    clockOutStatus,
		ClockOutDiffInMin: l.ClockOutDiffInMin,
		ClockInLatitude:   l.ClockInLatitude,
		ClockInLongitude:  l.ClockInLongitude,
		ClockOutLatitude:  l.ClockOutLatitude,
		ClockOutLongitude: l.ClockOutLongitude,
		State:             string(l.State()),
	}
}

func (s *TimeLogServiceImpl) at(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}
	return t
}

// governingTime returns the scheduled boundary of the matched shift, if any.
func (s *TimeLogServiceImpl) governingTime(ctx context.Context, employeeID string, at time.Time, boundary shift.Boundary, loc *time.Location) (*time.Time, error) {
	matched, err := s.matcher.FindGoverningShift(ctx, employeeID, at, boundary, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to match shift: %w", err)
	}
	if matched == nil {
		return nil, nil
	}
	scheduled := matched.StartTime
	if boundary == shift.BoundaryEnd {
		scheduled = matched.EndTime
	}
	return &scheduled, nil
}

// ownedLog loads a log and checks that the caller owns it.
func (s *TimeLogServiceImpl) ownedLog(ctx context.Context, identity user.Identity, id string) (timelog.TimeLog, error) {
	l, err := s.timeLogRepo.GetByID(ctx, id)
	if err != nil {
		return timelog.TimeLog{}, err
	}
	if l.EmployeeID != identity.EmployeeID {
		return timelog.TimeLog{}, timelog.ErrNotOwner
	}
	return l, nil
}

// ClockIn implements timelog.TimeLogService. The employee comes from the access
// token; the first member office whose fence contains the point is used.
func (s *TimeLogServiceImpl) ClockIn(ctx context.Context, req timelog.ClockInRequest) (timelog.TimeLogResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.TimeLogResponse{}, err
	}
	identity, err := jwt.MustEmployee(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, identity.EmployeeID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	if !emp.IsActive() {
		return timelog.TimeLogResponse{}, employee.ErrEmployeeNotActive
	}

	offices, err := s.officeRepo.ListByEmployeeID(ctx, emp.ID)
	if err != nil {
		return timelog.TimeLogResponse{}, fmt.Errorf("failed to list employee offices: %w", err)
	}
	if len(offices) == 0 {
		return timelog.TimeLogResponse{}, employee.ErrNoOfficeMembership
	}

	var matched *office.OfficeLocation
	for i := range offices {
		if geofence.IsWithinFence(req.Latitude.Value, req.Longitude.Value, offices[i].Fence()) {
			matched = &offices[i]
			break
		}
	}
	if matched == nil {
		return timelog.TimeLogResponse{}, timelog.ErrOutsideOfficeArea
	}

	at := s.at(req.At)
	loc := matched.Location()
	date := timelog.LocalDate(at, loc)

	exists, err := s.timeLogRepo.ExistsForDate(ctx, emp.ID, date)
	if err != nil {
		return timelog.TimeLogResponse{}, fmt.Errorf("failed to check existing time log: %w", err)
	}
	if exists {
		return timelog.TimeLogResponse{}, timelog.ErrAlreadyClockedIn
	}

	scheduled, err := s.governingTime(ctx, emp.ID, at, shift.BoundaryStart, loc)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	class := timelog.Classify(scheduled, at)

	created, err := s.timeLogRepo.Create(ctx, timelog.TimeLog{
		EmployeeID:       emp.ID,
		OfficeID:         matched.ID,
		ClockInDate:      date,
		ClockIn:          at,
		HasShift:         scheduled != nil,
		ClockInStatus:    class.Status,
		ClockInDiffInMin: class.DiffMinutes,
		ClockInLatitude:  req.Latitude.Value,
		ClockInLongitude: req.Longitude.Value,
	})
	if err != nil {
		if errors.Is(err, timelog.ErrAlreadyClockedIn) {
			return timelog.TimeLogResponse{}, err
		}
		return timelog.TimeLogResponse{}, fmt.Errorf("failed to create time log: %w", err)
	}
	return mapTimeLogToResponse(created), nil
}

// ClockOut implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) ClockOut(ctx context.Context, req timelog.ClockOutRequest) (timelog.TimeLogResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.TimeLogResponse{}, err
	}
	identity, err := jwt.MustEmployee(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	l, err := s.ownedLog(ctx, identity, req.TimeLogID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	if l.IsClosed() {
		return timelog.TimeLogResponse{}, timelog.ErrAlreadyClockedOut
	}

	o, err := s.officeRepo.GetByID(ctx, l.OfficeID)
	if err != nil {
		if errors.Is(err, office.ErrOfficeNotFound) {
			return timelog.TimeLogResponse{}, timelog.ErrOutsideOfficeArea
		}
		return timelog.TimeLogResponse{}, err
	}
	if !geofence.IsWithinFence(req.Latitude.Value, req.Longitude.Value, o.Fence()) {
		return timelog.TimeLogResponse{}, timelog.ErrOutsideOfficeArea
	}

	at := s.at(req.At)
	if !at.After(l.ClockIn) {
		return timelog.TimeLogResponse{}, timelog.ErrClockOutBeforeIn
	}

	scheduled, err := s.governingTime(ctx, l.EmployeeID, at, shift.BoundaryEnd, o.Location())
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	class := timelog.Classify(scheduled, at)

	lat, long := req.Latitude.Value, req.Longitude.Value
	l.ClockOut = &at
	l.ClockOutStatus = &class.Status
	l.ClockOutDiffInMin = &class.DiffMinutes
	l.ClockOutLatitude = &lat
	l.ClockOutLongitude = &long

	closed, err := s.timeLogRepo.Close(ctx, l)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	return mapTimeLogToResponse(closed), nil
}

// StartBreak implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) StartBreak(ctx context.Context, req timelog.StartBreakRequest) (timelog.TimeLogResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.TimeLogResponse{}, err
	}
	identity, err := jwt.MustEmployee(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	l, err := s.ownedLog(ctx, identity, req.TimeLogID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	if l.IsClosed() {
		return timelog.TimeLogResponse{}, timelog.ErrTimeLogClosed
	}
	if l.BreakStart != nil {
		return timelog.TimeLogResponse{}, timelog.ErrAlreadyOnBreak
	}

	at := s.at(req.At)
	if at.Before(l.ClockIn) {
		return timelog.TimeLogResponse{}, timelog.ErrBreakOutOfOrder
	}

	updated, err := s.timeLogRepo.StartBreak(ctx, l.ID, at)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	return mapTimeLogToResponse(updated), nil
}

// EndBreak implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) EndBreak(ctx context.Context, req timelog.EndBreakRequest) (timelog.TimeLogResponse, error) {
	if err := req.Validate(); err != nil {
		return timelog.TimeLogResponse{}, err
	}
	identity, err := jwt.MustEmployee(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}

	l, err := s.ownedLog(ctx, identity, req.TimeLogID)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	if l.IsClosed() {
		return timelog.TimeLogResponse{}, timelog.ErrTimeLogClosed
	}
	if l.BreakStart == nil {
		return timelog.TimeLogResponse{}, timelog.ErrBreakNotStarted
	}
	if l.BreakEnd != nil {
		return timelog.TimeLogResponse{}, timelog.ErrBreakAlreadyEnded
	}

	at := s.at(req.At)
	if !at.After(*l.BreakStart) {
		return timelog.TimeLogResponse{}, timelog.ErrBreakOutOfOrder
	}

	updated, err := s.timeLogRepo.EndBreak(ctx, l.ID, at)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	return mapTimeLogToResponse(updated), nil
}

// GetTimeLog implements timelog.TimeLogService. Callers without timelog.view_all
// only see their own logs.
func (s *TimeLogServiceImpl) GetTimeLog(ctx context.Context, id string) (timelog.TimeLogResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	l, err := s.timeLogRepo.GetByID(ctx, id)
	if err != nil {
		return timelog.TimeLogResponse{}, err
	}
	if !identity.Can(user.PermissionTimeLogViewAll) && l.EmployeeID != identity.EmployeeID {
		return timelog.TimeLogResponse{}, timelog.ErrTimeLogNotFound
	}
	return mapTimeLogToResponse(l), nil
}

// ListMyTimeLogs implements timelog.TimeLogService.
func (s *TimeLogServiceImpl) ListMyTimeLogs(ctx context.Context, filter timelog.TimeLogFilter) (timelog.ListTimeLogResponse, error) {
	identity, err := jwt.MustEmployee(ctx)
	if err != nil {
		return timelog.ListTimeLogResponse{}, err
	}
	filter.EmployeeID = identity.EmployeeID
	if err := filter.Validate(); err != nil {
		return timelog.ListTimeLogResponse{}, err
	}

	logs, total, err := s.timeLogRepo.ListByEmployee(ctx, filter)
	if err != nil {
		return timelog.ListTimeLogResponse{}, fmt.Errorf("failed to list time logs: %w", err)
	}
	resp := make([]timelog.TimeLogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, mapTimeLogToResponse(l))
	}
	return timelog.ListTimeLogResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		TimeLogs:   resp,
	}, nil
}
