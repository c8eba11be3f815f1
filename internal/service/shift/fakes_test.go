package shift

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timeoff"
)

type memShiftRepo struct {
	shift.ShiftRepository
	rows []shift.Shift
	seq  int
}

func (m *memShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	m.seq++
	s.ID = fmt.Sprintf("00000000-0000-4000-8000-%012d", m.seq)
	m.rows = append(m.rows, s)
	return s, nil
}

func (m *memShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	for _, s := range m.rows {
		if s.ID == id {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (m *memShiftRepo) Update(_ context.Context, s shift.Shift) error {
	for i := range m.rows {
		if m.rows[i].ID == s.ID {
			m.rows[i] = s
			return nil
		}
	}
	return shift.ErrShiftNotFound
}

func (m *memShiftRepo) List(_ context.Context, f shift.ShiftFilter) ([]shift.Shift, int64, error) {
	var out []shift.Shift
	for _, s := range m.rows {
		if f.EmployeeID != nil && (s.EmployeeID == nil || *s.EmployeeID != *f.EmployeeID) {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (m *memShiftRepo) FindFirstOnDay(_ context.Context, employeeID string, boundary shift.Boundary, from, to time.Time) (*shift.Shift, error) {
	var hits []shift.Shift
	for _, s := range m.rows {
		if s.EmployeeID == nil || *s.EmployeeID != employeeID || s.Status == shift.StatusCancelled {
			continue
		}
		at := s.StartTime
		if boundary == shift.BoundaryEnd {
			at = s.EndTime
		}
		if !at.Before(from) && at.Before(to) {
			hits = append(hits, s)
		}
	}
	if len(hits) == 0 {
		return nil, nil
	}
	sort.Slice(hits, func(i, j int) bool {
		if !hits[i].StartTime.Equal(hits[j].StartTime) {
			return hits[i].StartTime.Before(hits[j].StartTime)
		}
		return hits[i].ID < hits[j].ID
	})
	return &hits[0], nil
}

func (m *memShiftRepo) ExistsOverlapping(_ context.Context, employeeID string, from, to time.Time) (bool, error) {
	for _, s := range m.rows {
		if s.EmployeeID == nil || *s.EmployeeID != employeeID || s.Status == shift.StatusCancelled {
			continue
		}
		if s.StartTime.Before(to) && s.EndTime.After(from) {
			return true, nil
		}
	}
	return false, nil
}

type memEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
	lockFails map[string]bool
	locked    []string
}

func (m *memEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range m.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) ListActiveByOfficeID(_ context.Context, officeID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range m.employees {
		if !e.IsActive() {
			continue
		}
		for _, id := range e.OfficeIDs {
			if id == officeID {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

func (m *memEmployeeRepo) LockByID(_ context.Context, id string) error {
	if m.lockFails[id] {
		return errors.New("lock timeout")
	}
	m.locked = append(m.locked, id)
	return nil
}

type memOfficeRepo struct {
	office.OfficeRepository
	offices   []office.OfficeLocation
	employees *memEmployeeRepo
}

func (m *memOfficeRepo) GetByID(_ context.Context, id string) (office.OfficeLocation, error) {
	for _, o := range m.offices {
		if o.ID == id {
			return o, nil
		}
	}
	return office.OfficeLocation{}, office.ErrOfficeNotFound
}

func (m *memOfficeRepo) ListByEmployeeID(ctx context.Context, employeeID string) ([]office.OfficeLocation, error) {
	e, err := m.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, nil
	}
	var out []office.OfficeLocation
	for _, id := range e.OfficeIDs {
		if o, err := m.GetByID(ctx, id); err == nil {
			out = append(out, o)
		}
	}
	return out, nil
}

type memTimeOffRepo struct {
	timeoff.TimeOffRepository
	rows []timeoff.TimeOff
}

func (m *memTimeOffRepo) HasApprovedOn(_ context.Context, employeeID string, date time.Time) (bool, error) {
	for _, r := range m.rows {
		if r.EmployeeID == employeeID && r.Status == timeoff.StatusApproved && r.Covers(date) {
			return true, nil
		}
	}
	return false, nil
}

// inlineTx runs fn directly; the in-memory repos have nothing to roll back.
type inlineTx struct{ calls int }

func (t *inlineTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}
