package timelog

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/geofence"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	officeID   = "a0000000-0000-4000-8000-000000000001"
	branchID   = "a0000000-0000-4000-8000-000000000002"
	employeeID = "e0000000-0000-4000-8000-000000000001"
	strangerID = "e0000000-0000-4000-8000-000000000002"
	loneID     = "e0000000-0000-4000-8000-000000000003"
)

// Monas, Jakarta; the branch is a few kilometres south.
var (
	hq     = office.OfficeLocation{ID: officeID, Latitude: -6.175392, Longitude: 106.827153, RadiusMeters: 50, Timezone: "UTC"}
	branch = office.OfficeLocation{ID: branchID, Latitude: -6.2146, Longitude: 106.8451, RadiusMeters: 100, Timezone: "UTC"}
)

type memTimeLogRepo struct {
	timelog.TimeLogRepository
	mu   sync.Mutex
	logs map[string]timelog.TimeLog
	seq  int
}

func newMemTimeLogRepo() *memTimeLogRepo {
	return &memTimeLogRepo{logs: make(map[string]timelog.TimeLog)}
}

func (m *memTimeLogRepo) Create(_ context.Context, l timelog.TimeLog) (timelog.TimeLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.logs {
		if existing.EmployeeID == l.EmployeeID && existing.ClockInDate.Equal(l.ClockInDate) {
			return timelog.TimeLog{}, timelog.ErrAlreadyClockedIn
		}
	}
	m.seq++
	l.ID = fmt.Sprintf("10000000-0000-4000-8000-%012d", m.seq)
	m.logs[l.ID] = l
	return l, nil
}

func (m *memTimeLogRepo) GetByID(_ context.Context, id string) (timelog.TimeLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.logs[id]
	if !ok {
		return timelog.TimeLog{}, timelog.ErrTimeLogNotFound
	}
	return l, nil
}

func (m *memTimeLogRepo) ExistsForDate(_ context.Context, employeeID string, date time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.logs {
		if l.EmployeeID == employeeID && l.ClockInDate.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memTimeLogRepo) Close(_ context.Context, l timelog.TimeLog) (timelog.TimeLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.logs[l.ID].ClockOut != nil {
		return timelog.TimeLog{}, timelog.ErrAlreadyClockedOut
	}
	m.logs[l.ID] = l
	return l, nil
}

func (m *memTimeLogRepo) StartBreak(_ context.Context, id string, at time.Time) (timelog.TimeLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := m.logs[id]
	if l.BreakStart != nil {
		return timelog.TimeLog{}, timelog.ErrAlreadyOnBreak
	}
	l.BreakStart = &at
	m.logs[id] = l
	return l, nil
}

func (m *memTimeLogRepo) EndBreak(_ context.Context, id string, at time.Time) (timelog.TimeLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	l := m.logs[id]
	if l.BreakEnd != nil {
		return timelog.TimeLog{}, timelog.ErrBreakAlreadyEnded
	}
	l.BreakEnd = &at
	m.logs[id] = l
	return l, nil
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
}

func (stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	switch id {
	case employeeID, strangerID, loneID:
		return employee.Employee{ID: id, EmploymentStatus: employee.EmploymentStatusActive}, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type stubOfficeRepo struct {
	office.OfficeRepository
}

func (stubOfficeRepo) GetByID(_ context.Context, id string) (office.OfficeLocation, error) {
	switch id {
	case officeID:
		return hq, nil
	case branchID:
		return branch, nil
	}
	return office.OfficeLocation{}, office.ErrOfficeNotFound
}

func (stubOfficeRepo) ListByEmployeeID(_ context.Context, id string) ([]office.OfficeLocation, error) {
	if id == loneID {
		return nil, nil
	}
	return []office.OfficeLocation{hq, branch}, nil
}

type stubMatcher struct {
	shifts map[shift.Boundary]*shift.Shift
}

func (s stubMatcher) FindGoverningShift(_ context.Context, _ string, _ time.Time, boundary shift.Boundary, _ *time.Location) (*shift.Shift, error) {
	return s.shifts[boundary], nil
}

var day = time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

func nineToFive() stubMatcher {
	s := &shift.Shift{ID: "s1", StartTime: day.Add(9 * time.Hour), EndTime: day.Add(17 * time.Hour)}
	return stubMatcher{shifts: map[shift.Boundary]*shift.Shift{shift.BoundaryStart: s, shift.BoundaryEnd: s}}
}

func employeeCtx(t *testing.T, id string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":     "u-" + id,
		"employee_id": id,
		"role":        string(user.RoleEmployee),
		"type":        "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func rfc(t time.Time) *string {
	s := t.Format(time.RFC3339)
	return &s
}

func newService(repo *memTimeLogRepo, matcher shift.Matcher) timelog.TimeLogService {
	return NewTimeLogService(repo, stubEmployeeRepo{}, stubOfficeRepo{}, matcher, func() time.Time { return day.Add(9 * time.Hour) })
}

func clockIn(t *testing.T, svc timelog.TimeLogService, at time.Time) timelog.TimeLogResponse {
	t.Helper()
	resp, err := svc.ClockIn(employeeCtx(t, employeeID), timelog.ClockInRequest{
		ClockInTime: rfc(at),
		Latitude:    geofence.Float(hq.Latitude),
		Longitude:   geofence.Float(hq.Longitude),
	})
	require.NoError(t, err)
	return resp
}

func TestClockIn_ClassifiesAgainstShift(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())

	resp := clockIn(t, svc, day.Add(9*time.Hour+7*time.Minute))
	assert.True(t, resp.HasShift)
	assert.Equal(t, "LATE", resp.ClockInStatus)
	assert.Equal(t, 7, resp.ClockInDiffInMin)
	assert.Equal(t, officeID, resp.OfficeID)
	assert.Equal(t, "2025-03-04", resp.Date)
	assert.Equal(t, "clocked_in", resp.State)
}

func TestClockIn_NoShift(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), stubMatcher{})

	resp := clockIn(t, svc, day.Add(10*time.Hour))
	assert.False(t, resp.HasShift)
	assert.Equal(t, "NO_SHIFT", resp.ClockInStatus)
	assert.Equal(t, 0, resp.ClockInDiffInMin)
}

func TestClockIn_DefaultsToNow(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())
	resp, err := svc.ClockIn(employeeCtx(t, employeeID), timelog.ClockInRequest{
		Latitude:  geofence.Float(hq.Latitude),
		Longitude: geofence.Float(hq.Longitude),
	})
	require.NoError(t, err)
	assert.Equal(t, "ON_TIME", resp.ClockInStatus)
}

func TestClockIn_SecondOfficeFence(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), stubMatcher{})
	resp, err := svc.ClockIn(employeeCtx(t, employeeID), timelog.ClockInRequest{
		Latitude:  geofence.Float(branch.Latitude),
		Longitude: geofence.Float(branch.Longitude),
	})
	require.NoError(t, err)
	assert.Equal(t, branchID, resp.OfficeID)
}

func TestClockIn_Twice(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())
	clockIn(t, svc, day.Add(9*time.Hour))

	_, err := svc.ClockIn(employeeCtx(t, employeeID), timelog.ClockInRequest{
		ClockInTime: rfc(day.Add(13 * time.Hour)),
		Latitude:    geofence.Float(hq.Latitude),
		Longitude:   geofence.Float(hq.Longitude),
	})
	assert.ErrorIs(t, err, timelog.ErrAlreadyClockedIn)
	assert.EqualError(t, err, "already clocked in today")
}

func TestClockIn_ConcurrentOnlyOneWins(t *testing.T) {
	repo := newMemTimeLogRepo()
	svc := newService(repo, nineToFive())
	ctx := employeeCtx(t, employeeID)

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ClockIn(ctx, timelog.ClockInRequest{
				ClockInTime: rfc(day.Add(9 * time.Hour)),
				Latitude:    geofence.Float(hq.Latitude),
				Longitude:   geofence.Float(hq.Longitude),
			})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, timelog.ErrAlreadyClockedIn)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Len(t, repo.logs, 1)
}

func TestClockIn_OutsideFence(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())
	_, err := svc.ClockIn(employeeCtx(t, employeeID), timelog.ClockInRequest{
		Latitude:  geofence.Float(hq.Latitude + 0.01),
		Longitude: geofence.Float(hq.Longitude),
	})
	assert.ErrorIs(t, err, timelog.ErrOutsideOfficeArea)
}

func TestClockIn_NoMembership(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())
	_, err := svc.ClockIn(employeeCtx(t, loneID), timelog.ClockInRequest{
		Latitude:  geofence.Float(hq.Latitude),
		Longitude: geofence.Float(hq.Longitude),
	})
	assert.ErrorIs(t, err, employee.ErrNoOfficeMembership)
}

func TestClockIn_RequiresEmployeeToken(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())
	_, err := svc.ClockIn(context.Background(), timelog.ClockInRequest{
		Latitude:  geofence.Float(hq.Latitude),
		Longitude: geofence.Float(hq.Longitude),
	})
	assert.Error(t, err)
}

func TestClockOut(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())
	in := clockIn(t, svc, day.Add(9*time.Hour))
	ctx := employeeCtx(t, employeeID)

	req := timelog.ClockOutRequest{
		TimeLogID:    in.ID,
		ClockOutTime: rfc(day.Add(16*time.Hour + 50*time.Minute)),
		Latitude:     geofence.Float(hq.Latitude),
		Longitude:    geofence.Float(hq.Longitude),
	}
	out, err := svc.ClockOut(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, out.ClockOutStatus)
	assert.Equal(t, "EARLY", *out.ClockOutStatus)
	assert.Equal(t, -10, *out.ClockOutDiffInMin)
	assert.Equal(t, "clocked_out", out.State)

	_, err = svc.ClockOut(ctx, req)
	assert.ErrorIs(t, err, timelog.ErrAlreadyClockedOut)

	after, err := svc.GetTimeLog(ctx, in.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ClockOutTime, after.ClockOutTime)
}

func TestClockOut_Errors(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())
	in := clockIn(t, svc, day.Add(9*time.Hour))

	base := timelog.ClockOutRequest{
		TimeLogID: in.ID,
		Latitude:  geofence.Float(hq.Latitude),
		Longitude: geofence.Float(hq.Longitude),
	}

	missing := base
	missing.TimeLogID = "10000000-0000-4000-8000-000000000999"
	_, err := svc.ClockOut(employeeCtx(t, employeeID), missing)
	assert.ErrorIs(t, err, timelog.ErrTimeLogNotFound)

	_, err = svc.ClockOut(employeeCtx(t, strangerID), base)
	assert.ErrorIs(t, err, timelog.ErrNotOwner)

	far := base
	far.Latitude = geofence.Float(branch.Latitude)
	far.Longitude = geofence.Float(branch.Longitude)
	_, err = svc.ClockOut(employeeCtx(t, employeeID), far)
	assert.ErrorIs(t, err, timelog.ErrOutsideOfficeArea)

	early := base
	early.ClockOutTime = rfc(day.Add(8 * time.Hour))
	_, err = svc.ClockOut(employeeCtx(t, employeeID), early)
	assert.ErrorIs(t, err, timelog.ErrClockOutBeforeIn)
}

func TestBreaks(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())
	in := clockIn(t, svc, day.Add(9*time.Hour))
	ctx := employeeCtx(t, employeeID)

	_, err := svc.EndBreak(ctx, timelog.EndBreakRequest{TimeLogID: in.ID, BreakEndTime: rfc(day.Add(12 * time.Hour))})
	assert.ErrorIs(t, err, timelog.ErrBreakNotStarted)
	assert.EqualError(t, err, "start a break first")

	onBreak, err := svc.StartBreak(ctx, timelog.StartBreakRequest{TimeLogID: in.ID, BreakStartTime: rfc(day.Add(12 * time.Hour))})
	require.NoError(t, err)
	assert.Equal(t, "on_break", onBreak.State)

	_, err = svc.StartBreak(ctx, timelog.StartBreakRequest{TimeLogID: in.ID, BreakStartTime: rfc(day.Add(12*time.Hour + time.Minute))})
	assert.ErrorIs(t, err, timelog.ErrAlreadyOnBreak)

	_, err = svc.EndBreak(ctx, timelog.EndBreakRequest{TimeLogID: in.ID, BreakEndTime: rfc(day.Add(11 * time.Hour))})
	assert.ErrorIs(t, err, timelog.ErrBreakOutOfOrder)

	back, err := svc.EndBreak(ctx, timelog.EndBreakRequest{TimeLogID: in.ID, BreakEndTime: rfc(day.Add(13 * time.Hour))})
	require.NoError(t, err)
	assert.Equal(t, "clocked_in", back.State)

	_, err = svc.EndBreak(ctx, timelog.EndBreakRequest{TimeLogID: in.ID, BreakEndTime: rfc(day.Add(14 * time.Hour))})
	assert.ErrorIs(t, err, timelog.ErrBreakAlreadyEnded)
}

func TestBreaks_RejectedAfterClockOut(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())
	in := clockIn(t, svc, day.Add(9*time.Hour))
	ctx := employeeCtx(t, employeeID)

	_, err := svc.ClockOut(ctx, timelog.ClockOutRequest{
		TimeLogID:    in.ID,
		ClockOutTime: rfc(day.Add(17 * time.Hour)),
		Latitude:     geofence.Float(hq.Latitude),
		Longitude:    geofence.Float(hq.Longitude),
	})
	require.NoError(t, err)

	_, err = svc.StartBreak(ctx, timelog.StartBreakRequest{TimeLogID: in.ID, BreakStartTime: rfc(day.Add(18 * time.Hour))})
	assert.ErrorIs(t, err, timelog.ErrTimeLogClosed)
	_, err = svc.EndBreak(ctx, timelog.EndBreakRequest{TimeLogID: in.ID})
	assert.ErrorIs(t, err, timelog.ErrTimeLogClosed)
}

func TestGetTimeLog_HidesOthersLogs(t *testing.T) {
	svc := newService(newMemTimeLogRepo(), nineToFive())
	in := clockIn(t, svc, day.Add(9*time.Hour))

	_, err := svc.GetTimeLog(employeeCtx(t, strangerID), in.ID)
	assert.ErrorIs(t, err, timelog.ErrTimeLogNotFound)
}
