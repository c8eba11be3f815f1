package postgresql_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/rostering-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	officeID   string
	employeeID string
}

func seed(t *testing.T, db *database.DB) fixture {
	t.Helper()
	ctx := context.Background()

	o, err := postgresql.NewOfficeRepository(db).Create(ctx, office.OfficeLocation{
		Name: "Jakarta HQ", Latitude: -6.175392, Longitude: 106.827153, RadiusMeters: 50, Timezone: "Asia/Jakarta",
	})
	require.NoError(t, err)

	emp, err := postgresql.NewEmployeeRepository(db).Create(ctx, employee.Employee{
		FullName:         "Dewi Lestari",
		Email:            "dewi@example.com",
		EmploymentType:   employee.EmploymentTypeCasual,
		EmploymentStatus: employee.EmploymentStatusActive,
		BaseRate:         decimal.NewFromInt(20),
		Role:             user.RoleEmployee,
		OfficeIDs:        []string{o.ID},
	})
	require.NoError(t, err)
	require.Equal(t, []string{o.ID}, emp.OfficeIDs)

	return fixture{officeID: o.ID, employeeID: emp.ID}
}

func TestEmployeeRepository_Membership(t *testing.T) {
	db := newTestDatabase(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	assert.ErrorIs(t, repo.AddOffice(ctx, f.employeeID, f.officeID), employee.ErrMembershipExists)

	active, err := repo.ListActiveByOfficeID(ctx, f.officeID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.True(t, active[0].BaseRate.Equal(decimal.NewFromInt(20)))

	offices, err := postgresql.NewOfficeRepository(db).ListByEmployeeID(ctx, f.employeeID)
	require.NoError(t, err)
	require.Len(t, offices, 1)
	assert.Equal(t, "Asia/Jakarta", offices[0].Timezone)

	require.NoError(t, repo.RemoveOffice(ctx, f.employeeID, f.officeID))
	assert.ErrorIs(t, repo.RemoveOffice(ctx, f.employeeID, f.officeID), employee.ErrMembershipNotFound)
}

func TestTimeLogRepository_OneLogPerDay(t *testing.T) {
	db := newTestDatabase(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := postgresql.NewTimeLogRepository(db)

	date := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	in := timelog.TimeLog{
		EmployeeID:    f.employeeID,
		OfficeID:      f.officeID,
		ClockInDate:   date,
		ClockIn:       time.Date(2025, 3, 4, 2, 0, 0, 0, time.UTC),
		ClockInStatus: timelog.StatusNoShift,
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, in)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				created++
				return
			}
			assert.ErrorIs(t, err, timelog.ErrAlreadyClockedIn)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, created)

	exists, err := repo.ExistsForDate(ctx, f.employeeID, date)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTimeLogRepository_GuardedUpdates(t *testing.T) {
	db := newTestDatabase(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := postgresql.NewTimeLogRepository(db)

	clockIn := time.Date(2025, 3, 4, 2, 0, 0, 0, time.UTC)
	l, err := repo.Create(ctx, timelog.TimeLog{
		EmployeeID:    f.employeeID,
		OfficeID:      f.officeID,
		ClockInDate:   time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
		ClockIn:       clockIn,
		ClockInStatus: timelog.StatusNoShift,
	})
	require.NoError(t, err)

	_, err = repo.EndBreak(ctx, l.ID, clockIn.Add(time.Hour))
	assert.ErrorIs(t, err, timelog.ErrBreakNotStarted)

	_, err = repo.StartBreak(ctx, l.ID, clockIn.Add(time.Hour))
	require.NoError(t, err)
	_, err = repo.StartBreak(ctx, l.ID, clockIn.Add(2*time.Hour))
	assert.ErrorIs(t, err, timelog.ErrAlreadyOnBreak)

	status := timelog.StatusNoShift
	diff := 0
	out := clockIn.Add(8 * time.Hour)
	l.ClockOut, l.ClockOutStatus, l.ClockOutDiffInMin = &out, &status, &diff

	closed, err := repo.Close(ctx, l)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed())

	_, err = repo.Close(ctx, l)
	assert.ErrorIs(t, err, timelog.ErrAlreadyClockedOut)

	_, err = repo.EndBreak(ctx, l.ID, out.Add(time.Hour))
	assert.ErrorIs(t, err, timelog.ErrTimeLogClosed)
}

func TestShiftRepository_FindFirstOnDay(t *testing.T) {
	db := newTestDatabase(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := postgresql.NewShiftRepository(db)

	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	for _, h := range []int{14, 9} {
		_, err := repo.Create(ctx, shift.Shift{
			EmployeeID:      &f.employeeID,
			OfficeID:        f.officeID,
			StartTime:       day.Add(time.Duration(h) * time.Hour),
			EndTime:         day.Add(time.Duration(h+4) * time.Hour),
			Status:          shift.StatusAssigned,
			RepeatFrequency: shift.RepeatNone,
		})
		require.NoError(t, err)
	}

	first, err := repo.FindFirstOnDay(ctx, f.employeeID, shift.BoundaryStart, day, day.Add(24*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 9, first.StartTime.UTC().Hour())
	require.NotNil(t, first.EmployeeName)
	assert.Equal(t, "Dewi Lestari", *first.EmployeeName)

	none, err := repo.FindFirstOnDay(ctx, f.employeeID, shift.BoundaryStart, day.Add(24*time.Hour), day.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, none)

	overlap, err := repo.ExistsOverlapping(ctx, f.employeeID, day.Add(12*time.Hour), day.Add(15*time.Hour))
	require.NoError(t, err)
	assert.True(t, overlap)
}

func TestTimeOffRepository_Review(t *testing.T) {
	db := newTestDatabase(t)
	f := seed(t, db)
	ctx := context.Background()
	repo := postgresql.NewTimeOffRepository(db)

	req, err := repo.Create(ctx, timeoff.TimeOff{
		EmployeeID: f.employeeID,
		StartDate:  time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Status:     timeoff.StatusPending,
	})
	require.NoError(t, err)

	approved, err := repo.UpdateStatus(ctx, req.ID, timeoff.StatusApproved, "reviewer")
	require.NoError(t, err)
	assert.Equal(t, timeoff.StatusApproved, approved.Status)

	_, err = repo.UpdateStatus(ctx, req.ID, timeoff.StatusRejected, "reviewer")
	assert.ErrorIs(t, err, timeoff.ErrTimeOffAlreadyProcessed)

	on, err := repo.HasApprovedOn(ctx, f.employeeID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, on)
}
