package employee

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	empID    = "123e4567-e89b-12d3-a456-426614174000"
	officeID = "223e4567-e89b-12d3-a456-426614174000"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	created     employee.Employee
	list        []employee.Employee
	total       int64
	memberships [][2]string
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	e.ID = empID
	f.created = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if id != empID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: empID}, nil
}

func (f *fakeEmployeeRepo) List(context.Context, employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return f.list, f.total, nil
}

func (f *fakeEmployeeRepo) AddOffice(_ context.Context, employeeID, officeID string) error {
	f.memberships = append(f.memberships, [2]string{employeeID, officeID})
	return nil
}

type fakeOfficeRepo struct {
	office.OfficeRepository
}

func (fakeOfficeRepo) GetByID(_ context.Context, id string) (office.OfficeLocation, error) {
	if id != officeID {
		return office.OfficeLocation{}, office.ErrOfficeNotFound
	}
	return office.OfficeLocation{ID: id}, nil
}

func TestCreateEmployee_Defaults(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(repo, fakeOfficeRepo{})

	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FullName:       "Ayu Lestari",
		Email:          "ayu@example.com",
		EmploymentType: "part_time",
		BaseRate:       decimal.NewFromInt(20),
		OfficeIDs:      []string{officeID},
	})
	require.NoError(t, err)
	assert.Equal(t, empID, resp.ID)
	assert.Equal(t, "20.00", resp.BaseRate)
	assert.Equal(t, employee.EmploymentStatusActive, repo.created.EmploymentStatus)
	assert.Equal(t, user.RoleEmployee, repo.created.Role)
}

func TestCreateEmployee_UnknownOffice(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{}, fakeOfficeRepo{})
	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FullName:       "Ayu Lestari",
		Email:          "ayu@example.com",
		EmploymentType: "casual",
		OfficeIDs:      []string{"323e4567-e89b-12d3-a456-426614174000"},
	})
	assert.ErrorIs(t, err, office.ErrOfficeNotFound)
}

func TestCreateEmployee_NegativeRate(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{}, fakeOfficeRepo{})
	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		FullName:       "Ayu Lestari",
		Email:          "ayu@example.com",
		EmploymentType: "casual",
		BaseRate:       decimal.NewFromInt(-1),
	})
	assert.Error(t, err)
}

func TestListEmployees_Pagination(t *testing.T) {
	repo := &fakeEmployeeRepo{list: []employee.Employee{{ID: empID}}, total: 45}
	svc := NewEmployeeService(repo, fakeOfficeRepo{})

	resp, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Employees, 1)
}

func TestAddOffice(t *testing.T) {
	repo := &fakeEmployeeRepo{}
	svc := NewEmployeeService(repo, fakeOfficeRepo{})

	require.NoError(t, svc.AddOffice(context.Background(), employee.OfficeMembershipRequest{EmployeeID: empID, OfficeID: officeID}))
	assert.Equal(t, [][2]string{{empID, officeID}}, repo.memberships)

	err := svc.AddOffice(context.Background(), employee.OfficeMembershipRequest{EmployeeID: empID, OfficeID: "323e4567-e89b-12d3-a456-426614174000"})
	assert.ErrorIs(t, err, office.ErrOfficeNotFound)
}
