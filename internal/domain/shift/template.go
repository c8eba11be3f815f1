package shift

import (
	"math/rand/v2"
	"time"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
)

// AutoAssignNote is stamped on every shift created by the auto-assigner.
const AutoAssignNote = "Auto-assigned"

// Template is a wall-clock shift window applied to a calendar day.
type Template struct {
	StartHour int
	EndHour   int
}

var (
	FullTimeTemplate = Template{StartHour: 9, EndHour: 17}
	PartTimeTemplate = Template{StartHour: 12, EndHour: 18}
	CasualTemplate   = Template{StartHour: 18, EndHour: 23}
)

// Decider answers the casual-staff coin flip on weekdays.
type Decider interface {
	AssignCasual(employeeID string, day time.Time) bool
}

// RandomDecider flips a fair coin.
type RandomDecider struct{}

func (RandomDecider) AssignCasual(string, time.Time) bool {
	return rand.Float64() > 0.5
}

// DeciderFunc adapts a plain function to Decider.
type DeciderFunc func(employeeID string, day time.Time) bool

func (f DeciderFunc) AssignCasual(employeeID string, day time.Time) bool {
	return f(employeeID, day)
}

// IsWeekend reports whether day falls on Saturday or Sunday.
func IsWeekend(day time.Time) bool {
	wd := day.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// TemplateFor picks the shift template for an employment type on day.
// ok is false when the employee should not be rostered that day; full-time staff
// have no weekend template.
func TemplateFor(emp employee.Employee, day time.Time, decider Decider) (tpl Template, ok bool) {
	weekend := IsWeekend(day)
	switch emp.EmploymentType {
	case employee.EmploymentTypeFullTime:
		if weekend {
			return Template{}, false
		}
		return FullTimeTemplate, true
	case employee.EmploymentTypePartTime:
		return PartTimeTemplate, true
	case employee.EmploymentTypeCasual:
		if weekend || decider.AssignCasual(emp.ID, day) {
			return CasualTemplate, true
		}
		return Template{}, false
	default:
		return Template{}, false
	}
}

// On places the template on the calendar day of dayStart, in dayStart's location.
func (t Template) On(dayStart time.Time) (start, end time.Time) {
	y, m, d := dayStart.Date()
	loc := dayStart.Location()
	return time.Date(y, m, d, t.StartHour, 0, 0, 0, loc), time.Date(y, m, d, t.EndHour, 0, 0, 0, loc)
}
