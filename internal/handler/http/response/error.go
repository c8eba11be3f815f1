package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/setting"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timelog"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/rostering-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/rostering-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Authentication
	case errors.Is(err, jwtauth.ErrNoTokenFound),
		errors.Is(err, jwtauth.ErrExpired),
		errors.Is(err, jwtauth.ErrUnauthorized),
		errors.Is(err, jwt.ErrMissingClaims),
		errors.Is(err, jwt.ErrInvalidRole),
		errors.Is(err, jwt.ErrInvalidType),
		errors.Is(err, jwt.ErrTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrInsufficientPermissions),
		errors.Is(err, user.ErrEmployeeIDRequired):
		Forbidden(w, err.Error())

	// Time log errors
	case errors.Is(err, timelog.ErrTimeLogNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, timelog.ErrOutsideOfficeArea),
		errors.Is(err, timelog.ErrBreakNotStarted),
		errors.Is(err, timelog.ErrClockOutBeforeIn),
		errors.Is(err, timelog.ErrBreakOutOfOrder):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, timelog.ErrAlreadyClockedIn),
		errors.Is(err, timelog.ErrAlreadyClockedOut),
		errors.Is(err, timelog.ErrAlreadyOnBreak),
		errors.Is(err, timelog.ErrBreakAlreadyEnded),
		errors.Is(err, timelog.ErrTimeLogClosed):
		Conflict(w, err.Error())
	case errors.Is(err, timelog.ErrNotOwner):
		Forbidden(w, err.Error())

	// Shift errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, shift.ErrInvalidTimeRange),
		errors.Is(err, shift.ErrRepeatEndBeforeStart),
		errors.Is(err, shift.ErrTooManyOccurrences),
		errors.Is(err, shift.ErrEmployeeNotOfficeMember):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shift.ErrInvalidStatusChange),
		errors.Is(err, shift.ErrShiftClosed):
		Conflict(w, err.Error())

	// Employee and office errors
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, employee.ErrMembershipNotFound),
		errors.Is(err, employee.ErrNoOfficeMembership),
		errors.Is(err, office.ErrOfficeNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, employee.ErrEmployeeNotActive):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrEmailExists),
		errors.Is(err, employee.ErrMembershipExists),
		errors.Is(err, office.ErrOfficeNameExists),
		errors.Is(err, office.ErrOfficeInUse):
		Conflict(w, err.Error())

	// Time off errors
	case errors.Is(err, timeoff.ErrTimeOffNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, timeoff.ErrTimeOffAlreadyProcessed),
		errors.Is(err, timeoff.ErrOverlappingTimeOff):
		Conflict(w, err.Error())

	// Settings and payroll errors
	case errors.Is(err, setting.ErrHolidayNotFound):
		NotFound(w, err.Error())
	case errors.Is(err, setting.ErrHolidayExists):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrInvalidPeriod),
		errors.Is(err, payroll.ErrPeriodTooLong):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
