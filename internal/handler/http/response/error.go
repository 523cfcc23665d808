package response

import (
	"errors"
	"net/http"

	"github.com/plantsec/hr-access-backend-go/internal/domain/attendance"
	"github.com/plantsec/hr-access-backend-go/internal/domain/employee"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/department"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/device"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/group"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/plant"
	"github.com/plantsec/hr-access-backend-go/internal/domain/report"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/validator"
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
	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidTimestamp):
		BadRequest(w, "Invalid timestamp", nil)
	case errors.Is(err, attendance.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceAlreadyRegistered):
		Conflict(w, "Attendance already registered")

	// Directory domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, plant.ErrPlantNotFound):
		NotFound(w, "Plant not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, group.ErrGroupNotFound):
		NotFound(w, "Group not found")
	case errors.Is(err, device.ErrDeviceNotFound):
		NotFound(w, "Device not found")
	case errors.Is(err, device.ErrInvalidAPIKey):
		Unauthorized(w, "Invalid device API key")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidGroupBy):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
