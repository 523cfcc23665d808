package attendance

import (
	"github.com/plantsec/hr-access-backend-go/internal/pkg/validator"
)

// EventType is the slot a biometric event targets. The reader firmware sends
// the legacy Spanish values, so they are the wire protocol.
type EventType string

const (
	EventEntry EventType = "entrada"
	EventExit  EventType = "salida"
)

// RegisterEventRequest is one check-in/check-out event from an RFID or
// fingerprint reader, or from the manual kiosk.
type RegisterEventRequest struct {
	BiometricID string  `json:"biometric_id"`
	Timestamp   string  `json:"timestamp"` // RFC3339
	DeviceID    *int64  `json:"device_id,omitempty"`
	PlantID     *int64  `json:"plant_id,omitempty"`
	Type        *string `json:"type,omitempty"` // "entrada" | "salida"; inferred when omitted
}

func (r *RegisterEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BiometricID) {
		errs = append(errs, validator.ValidationError{
			Field:   "biometric_id",
			Message: "biometric_id is required",
		})
	} else if !validator.IsValidBiometricID(r.BiometricID) {
		errs = append(errs, validator.ValidationError{
			Field:   "biometric_id",
			Message: "biometric_id has an invalid format",
		})
	}

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	}

	if r.Type != nil && *r.Type != string(EventEntry) && *r.Type != string(EventExit) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be 'entrada' or 'salida'",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateRecordRequest creates a manual attendance record.
type CreateRecordRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Entry      *string `json:"entry,omitempty"`
	Exit       *string `json:"exit,omitempty"`
	Status     *string `json:"status,omitempty"`
	DeviceID   *int64  `json:"device_id,omitempty"`
	PlantID    *int64  `json:"plant_id,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	}

	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, late, excused",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateRecordRequest is a manual edit of an existing record.
type UpdateRecordRequest struct {
	ID       string  `json:"-"`
	Entry    *string `json:"entry,omitempty"`
	Exit     *string `json:"exit,omitempty"`
	Status   *string `json:"status,omitempty"`
	DeviceID *int64  `json:"device_id,omitempty"`
	PlantID  *int64  `json:"plant_id,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, late, excused",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordFilter filters the attendance log listing.
type RecordFilter struct {
	EmployeeID *int64
	PlantID    *int64
	Status     *string
	Date       *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
	SortOrder  string
}

// PeriodFilter narrows range queries used by period reports.
type PeriodFilter struct {
	EmployeeID   *int64
	EmployeeIDs  []int64
	PlantID      *int64
	DepartmentID *int64
	Status       *Status
}

type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Entry        *string `json:"entry"`
	Exit         *string `json:"exit"`
	Status       string  `json:"status"`
	DeviceID     *int64  `json:"device_id,omitempty"`
	PlantID      *int64  `json:"plant_id,omitempty"`
	PlantName    *string `json:"plant_name,omitempty"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}
