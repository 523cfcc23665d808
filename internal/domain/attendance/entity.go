package attendance

import (
	"time"
)

// Status of an attendance record for one employee on one calendar day.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	// StatusExcused is an explicit override set by HR; the classifier never
	// assigns it from timestamps.
	StatusExcused Status = "excused"
)

// IsValid reports whether s is one of the four known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// Record is the attendance log row for one employee on one calendar date.
// At most one record exists per (employee, date); the store enforces it.
type Record struct {
	ID         string
	EmployeeID int64
	Date       time.Time // midnight, no time component
	Entry      *time.Time
	Exit       *time.Time
	Status     Status
	DeviceID   *int64
	PlantID    *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName   *string
	GroupName      *string
	DepartmentName *string
	PlantName      *string
}
