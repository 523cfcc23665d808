package employee

import (
	"strings"
	"time"
)

// Employee is a row from the employee directory. The directory is maintained
// by the HR workflow; this service only reads it.
type Employee struct {
	ID              int64 // unique employee number assigned by HR
	FirstName       string
	LastPaternal    string
	LastMaternal    *string
	Active          bool
	HireDate        *time.Time
	TerminationDate *time.Time
	GroupID         *int64
	DepartmentID    *int64
	PlantID         *int64
	RFIDUID         *string
	FingerprintID   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	GroupName      *string
	DepartmentName *string
	PlantName      *string
}

// FullName returns "first paternal [maternal]".
func (e Employee) FullName() string {
	parts := []string{e.FirstName, e.LastPaternal}
	if e.LastMaternal != nil && *e.LastMaternal != "" {
		parts = append(parts, *e.LastMaternal)
	}
	return strings.Join(parts, " ")
}

// HasBiometric reports whether the employee has at least one biometric
// identifier configured.
func (e Employee) HasBiometric() bool {
	return (e.RFIDUID != nil && *e.RFIDUID != "") ||
		(e.FingerprintID != nil && *e.FingerprintID != "")
}

// InTenure reports whether date falls inside the employee's tenure window
// [hire date, termination date]. A nil bound leaves that side open.
func (e Employee) InTenure(date time.Time) bool {
	if e.HireDate != nil && e.HireDate.After(date) {
		return false
	}
	if e.TerminationDate != nil && e.TerminationDate.Before(date) {
		return false
	}
	return true
}
