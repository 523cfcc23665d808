package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines the read-only query shapes the attendance core
// needs over the employee directory.
type EmployeeRepository interface {
	// GetByID retrieves a single employee by number.
	GetByID(ctx context.Context, id int64) (Employee, error)

	// GetByBiometricID resolves an active employee by RFID UID or fingerprint
	// id. Returns ErrEmployeeNotFound when no active employee matches.
	GetByBiometricID(ctx context.Context, biometricID string) (Employee, error)

	// ListEligible returns the employees matching the filter that are in
	// tenure on asOf (hire date <= asOf <= termination date, open bounds
	// included). Inactive employees are excluded unless the filter says
	// otherwise.
	ListEligible(ctx context.Context, filter EligibilityFilter, asOf time.Time) ([]Employee, error)

	// ListWithoutBiometric returns active employees with neither an RFID UID
	// nor a fingerprint id configured.
	ListWithoutBiometric(ctx context.Context, filter EligibilityFilter) ([]Employee, error)
}
