package attendance

import (
	"context"
	"time"
)

// RecordRepository defines data access for attendance records. The store
// enforces the (employee_id, date) uniqueness invariant; Create surfaces a
// violation as ErrAttendanceAlreadyRegistered so callers can retry as update.
type RecordRepository interface {
	// Create inserts a new record and returns it with store-assigned fields.
	Create(ctx context.Context, rec Record) (Record, error)

	// CreateAllMissing inserts each record only where no record exists for
	// its (employee, date) pair, atomically, and returns how many rows were
	// actually inserted. This is the materializer's race-safe insert.
	CreateAllMissing(ctx context.Context, recs []Record) (int, error)

	// GetByID retrieves a record by its id, with joined display names.
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate returns the record for the employee on the given
	// calendar date, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Record, error)

	// ListByDate returns every record for the given calendar date.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// ListRange returns the employee's records with dates in [from, to],
	// oldest first. The reconciliation engine uses one such query per
	// absentee instead of a store round trip per day scanned.
	ListRange(ctx context.Context, employeeID int64, from, to time.Time) ([]Record, error)

	// ListForPeriod returns all records with dates in [from, to] matching
	// the filter, with joined display names, oldest first.
	ListForPeriod(ctx context.Context, from, to time.Time, filter PeriodFilter) ([]Record, error)

	// List returns a filtered, paginated page of records plus a total count.
	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)

	// Update rewrites the mutable fields of an existing record.
	Update(ctx context.Context, rec Record) error

	// Delete removes a record by id.
	Delete(ctx context.Context, id string) error
}
