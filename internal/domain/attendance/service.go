package attendance

import (
	"context"
)

// AttendanceService defines the mutation paths into attendance records:
// biometric event ingestion and manual record maintenance.
type AttendanceService interface {
	// RegisterEvent resolves the employee behind a biometric id and applies
	// one entry/exit event to that employee's record for the event's day,
	// creating the record when needed and recomputing its status.
	RegisterEvent(ctx context.Context, req RegisterEventRequest) (RecordResponse, error)

	// CreateRecord creates a manual record; fails when one already exists
	// for the employee and date.
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	// UpdateRecord edits an existing record; status is recomputed when clock
	// times change unless an explicit status is supplied.
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)

	// GetRecord retrieves a single record by id.
	GetRecord(ctx context.Context, id string) (RecordResponse, error)

	// ListRecords retrieves records with filters and pagination.
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)

	// DeleteRecord removes a record by id.
	DeleteRecord(ctx context.Context, id string) error
}
