package report

import (
	"context"
)

// ReportService defines the daily reconciliation engine and the derived
// reports built on top of it. All methods are read-only except
// MaterializeAbsences.
type ReportService interface {
	// BuildDailyReport partitions the eligible workforce for the date
	// (YYYY-MM-DD) into present/absent/late/excused, with per-absentee
	// consecutive-absence streaks and per-late-employee minutes late.
	BuildDailyReport(ctx context.Context, date string, filter Filter) (DailyReport, error)

	// AbsentToday returns today's absent partition.
	AbsentToday(ctx context.Context, filter Filter) ([]AbsentEntry, error)

	// PresentToday returns today's present employees, lates included.
	PresentToday(ctx context.Context, filter Filter) ([]EmployeeEntry, error)

	// GroupStatistics builds the daily report and aggregates it by the
	// requested dimension.
	GroupStatistics(ctx context.Context, date string, filter Filter, groupBy GroupBy) ([]GroupStatistics, error)

	// CriticalAbsences returns absentees whose streak reached the critical
	// threshold.
	CriticalAbsences(ctx context.Context, date string, filter Filter) ([]AbsentEntry, error)

	// MaterializeAbsences inserts an "absent" record for every eligible
	// employee without any record on the date, and returns how many rows
	// were actually inserted. Idempotent.
	MaterializeAbsences(ctx context.Context, date string, filter Filter) (int, error)

	// RangeReport aggregates stored records over an inclusive date range.
	RangeReport(ctx context.Context, req RangeRequest) (RangeReport, error)

	// AttendancePercentages groups period statistics by employee,
	// department, or plant.
	AttendancePercentages(ctx context.Context, req PercentageRequest) (PercentageReport, error)

	// WithoutBiometric lists active employees lacking both RFID and
	// fingerprint enrollment.
	WithoutBiometric(ctx context.Context, filter Filter) ([]EmployeeDigest, error)
}
