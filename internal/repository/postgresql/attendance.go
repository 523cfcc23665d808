package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/plantsec/hr-access-backend-go/internal/domain/attendance"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/database"
)

type recordRepository struct {
	db *database.DB
}

// pgUniqueViolation is the SQLSTATE for a unique constraint violation.
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

const recordColumns = `
	r.id, r.employee_id, r.date, r.entry_time, r.exit_time, r.status,
	r.device_id, r.plant_id, r.created_at, r.updated_at,
	CONCAT_WS(' ', e.first_name, e.last_paternal, e.last_maternal) AS employee_name,
	g.name AS group_name, d.name AS department_name, p.name AS plant_name`

const recordJoins = `
	FROM attendance_records r
	JOIN employees e ON e.id = r.employee_id
	LEFT JOIN groups g ON g.id = e.group_id
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN plants p ON p.id = r.plant_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Entry, &rec.Exit, &rec.Status,
		&rec.DeviceID, &rec.PlantID, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.GroupName, &rec.DepartmentName, &rec.PlantName,
	)
	return rec, err
}

// Create implements attendance.RecordRepository.
func (r *recordRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, entry_time, exit_time, status, device_id, plant_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.Date,
		rec.Entry,
		rec.Exit,
		rec.Status,
		rec.DeviceID,
		rec.PlantID,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Record{}, attendance.ErrAttendanceAlreadyRegistered
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// CreateAllMissing implements attendance.RecordRepository. The batch runs in
// one transaction so a partially materialized day is never visible.
func (r *recordRepository) CreateAllMissing(ctx context.Context, recs []attendance.Record) (int, error) {
	inserted := 0
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, rec := range recs {
			ok, err := r.createIfMissing(txCtx, rec)
			if err != nil {
				return err
			}
			if ok {
				inserted++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *recordRepository) createIfMissing(ctx context.Context, rec attendance.Record) (bool, error) {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (
			id, employee_id, date, entry_time, exit_time, status, device_id, plant_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.Date,
		rec.Entry,
		rec.Exit,
		rec.Status,
		rec.DeviceID,
		rec.PlantID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetByID implements attendance.RecordRepository.
func (r *recordRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + recordColumns + recordJoins + `
	WHERE r.id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.RecordRepository.
func (r *recordRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + recordColumns + recordJoins + `
	WHERE r.employee_id = $1
	  AND r.date = $2
	LIMIT 1`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day yet
		}
		return nil, fmt.Errorf("failed to get attendance record by employee and date: %w", err)
	}

	return &rec, nil
}

// ListByDate implements attendance.RecordRepository.
func (r *recordRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + recordColumns + recordJoins + `
	WHERE r.date = $1
	ORDER BY r.employee_id`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records by date: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListRange implements attendance.RecordRepository.
func (r *recordRepository) ListRange(ctx context.Context, employeeID int64, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + recordColumns + recordJoins + `
	WHERE r.employee_id = $1
	  AND r.date BETWEEN $2 AND $3
	ORDER BY r.date`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records in range: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListForPeriod implements attendance.RecordRepository.
func (r *recordRepository) ListForPeriod(ctx context.Context, from, to time.Time, filter attendance.PeriodFilter) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "r.date BETWEEN $1 AND $2"
	args := []interface{}{from, to}
	argIdx := 3

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND r.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if len(filter.EmployeeIDs) > 0 {
		baseWhere += fmt.Sprintf(" AND r.employee_id = ANY($%d)", argIdx)
		args = append(args, filter.EmployeeIDs)
		argIdx++
	}
	if filter.PlantID != nil {
		baseWhere += fmt.Sprintf(" AND r.plant_id = $%d", argIdx)
		args = append(args, *filter.PlantID)
		argIdx++
	}
	if filter.DepartmentID != nil {
		baseWhere += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.Status != nil {
		baseWhere += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `SELECT` + recordColumns + recordJoins + `
	WHERE ` + baseWhere + `
	ORDER BY r.date, r.employee_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records for period: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// List implements attendance.RecordRepository.
func (r *recordRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND r.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.PlantID != nil {
		baseWhere += fmt.Sprintf(" AND r.plant_id = $%d", argIdx)
		args = append(args, *filter.PlantID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND r.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND r.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND r.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := `SELECT COUNT(*)` + recordJoins + `
	WHERE ` + baseWhere

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query := `SELECT` + recordColumns + recordJoins + `
	WHERE ` + baseWhere + `
	ORDER BY r.date ` + sortOrder + `, r.employee_id` +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Update implements attendance.RecordRepository.
func (r *recordRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET entry_time = $2,
			exit_time = $3,
			status = $4,
			device_id = $5,
			plant_id = $6,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID,
		rec.Entry,
		rec.Exit,
		rec.Status,
		rec.DeviceID,
		rec.PlantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Delete implements attendance.RecordRepository.
func (r *recordRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	records := make([]attendance.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}

func NewRecordRepository(db *database.DB) attendance.RecordRepository {
	return &recordRepository{db: db}
}
