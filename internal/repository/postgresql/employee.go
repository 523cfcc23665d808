package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/plantsec/hr-access-backend-go/internal/domain/employee"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

const employeeColumns = `
	e.id, e.first_name, e.last_paternal, e.last_maternal, e.active,
	e.hire_date, e.termination_date, e.group_id, e.department_id, e.plant_id,
	e.rfid_uid, e.fingerprint_id, e.created_at, e.updated_at,
	g.name AS group_name, d.name AS department_name, p.name AS plant_name`

const employeeJoins = `
	FROM employees e
	LEFT JOIN groups g ON g.id = e.group_id
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN plants p ON p.id = e.plant_id`

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastPaternal, &emp.LastMaternal, &emp.Active,
		&emp.HireDate, &emp.TerminationDate, &emp.GroupID, &emp.DepartmentID, &emp.PlantID,
		&emp.RFIDUID, &emp.FingerprintID, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.GroupName, &emp.DepartmentName, &emp.PlantName,
	)
	return emp, err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + employeeJoins + `
	WHERE e.id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByBiometricID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByBiometricID(ctx context.Context, biometricID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT` + employeeColumns + employeeJoins + `
	WHERE e.active = TRUE
	  AND (e.rfid_uid = $1 OR e.fingerprint_id = $1)
	LIMIT 1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, biometricID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by biometric id: %w", err)
	}

	return emp, nil
}

// ListEligible implements employee.EmployeeRepository.
func (e *employeeRepository) ListEligible(ctx context.Context, filter employee.EligibilityFilter, asOf time.Time) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	baseWhere := "(e.hire_date IS NULL OR e.hire_date <= $1) AND (e.termination_date IS NULL OR e.termination_date >= $1)"
	args := []interface{}{asOf}
	argIdx := 2

	if !filter.IncludeInactive {
		baseWhere += " AND e.active = TRUE"
	}
	if filter.RequireBiometric {
		baseWhere += " AND (NULLIF(e.rfid_uid, '') IS NOT NULL OR NULLIF(e.fingerprint_id, '') IS NOT NULL)"
	}
	if filter.PlantID != nil {
		baseWhere += fmt.Sprintf(" AND e.plant_id = $%d", argIdx)
		args = append(args, *filter.PlantID)
		argIdx++
	}
	if filter.DepartmentID != nil {
		baseWhere += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.GroupID != nil {
		baseWhere += fmt.Sprintf(" AND e.group_id = $%d", argIdx)
		args = append(args, *filter.GroupID)
		argIdx++
	}

	query := `SELECT` + employeeColumns + employeeJoins + `
	WHERE ` + baseWhere + `
	ORDER BY e.id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list eligible employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListWithoutBiometric implements employee.EmployeeRepository.
func (e *employeeRepository) ListWithoutBiometric(ctx context.Context, filter employee.EligibilityFilter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	baseWhere := "NULLIF(e.rfid_uid, '') IS NULL AND NULLIF(e.fingerprint_id, '') IS NULL"
	args := []interface{}{}
	argIdx := 1

	if !filter.IncludeInactive {
		baseWhere += " AND e.active = TRUE"
	}
	if filter.PlantID != nil {
		baseWhere += fmt.Sprintf(" AND e.plant_id = $%d", argIdx)
		args = append(args, *filter.PlantID)
		argIdx++
	}
	if filter.DepartmentID != nil {
		baseWhere += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.GroupID != nil {
		baseWhere += fmt.Sprintf(" AND e.group_id = $%d", argIdx)
		args = append(args, *filter.GroupID)
		argIdx++
	}

	query := `SELECT` + employeeColumns + employeeJoins + `
	WHERE ` + baseWhere + `
	ORDER BY e.id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees without biometric enrollment: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
