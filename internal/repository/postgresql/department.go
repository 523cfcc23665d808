package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/department"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

// GetByID implements department.DepartmentRepository.
func (d *departmentRepository) GetByID(ctx context.Context, id int64) (department.Department, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, plant_id, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var dep department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dep.ID, &dep.Name, &dep.PlantID, &dep.CreatedAt, &dep.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return dep, nil
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}
