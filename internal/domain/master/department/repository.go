package department

import "context"

type DepartmentRepository interface {
	GetByID(ctx context.Context, id int64) (Department, error)
}
