package group

import "context"

type GroupRepository interface {
	GetByID(ctx context.Context, id int64) (Group, error)
}
