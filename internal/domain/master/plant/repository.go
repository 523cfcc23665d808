package plant

import "context"

type PlantRepository interface {
	GetByID(ctx context.Context, id int64) (Plant, error)
}
