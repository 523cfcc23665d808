package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/plant"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/database"
)

type plantRepository struct {
	db *database.DB
}

// GetByID implements plant.PlantRepository.
func (p *plantRepository) GetByID(ctx context.Context, id int64) (plant.Plant, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT id, name, location, created_at, updated_at
		FROM plants
		WHERE id = $1
	`

	var pl plant.Plant
	err := q.QueryRow(ctx, query, id).Scan(
		&pl.ID, &pl.Name, &pl.Location, &pl.CreatedAt, &pl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return plant.Plant{}, plant.ErrPlantNotFound
		}
		return plant.Plant{}, fmt.Errorf("failed to get plant: %w", err)
	}

	return pl, nil
}

func NewPlantRepository(db *database.DB) plant.PlantRepository {
	return &plantRepository{db: db}
}
