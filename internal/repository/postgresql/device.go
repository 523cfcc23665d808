package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/plantsec/hr-access-backend-go/internal/domain/master/device"
	"github.com/plantsec/hr-access-backend-go/internal/pkg/database"
)

type deviceRepository struct {
	db *database.DB
}

// GetByID implements device.DeviceRepository.
func (d *deviceRepository) GetByID(ctx context.Context, id int64) (device.Device, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT id, name, plant_id, api_key_hash, active, created_at, updated_at
		FROM devices
		WHERE id = $1
	`

	var dev device.Device
	err := q.QueryRow(ctx, query, id).Scan(
		&dev.ID, &dev.Name, &dev.PlantID, &dev.APIKeyHash, &dev.Active, &dev.CreatedAt, &dev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return device.Device{}, device.ErrDeviceNotFound
		}
		return device.Device{}, fmt.Errorf("failed to get device: %w", err)
	}

	return dev, nil
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepository{db: db}
}
