package device

import "context"

type DeviceRepository interface {
	GetByID(ctx context.Context, id int64) (Device, error)
}
