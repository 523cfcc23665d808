package department

import "time"

type Department struct {
	ID        int64
	Name      string
	PlantID   *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
