package plant

import "time"

type Plant struct {
	ID        int64
	Name      string
	Location  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
