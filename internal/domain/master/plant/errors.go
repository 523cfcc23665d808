package plant

import "errors"

var (
	ErrPlantNotFound = errors.New("plant not found")
)
