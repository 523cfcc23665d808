package device

import "time"

// Device is an RFID/fingerprint reader installed at a plant. Devices
// authenticate to the ingestion endpoint with a per-device API key; only the
// bcrypt hash is stored.
type Device struct {
	ID         int64
	Name       string
	PlantID    *int64
	APIKeyHash string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
