package group

import "time"

// Group is a work crew. Access zones are granted per group, so the directory
// keys shift membership off it as well.
type Group struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
