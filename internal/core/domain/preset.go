package domain

import (
	"time"

	"github.com/google/uuid"
)

// Preset is a named, reusable set of rewrite parameters.
type Preset struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Description string
	Intensity   int
	DeepThink   bool
	Cycles      int
}
