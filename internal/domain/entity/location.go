package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location types.
const (
	LocationTypeIndoor  = "indoor"
	LocationTypeOutdoor = "outdoor"
	LocationTypeBalcony = "balcony"
	LocationTypeGarden  = "garden"
	LocationTypeTerrace = "terrace"
)

// Sunlight exposure of a location.
const (
	SunlightFull    = "full"
	SunlightPartial = "partial"
	SunlightShade   = "shade"
)

// Location is a physical place where plants are kept.
type Location struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Sunlight    string    `json:"sunlight"`
	Humidity    string    `json:"humidity"` // low | medium | high
	Description string    `json:"description"`
	Photo       string    `json:"photo,omitempty"` // Optional URL.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
