package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Plant health states.
const (
	HealthHealthy   = "healthy"
	HealthNeedsCare = "needs_care"
	HealthSick      = "sick"
)

// Plant is a single houseplant registered by the user.
type Plant struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	SpeciesID    uuid.UUID  `json:"speciesId"`
	LocationID   uuid.UUID  `json:"locationId"`
	PurchaseDate civil.Date `json:"purchaseDate"` // Purchase or planting date.
	Notes        string     `json:"notes"`
	Photo        string     `json:"photo,omitempty"`
	HealthStatus string     `json:"healthStatus"`
	Species      *Species   `json:"species,omitempty"`  // Populated on expanded reads.
	Location     *Location  `json:"location,omitempty"` // Populated on expanded reads.
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
