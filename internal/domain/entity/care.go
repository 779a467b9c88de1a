package entity

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// Care action types. Reminders accept watering, fertilizing, pruning, sunlight and other;
// logs accept watering, fertilizing, pruning, repotting, cleaning and other.
const (
	CareTypeWatering    = "watering"
	CareTypeFertilizing = "fertilizing"
	CareTypePruning     = "pruning"
	CareTypeSunlight    = "sunlight"
	CareTypeRepotting   = "repotting"
	CareTypeCleaning    = "cleaning"
	CareTypeOther       = "other"
)

// CareReminder is a recurring care schedule for one plant.
// (PlantID, Type, NextDue) is unique and fixed once the reminder exists.
type CareReminder struct {
	ID        uuid.UUID  `json:"id"`
	PlantID   uuid.UUID  `json:"plantId"`
	Type      string     `json:"type"`
	Frequency int        `json:"frequency"` // Days between occurrences, 1..99.
	LastDone  civil.Date `json:"lastDone"`
	NextDue   civil.Date `json:"nextDue"`
	Notes     string     `json:"notes"`
	IsActive  bool       `json:"isActive"`
	Plant     *Plant     `json:"plant,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CareLog records one care action performed on a plant.
// (PlantID, Type, Date) is unique and fixed once the log exists.
type CareLog struct {
	ID        uuid.UUID  `json:"id"`
	PlantID   uuid.UUID  `json:"plantId"`
	Type      string     `json:"type"`
	Date      civil.Date `json:"date"`
	Notes     string     `json:"notes"`
	Photo     string     `json:"photo,omitempty"`
	Success   bool       `json:"success"`
	Plant     *Plant     `json:"plant,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
