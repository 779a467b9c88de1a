// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Light, water and care classifications used by the species catalog.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"

	CareLevelEasy     = "easy"
	CareLevelModerate = "moderate"
	CareLevelHard     = "hard"
)

// Species is a catalog entry describing a kind of plant.
type Species struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`       // Scientific name, unique across the catalog.
	CommonName       string    `json:"commonName"` // Everyday name.
	Description      string    `json:"description"`
	CareInstructions string    `json:"careInstructions"`
	IdealConditions  string    `json:"idealConditions"`
	Photo            string    `json:"photo,omitempty"` // Optional image data-URI.
	LightRequirement string    `json:"lightRequirement,omitempty"`
	WaterFrequency   string    `json:"waterFrequency,omitempty"`
	CareLevel        string    `json:"careLevel,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
