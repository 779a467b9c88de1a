// Package model contains the GORM models of the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpeciesModel is the GORM-specific struct for the 'species' table.
type SpeciesModel struct {
	ID               uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name             string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	CommonName       string    `gorm:"type:varchar(100);not null"`
	Description      string    `gorm:"type:varchar(500);not null"`
	CareInstructions string    `gorm:"type:varchar(500);not null"`
	IdealConditions  string    `gorm:"type:varchar(500);not null"`
	Photo            string    `gorm:"type:text"`
	LightRequirement string    `gorm:"type:varchar(10);index"`
	WaterFrequency   string    `gorm:"type:varchar(10);index"`
	CareLevel        string    `gorm:"type:varchar(10);index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpeciesModel) TableName() string {
	return "species"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *SpeciesModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
