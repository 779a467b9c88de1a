package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlantModel is the GORM-specific struct for the 'plants' table.
// Species and locations cannot be deleted while a plant references them.
type PlantModel struct {
	ID           uuid.UUID      `gorm:"type:char(36);primaryKey"`
	Name         string         `gorm:"type:varchar(100);not null;index"`
	SpeciesID    uuid.UUID      `gorm:"type:char(36);not null;index"`
	LocationID   uuid.UUID      `gorm:"type:char(36);not null;index"`
	PurchaseDate string         `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	Notes        string         `gorm:"type:varchar(500);not null"`
	Photo        string         `gorm:"type:text"`
	HealthStatus string         `gorm:"type:varchar(20);not null;default:healthy;index"`
	Species      *SpeciesModel  `gorm:"foreignKey:SpeciesID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Location     *LocationModel `gorm:"foreignKey:LocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlantModel) TableName() string {
	return "plants"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *PlantModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
