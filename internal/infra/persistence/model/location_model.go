package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID          uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Type        string    `gorm:"type:varchar(20);not null;index"`
	Sunlight    string    `gorm:"type:varchar(10);not null"`
	Humidity    string    `gorm:"type:varchar(10);not null"`
	Description string    `gorm:"type:varchar(500);not null"`
	Photo       string    `gorm:"type:varchar(2048)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *LocationModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}
