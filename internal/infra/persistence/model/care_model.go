package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CareReminderModel is the GORM-specific struct for the 'care_reminders' table.
// Dates are stored as YYYY-MM-DD so that comparisons never depend on a timezone.
type CareReminderModel struct {
	ID        uuid.UUID   `gorm:"type:char(36);primaryKey"`
	PlantID   uuid.UUID   `gorm:"type:char(36);not null;uniqueIndex:idx_care_reminders_key,priority:1"`
	Type      string      `gorm:"type:varchar(20);not null;uniqueIndex:idx_care_reminders_key,priority:2"`
	NextDue   string      `gorm:"type:varchar(10);not null;uniqueIndex:idx_care_reminders_key,priority:3"`
	Frequency int         `gorm:"not null"`
	LastDone  string      `gorm:"type:varchar(10);not null;index"`
	Notes     string      `gorm:"type:varchar(500);not null"`
	IsActive  bool        `gorm:"not null;default:true"`
	Plant     *PlantModel `gorm:"foreignKey:PlantID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CareReminderModel) TableName() string {
	return "care_reminders"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *CareReminderModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// CareLogModel is the GORM-specific struct for the 'care_logs' table.
type CareLogModel struct {
	ID        uuid.UUID   `gorm:"type:char(36);primaryKey"`
	PlantID   uuid.UUID   `gorm:"type:char(36);not null;uniqueIndex:idx_care_logs_key,priority:1"`
	Type      string      `gorm:"type:varchar(20);not null;uniqueIndex:idx_care_logs_key,priority:2"`
	Date      string      `gorm:"column:care_date;type:varchar(10);not null;uniqueIndex:idx_care_logs_key,priority:3"`
	Notes     string      `gorm:"type:varchar(500);not null"`
	Photo     string      `gorm:"type:text"`
	Success   bool        `gorm:"not null"`
	Plant     *PlantModel `gorm:"foreignKey:PlantID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CareLogModel) TableName() string {
	return "care_logs"
}

// BeforeCreate assigns a UUID when the caller did not.
func (m *CareLogModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	return nil
}

// All lists every model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&SpeciesModel{},
		&LocationModel{},
		&PlantModel{},
		&CareReminderModel{},
		&CareLogModel{},
	}
}
