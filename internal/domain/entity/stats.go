package entity

import "github.com/google/uuid"

// ValueCount is one bucket of a grouped count.
type ValueCount struct {
	Value string `json:"value"`
	Count int64  `json:"count"`
}

// CareTypeCount is one bucket of the care log statistics.
type CareTypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// LocationStat counts the plants kept in one location.
type LocationStat struct {
	LocationID uuid.UUID `json:"locationId"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	PlantCount int64     `json:"plantCount"`
}
