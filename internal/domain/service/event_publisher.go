package service

import (
	"context"
)

// CareEvent describes a care action that downstream consumers (reminder digests,
// dashboards) may react to. Dates use the YYYY-MM-DD wire format.
type CareEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventType string `json:"event_type"`
	EntityID  string `json:"entity_id"` // Care log or reminder ID.
	PlantID   string `json:"plant_id"`
	PlantName string `json:"plant_name,omitempty"`
	CareType  string `json:"care_type"`
	Date      string `json:"date"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCareEvent publishes a care event for async processing
	PublishCareEvent(ctx context.Context, event *CareEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
