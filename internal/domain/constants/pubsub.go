package constants

// Pub/Sub provider names accepted in config.pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Care event types carried in CareEvent.EventType and the "event_type" message attribute.
const (
	EventCareLogCreated        = "care_log.created"
	EventCareReminderCompleted = "care_reminder.completed"
)
