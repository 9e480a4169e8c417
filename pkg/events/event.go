package events

import "time"

// Topic carrying assistant pipeline audit events on the in-process bus.
const TopicAssistantAudit = "ASSISTANT_AUDIT"

// Event codes.
const (
	TypeDataExtracted    = "DATA_EXTRACTED"
	TypeChangesStaged    = "CHANGES_STAGED"
	TypeChangesApplied   = "CHANGES_APPLIED"
	TypeChangesDiscarded = "CHANGES_DISCARDED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHANGES_APPLIED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the concrete event shape published on the audit topic.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewAuditEvent builds an audit event stamped with the current time.
func NewAuditEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
