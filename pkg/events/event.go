package events

import "time"

// Relay session event types.
const (
	TypeSessionStarted  = "SESSION_STARTED"
	TypeStepCompleted   = "STEP_COMPLETED"
	TypeSessionFinished = "SESSION_FINISHED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_STARTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used by the relay publisher.
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

// SessionEventMessage is the wire form consumers decode from the bus. Data
// mirrors the publisher's payload keys.
type SessionEventMessage struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// SessionID extracts the session id from the payload, empty when absent.
func (m SessionEventMessage) SessionID() string {
	if v, ok := m.Data["session_id"].(string); ok {
		return v
	}
	return ""
}
