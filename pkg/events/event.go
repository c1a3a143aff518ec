package events

import "time"

// Event defines the contract for all audit events published to the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g., "WORKSPACE_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
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

// Audit event types emitted by the workspace platform.
const (
	TypeWorkspaceCreated = "WORKSPACE_CREATED"
	TypeWorkspaceDeleted = "WORKSPACE_DELETED"
	TypeMemberInvited    = "MEMBER_INVITED"
	TypeMemberRemoved    = "MEMBER_REMOVED"
	TypeMemberPromoted   = "MEMBER_PROMOTED"
	TypePartitionOrphan  = "PARTITION_ORPHANED"
)

// New builds a BaseEvent stamped now.
func New(eventType string, data map[string]interface{}) Event {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
