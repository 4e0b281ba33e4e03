package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventWorkflowChanged EventType = "workflow_changed"
	EventWorkflowDeleted EventType = "workflow_deleted"
	EventStageChanged    EventType = "stage_changed"
	EventStageMoved      EventType = "stage_moved"
	EventTaskChanged     EventType = "task_changed"
	EventTaskMoved       EventType = "task_moved"
	EventUsersChanged    EventType = "users_changed"
)

// Event is a change notification emitted after a store mutation commits.
type Event struct {
	Type       EventType
	WorkflowID string    // Workflow affected by the change, empty for global changes
	EntityID   string    // Workflow, stage or task that was mutated
	Timestamp  time.Time // When the change was committed
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
