package models

import "time"

// Task is a unit of work belonging to exactly one stage.
// WorkflowID is a denormalized copy of the owning stage's workflow.
type Task struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	StartDate     string           `json:"startDate"` // DD/MM/YY, parts may be empty
	DueDate       string           `json:"dueDate"`   // DD/MM/YY, parts may be empty
	Description   string           `json:"description"`
	StageID       string           `json:"stageId"`
	WorkflowID    string           `json:"workflowId"`
	AssignedUsers []string         `json:"assignedUsers"`
	Attachments   []FileAttachment `json:"attachments"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// FileAttachment describes a file attached to a task. Only the record is kept,
// the file itself lives wherever URL points.
type FileAttachment struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	c.AssignedUsers = cloneIDs(t.AssignedUsers)
	c.Attachments = make([]FileAttachment, len(t.Attachments))
	copy(c.Attachments, t.Attachments)
	return &c
}

// GetID returns the task id.
func (t *Task) GetID() string {
	return t.ID
}
