package models

import "time"

// Workflow is the top-level board. It owns its stages by reference: StageIDs
// order is the display order and always matches the stages' Order fields.
type Workflow struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	StageIDs  []string  `json:"stageIds"`
}

// Clone returns a deep copy of the workflow.
func (w *Workflow) Clone() *Workflow {
	if w == nil {
		return nil
	}
	c := *w
	c.StageIDs = cloneIDs(w.StageIDs)
	return &c
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// GetID returns the workflow id.
func (w *Workflow) GetID() string {
	return w.ID
}
