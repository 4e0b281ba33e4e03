package models

// Stage is an ordered column of tasks within one workflow.
// Order is the dense, zero-based rank of the stage inside its workflow.
type Stage struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	TaskIDs    []string `json:"taskIds"`
	WorkflowID string   `json:"workflowId"`
	Order      int      `json:"order"`
}

// Clone returns a deep copy of the stage.
func (s *Stage) Clone() *Stage {
	if s == nil {
		return nil
	}
	c := *s
	c.TaskIDs = cloneIDs(s.TaskIDs)
	return &c
}

// GetID returns the stage id.
func (s *Stage) GetID() string {
	return s.ID
}
