package store

// UIState holds the board's transient interface flags. It is never persisted.
type UIState struct {
	AddingWorkflow  bool
	EditingTaskID   string
	AddModalStageID string
	EditMode        bool
}

// UI returns a copy of the transient interface flags.
func (s *Store) UI() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ui
}

// SetAddingWorkflow toggles the "adding a workflow" flag.
func (s *Store) SetAddingWorkflow(adding bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.AddingWorkflow = adding
}

// SetEditingTask marks a task as being edited. An empty or unknown id clears it.
func (s *Store) SetEditingTask(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[taskID]; !ok {
		taskID = ""
	}
	s.ui.EditingTaskID = taskID
}

// ShowAddModal opens the add-task modal for a stage.
func (s *Store) ShowAddModal(stageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stages[stageID]; !ok {
		s.logger.Debug("show add modal: stage not found", "stage_id", stageID)
		return false
	}
	s.ui.AddModalStageID = stageID
	return true
}

// CloseAddModal closes the add-task modal.
func (s *Store) CloseAddModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.AddModalStageID = ""
}

// ToggleEditMode flips edit mode and returns the new value.
func (s *Store) ToggleEditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ui.EditMode = !s.ui.EditMode
	return s.ui.EditMode
}
