package store

import (
	"context"
	"strings"

	"github.com/thenoetrevino/flowmaster/internal/events"
	"github.com/thenoetrevino/flowmaster/internal/models"
)

// AddWorkflow creates a workflow with the default stages and makes it the
// active workflow. The name is trimmed; an empty name is accepted.
func (s *Store) AddWorkflow(ctx context.Context, name string) *models.Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp()
	wf := &models.Workflow{
		ID:        s.newID(),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
		StageIDs:  make([]string, 0, len(models.DefaultStageTitles)),
	}

	for i, title := range models.DefaultStageTitles {
		st := &models.Stage{
			ID:         s.newID(),
			Title:      title,
			TaskIDs:    []string{},
			WorkflowID: wf.ID,
			Order:      i,
		}
		s.stages[st.ID] = st
		wf.StageIDs = append(wf.StageIDs, st.ID)
	}

	s.workflows[wf.ID] = wf
	s.activeWorkflowID = wf.ID
	s.ui.AddingWorkflow = false

	s.commit(ctx, events.EventWorkflowChanged, wf.ID, wf.ID)
	return wf.Clone()
}

// DeleteWorkflow removes the workflow, all of its stages and all of their
// tasks. The active workflow is cleared if it was the deleted one.
func (s *Store) DeleteWorkflow(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	wf, ok := s.workflows[id]
	if !ok {
		s.logger.Debug("delete workflow: not found", "workflow_id", id)
		return false
	}

	for _, stageID := range wf.StageIDs {
		s.dropStage(stageID)
	}
	delete(s.workflows, id)

	if s.activeWorkflowID == id {
		s.activeWorkflowID = ""
	}

	s.commit(ctx, events.EventWorkflowDeleted, id, id)
	return true
}

// UpdateWorkflow renames a workflow. The name is trimmed.
func (s *Store) UpdateWorkflow(ctx context.Context, id, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	wf, ok := s.workflows[id]
	if !ok {
		s.logger.Debug("update workflow: not found", "workflow_id", id)
		return false
	}

	wf.Name = strings.TrimSpace(name)
	wf.UpdatedAt = s.stamp()

	s.commit(ctx, events.EventWorkflowChanged, id, id)
	return true
}

// SetActiveWorkflow selects the workflow the board views read from.
// An empty id clears the selection; an unknown id is ignored.
func (s *Store) SetActiveWorkflow(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if _, ok := s.workflows[id]; !ok {
			s.logger.Debug("set active workflow: not found", "workflow_id", id)
			return false
		}
	}

	s.activeWorkflowID = id
	s.commit(ctx, events.EventWorkflowChanged, id, id)
	return true
}

// dropStage deletes a stage and its tasks without touching the owning
// workflow's StageIDs. Callers hold s.mu.
func (s *Store) dropStage(stageID string) {
	st, ok := s.stages[stageID]
	if !ok {
		return
	}
	for _, taskID := range st.TaskIDs {
		s.dropTask(taskID)
	}
	delete(s.stages, stageID)
	if s.ui.AddModalStageID == stageID {
		s.ui.AddModalStageID = ""
	}
}

// dropTask deletes a task record without touching its stage. Callers hold s.mu.
func (s *Store) dropTask(taskID string) {
	delete(s.tasks, taskID)
	if s.ui.EditingTaskID == taskID {
		s.ui.EditingTaskID = ""
	}
}
