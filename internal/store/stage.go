package store

import (
	"context"
	"slices"
	"strings"

	"github.com/thenoetrevino/flowmaster/internal/events"
	"github.com/thenoetrevino/flowmaster/internal/models"
)

// AddStage appends a new, empty stage to a workflow. An omitted ("") title
// becomes models.DefaultNewStageTitle; anything else is trimmed and kept, even
// when that leaves it empty.
func (s *Store) AddStage(ctx context.Context, workflowID, title string) (*models.Stage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wf, ok := s.workflows[workflowID]
	if !ok {
		s.logger.Debug("add stage: workflow not found", "workflow_id", workflowID)
		return nil, false
	}

	if title == "" {
		title = models.DefaultNewStageTitle
	}
	title = strings.TrimSpace(title)

	st := &models.Stage{
		ID:         s.newID(),
		Title:      title,
		TaskIDs:    []string{},
		WorkflowID: workflowID,
		Order:      len(wf.StageIDs),
	}
	s.stages[st.ID] = st
	wf.StageIDs = append(wf.StageIDs, st.ID)
	wf.UpdatedAt = s.stamp()

	s.commit(ctx, events.EventStageChanged, workflowID, st.ID)
	return st.Clone(), true
}

// DeleteStage removes a stage and its tasks, then renumbers the remaining
// stages of the workflow by their current relative order.
func (s *Store) DeleteStage(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stages[id]
	if !ok {
		s.logger.Debug("delete stage: not found", "stage_id", id)
		return false
	}
	workflowID := st.WorkflowID

	s.dropStage(id)

	if wf, ok := s.workflows[workflowID]; ok {
		wf.StageIDs = slices.DeleteFunc(wf.StageIDs, func(stageID string) bool {
			return stageID == id
		})
		s.renumberStages(wf)
		wf.UpdatedAt = s.stamp()
	}

	s.commit(ctx, events.EventStageChanged, workflowID, id)
	return true
}

// UpdateStage renames a stage. The title is trimmed.
func (s *Store) UpdateStage(ctx context.Context, id, title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stages[id]
	if !ok {
		s.logger.Debug("update stage: not found", "stage_id", id)
		return false
	}

	st.Title = strings.TrimSpace(title)
	s.touchWorkflow(st.WorkflowID, s.stamp())

	s.commit(ctx, events.EventStageChanged, st.WorkflowID, id)
	return true
}

// renumberStages makes each stage's Order equal its position in the
// workflow's StageIDs. Callers hold s.mu.
func (s *Store) renumberStages(wf *models.Workflow) {
	for i, stageID := range wf.StageIDs {
		if st, ok := s.stages[stageID]; ok {
			st.Order = i
		}
	}
}
