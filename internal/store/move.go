package store

import (
	"context"
	"slices"

	"github.com/thenoetrevino/flowmaster/internal/events"
)

// MoveTask moves a task from srcStageID to destStageID at index. The index is
// clamped to [0, len(dest)] after the task has been removed from the source,
// so a same-stage move is a reorder and moving a task to its own index leaves
// the list unchanged. The task's WorkflowID is re-derived from the
// destination stage.
//
// Nothing happens unless both stages exist and the task is currently listed
// in the source stage.
func (s *Store) MoveTask(ctx context.Context, srcStageID, destStageID, taskID string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		s.logger.Debug("move task: not found", "task_id", taskID)
		return false
	}
	src, ok := s.stages[srcStageID]
	if !ok {
		s.logger.Debug("move task: source stage not found", "stage_id", srcStageID)
		return false
	}
	dest, ok := s.stages[destStageID]
	if !ok {
		s.logger.Debug("move task: destination stage not found", "stage_id", destStageID)
		return false
	}
	pos := slices.Index(src.TaskIDs, taskID)
	if pos < 0 {
		s.logger.Debug("move task: task not in source stage",
			"task_id", taskID,
			"stage_id", srcStageID)
		return false
	}

	src.TaskIDs = slices.Delete(src.TaskIDs, pos, pos+1)
	index = clamp(index, 0, len(dest.TaskIDs))
	dest.TaskIDs = slices.Insert(dest.TaskIDs, index, taskID)

	prevWorkflowID := task.WorkflowID
	now := s.stamp()
	task.StageID = dest.ID
	task.WorkflowID = dest.WorkflowID
	task.UpdatedAt = now

	s.touchWorkflow(dest.WorkflowID, now)
	if prevWorkflowID != dest.WorkflowID {
		s.touchWorkflow(prevWorkflowID, now)
	}

	s.commit(ctx, events.EventTaskMoved, dest.WorkflowID, taskID)
	return true
}

// MoveStage moves the stage at position from to position to within the
// workflow and renumbers every stage's Order. Both positions are clamped to
// the workflow's bounds.
func (s *Store) MoveStage(ctx context.Context, workflowID string, from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	wf, ok := s.workflows[workflowID]
	if !ok {
		s.logger.Debug("move stage: workflow not found", "workflow_id", workflowID)
		return false
	}
	n := len(wf.StageIDs)
	if n == 0 {
		return false
	}

	from = clamp(from, 0, n-1)
	to = clamp(to, 0, n-1)

	stageIDs := slices.Clone(wf.StageIDs)
	moved := stageIDs[from]
	stageIDs = slices.Delete(stageIDs, from, from+1)
	stageIDs = slices.Insert(stageIDs, to, moved)

	wf.StageIDs = stageIDs
	s.renumberStages(wf)
	wf.UpdatedAt = s.stamp()

	s.commit(ctx, events.EventStageMoved, workflowID, moved)
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
