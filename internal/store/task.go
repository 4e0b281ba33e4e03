package store

import (
	"context"
	"slices"

	"github.com/thenoetrevino/flowmaster/internal/events"
	"github.com/thenoetrevino/flowmaster/internal/models"
)

// CreateTaskRequest encapsulates data for creating a task
type CreateTaskRequest struct {
	Title         string
	Description   string
	StartDate     string // DD/MM/YY
	DueDate       string // DD/MM/YY
	AssignedUsers []string
	Attachments   []models.FileAttachment
}

// TaskUpdate lists the task fields to overwrite. Nil fields are left alone.
// A task's stage only changes through MoveTask.
type TaskUpdate struct {
	Title         *string
	Description   *string
	StartDate     *string
	DueDate       *string
	AssignedUsers *[]string
	Attachments   *[]models.FileAttachment
}

// AddTask appends a new task to a stage.
func (s *Store) AddTask(ctx context.Context, stageID string, req CreateTaskRequest) (*models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stages[stageID]
	if !ok {
		s.logger.Debug("add task: stage not found", "stage_id", stageID)
		return nil, false
	}

	now := s.stamp()
	task := &models.Task{
		ID:            s.newID(),
		Title:         req.Title,
		StartDate:     req.StartDate,
		DueDate:       req.DueDate,
		Description:   req.Description,
		StageID:       stageID,
		WorkflowID:    st.WorkflowID,
		AssignedUsers: append([]string{}, req.AssignedUsers...),
		Attachments:   append([]models.FileAttachment{}, req.Attachments...),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.tasks[task.ID] = task
	st.TaskIDs = append(st.TaskIDs, task.ID)
	s.touchWorkflow(st.WorkflowID, now)

	s.commit(ctx, events.EventTaskChanged, st.WorkflowID, task.ID)
	return task.Clone(), true
}

// UpdateTask shallow-merges the set fields of upd into the task. UpdatedAt is
// re-stamped on the task and its workflow even when nothing else changes.
func (s *Store) UpdateTask(ctx context.Context, id string, upd TaskUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		s.logger.Debug("update task: not found", "task_id", id)
		return false
	}

	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.StartDate != nil {
		task.StartDate = *upd.StartDate
	}
	if upd.DueDate != nil {
		task.DueDate = *upd.DueDate
	}
	if upd.AssignedUsers != nil {
		task.AssignedUsers = append([]string{}, (*upd.AssignedUsers)...)
	}
	if upd.Attachments != nil {
		task.Attachments = append([]models.FileAttachment{}, (*upd.Attachments)...)
	}

	now := s.stamp()
	task.UpdatedAt = now
	s.touchWorkflow(task.WorkflowID, now)

	s.commit(ctx, events.EventTaskChanged, task.WorkflowID, id)
	return true
}

// DeleteTask removes a task from its stage and the task mapping.
func (s *Store) DeleteTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		s.logger.Debug("delete task: not found", "task_id", id)
		return false
	}

	if st, ok := s.stages[task.StageID]; ok {
		st.TaskIDs = slices.DeleteFunc(st.TaskIDs, func(taskID string) bool {
			return taskID == id
		})
	}
	s.dropTask(id)
	s.touchWorkflow(task.WorkflowID, s.stamp())

	s.commit(ctx, events.EventTaskChanged, task.WorkflowID, id)
	return true
}
