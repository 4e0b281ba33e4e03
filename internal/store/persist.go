package store

import "github.com/thenoetrevino/flowmaster/internal/models"

// persistedState is the JSON layout mirrored under models.WorkflowStorageKey.
// UI flags and drag previews are never part of it.
type persistedState struct {
	Workflows        map[string]*models.Workflow `json:"workflows"`
	Stages           map[string]*models.Stage    `json:"stages"`
	Tasks            map[string]*models.Task     `json:"tasks"`
	ActiveWorkflowID *string                     `json:"activeWorkflowId"`
	Users            map[string]*models.User     `json:"users"`
}

// persisted captures the durable state. Callers hold s.mu and must finish
// encoding before releasing it.
func (s *Store) persisted() persistedState {
	state := persistedState{
		Workflows: s.workflows,
		Stages:    s.stages,
		Tasks:     s.tasks,
		Users:     s.users,
	}
	if s.activeWorkflowID != "" {
		active := s.activeWorkflowID
		state.ActiveWorkflowID = &active
	}
	return state
}

func (p persistedState) toBoard() board {
	b := newBoard()
	for id, wf := range p.Workflows {
		if wf == nil {
			continue
		}
		if wf.StageIDs == nil {
			wf.StageIDs = []string{}
		}
		b.workflows[id] = wf
	}
	for id, st := range p.Stages {
		if st == nil {
			continue
		}
		if st.TaskIDs == nil {
			st.TaskIDs = []string{}
		}
		b.stages[id] = st
	}
	for id, t := range p.Tasks {
		if t == nil {
			continue
		}
		if t.AssignedUsers == nil {
			t.AssignedUsers = []string{}
		}
		if t.Attachments == nil {
			t.Attachments = []models.FileAttachment{}
		}
		b.tasks[id] = t
	}
	for id, u := range p.Users {
		if u != nil {
			b.users[id] = u
		}
	}
	if p.ActiveWorkflowID != nil {
		b.activeWorkflowID = *p.ActiveWorkflowID
	}
	return b
}
