package store

import (
	"cmp"
	"slices"

	"github.com/thenoetrevino/flowmaster/internal/models"
)

// Snapshot is a deep copy of the store's durable state.
type Snapshot struct {
	Workflows        map[string]*models.Workflow
	Stages           map[string]*models.Stage
	Tasks            map[string]*models.Task
	Users            map[string]*models.User
	ActiveWorkflowID string
}

// Snapshot returns a deep copy of everything the store persists.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Workflows:        make(map[string]*models.Workflow, len(s.workflows)),
		Stages:           make(map[string]*models.Stage, len(s.stages)),
		Tasks:            make(map[string]*models.Task, len(s.tasks)),
		Users:            make(map[string]*models.User, len(s.users)),
		ActiveWorkflowID: s.activeWorkflowID,
	}
	for id, wf := range s.workflows {
		snap.Workflows[id] = wf.Clone()
	}
	for id, st := range s.stages {
		snap.Stages[id] = st.Clone()
	}
	for id, t := range s.tasks {
		snap.Tasks[id] = t.Clone()
	}
	for id, u := range s.users {
		user := *u
		snap.Users[id] = &user
	}
	return snap
}

// Workflows returns every workflow ordered by creation time, then id.
func (s *Store) Workflows() []*models.Workflow {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Workflow, 0, len(s.workflows))
	for _, wf := range s.workflows {
		out = append(out, wf.Clone())
	}
	slices.SortFunc(out, func(a, b *models.Workflow) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Workflow returns a copy of one workflow.
func (s *Store) Workflow(id string) (*models.Workflow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wf, ok := s.workflows[id]
	if !ok {
		return nil, false
	}
	return wf.Clone(), true
}

// Stage returns a copy of one stage.
func (s *Store) Stage(id string) (*models.Stage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stages[id]
	if !ok {
		return nil, false
	}
	return st.Clone(), true
}

// Task returns a copy of one task.
func (s *Store) Task(id string) (*models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, false
	}
	return t.Clone(), true
}

// WorkflowStages returns the workflow's stages sorted by Order.
func (s *Store) WorkflowStages(workflowID string) []*models.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workflowStages(workflowID)
}

// StageTasks returns the stage's tasks in list order.
func (s *Store) StageTasks(stageID string) []*models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stages[stageID]
	if !ok {
		return []*models.Task{}
	}
	return s.stageTasks(st)
}

// ActiveWorkflowID returns the selected workflow id, or "" when none is.
func (s *Store) ActiveWorkflowID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeWorkflowID
}

// ActiveWorkflowStages returns the active workflow's stages sorted by Order.
func (s *Store) ActiveWorkflowStages() []*models.Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.workflowStages(s.activeWorkflowID)
}

// ActiveWorkflowTasks returns every task of the active workflow in board
// order: by stage order, then by position within the stage.
func (s *Store) ActiveWorkflowTasks() []*models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []*models.Task{}
	for _, st := range s.workflowStages(s.activeWorkflowID) {
		for _, taskID := range st.TaskIDs {
			if t, ok := s.tasks[taskID]; ok && t.WorkflowID == s.activeWorkflowID {
				out = append(out, t.Clone())
			}
		}
	}
	return out
}

// Users returns every user ordered by name, then id.
func (s *Store) Users() []*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		user := *u
		out = append(out, &user)
	}
	slices.SortFunc(out, func(a, b *models.User) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// User returns a copy of one user.
func (s *Store) User(id string) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	user := *u
	return &user, true
}

// workflowStages returns cloned stages of a workflow by Order. Callers hold s.mu.
func (s *Store) workflowStages(workflowID string) []*models.Stage {
	out := []*models.Stage{}
	wf, ok := s.workflows[workflowID]
	if !ok {
		return out
	}
	for _, stageID := range wf.StageIDs {
		if st, ok := s.stages[stageID]; ok {
			out = append(out, st.Clone())
		}
	}
	slices.SortStableFunc(out, func(a, b *models.Stage) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return out
}

// stageTasks returns cloned tasks of a stage in list order. Callers hold s.mu.
func (s *Store) stageTasks(st *models.Stage) []*models.Task {
	out := make([]*models.Task, 0, len(st.TaskIDs))
	for _, taskID := range st.TaskIDs {
		if t, ok := s.tasks[taskID]; ok {
			out = append(out, t.Clone())
		}
	}
	return out
}
