package store

import (
	"errors"
	"fmt"
)

// Validate checks the store's referential and ordering invariants and returns
// every violation found, joined. A nil result means the state is consistent.
func (s *Store) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.validate()
}

func (b *board) validate() error {
	var errs []error

	stageRefs := make(map[string]int, len(b.stages))
	for wfID, wf := range b.workflows {
		if wf.ID != wfID {
			errs = append(errs, fmt.Errorf("%w: workflow key %s holds id %s", ErrBackReference, wfID, wf.ID))
		}
		for i, stageID := range wf.StageIDs {
			stageRefs[stageID]++
			st, ok := b.stages[stageID]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: workflow %s -> stage %s", ErrMissingStage, wfID, stageID))
				continue
			}
			if st.WorkflowID != wfID {
				errs = append(errs, fmt.Errorf("%w: stage %s claims workflow %s, listed by %s",
					ErrBackReference, stageID, st.WorkflowID, wfID))
			}
			if st.Order != i {
				errs = append(errs, fmt.Errorf("%w: stage %s has order %d at position %d",
					ErrStageOrder, stageID, st.Order, i))
			}
		}
	}

	taskRefs := make(map[string]int, len(b.tasks))
	for stageID, st := range b.stages {
		if st.ID != stageID {
			errs = append(errs, fmt.Errorf("%w: stage key %s holds id %s", ErrBackReference, stageID, st.ID))
		}
		if _, ok := b.workflows[st.WorkflowID]; !ok {
			errs = append(errs, fmt.Errorf("%w: stage %s -> workflow %s", ErrMissingWorkflow, stageID, st.WorkflowID))
		}
		if stageRefs[stageID] != 1 {
			errs = append(errs, fmt.Errorf("%w: stage %s listed %d times", ErrOrphanStage, stageID, stageRefs[stageID]))
		}
		for _, taskID := range st.TaskIDs {
			taskRefs[taskID]++
			task, ok := b.tasks[taskID]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: stage %s -> task %s", ErrMissingTask, stageID, taskID))
				continue
			}
			if task.StageID != stageID {
				errs = append(errs, fmt.Errorf("%w: task %s claims stage %s, listed by %s",
					ErrBackReference, taskID, task.StageID, stageID))
			}
		}
	}

	for taskID, task := range b.tasks {
		if task.ID != taskID {
			errs = append(errs, fmt.Errorf("%w: task key %s holds id %s", ErrBackReference, taskID, task.ID))
		}
		if taskRefs[taskID] != 1 {
			errs = append(errs, fmt.Errorf("%w: task %s listed %d times", ErrOrphanTask, taskID, taskRefs[taskID]))
		}
		if st, ok := b.stages[task.StageID]; ok && st.WorkflowID != task.WorkflowID {
			errs = append(errs, fmt.Errorf("%w: task %s has %s, stage has %s",
				ErrStaleWorkflowID, taskID, task.WorkflowID, st.WorkflowID))
		}
	}

	if b.activeWorkflowID != "" {
		if _, ok := b.workflows[b.activeWorkflowID]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownActiveFlow, b.activeWorkflowID))
		}
	}

	return errors.Join(errs...)
}
