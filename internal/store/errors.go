package store

import "errors"

// Invariant violations reported by Validate
var (
	ErrMissingStage      = errors.New("workflow references a missing stage")
	ErrMissingTask       = errors.New("stage references a missing task")
	ErrMissingWorkflow   = errors.New("entity references a missing workflow")
	ErrOrphanStage       = errors.New("stage is not listed by exactly one workflow")
	ErrOrphanTask        = errors.New("task is not listed by exactly one stage")
	ErrStageOrder        = errors.New("stage order does not match its position")
	ErrBackReference     = errors.New("back-reference does not match owner")
	ErrStaleWorkflowID   = errors.New("task workflow id does not match its stage")
	ErrUnknownActiveFlow = errors.New("active workflow does not exist")
)
