// Package drag holds the transient preview state of task and stage drags.
//
// A drag kind is either Idle (no preview) or Previewing (the last resolved
// target). Every hover overwrites the preview; leaving the droppable region
// or dropping returns the kind to Idle. Geometry is resolved by package order;
// only drops reach the store.
package drag

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/flowmaster/internal/models"
	"github.com/thenoetrevino/flowmaster/internal/order"
)

// State is the phase of one drag kind.
type State int

const (
	Idle State = iota
	Previewing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Previewing:
		return "previewing"
	default:
		return "unknown"
	}
}

// TaskMover applies a resolved task drop.
type TaskMover interface {
	MoveTask(ctx context.Context, srcStageID, destStageID, taskID string, index int) bool
}

// StageMover applies a resolved stage drop.
type StageMover interface {
	MoveStage(ctx context.Context, workflowID string, from, to int) bool
}

type taskPreview struct {
	state  State
	index  int
	height float64
}

type stagePreview struct {
	state State
	from  int
	to    int
}

// Controller holds one task preview and one stage preview. It does not stop
// a caller from running both kinds of drag at once.
type Controller struct {
	mu    sync.Mutex
	task  taskPreview
	stage stagePreview
}

// NewController creates a controller with both drag kinds idle.
func NewController() *Controller {
	return &Controller{}
}

// ============================================================================
// TASK DRAGS
// ============================================================================

// HoverTask resolves the insertion point for a task dragged over a stage
// whose cards occupy items, and records it as the current preview.
func (c *Controller) HoverTask(items []order.Rect, y, draggedHeight float64) models.TaskPreview {
	index, height := order.TaskPreview(items, y, draggedHeight)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.task = taskPreview{state: Previewing, index: index, height: height}
	return c.task.preview()
}

// LeaveTask clears the task preview.
func (c *Controller) LeaveTask() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.task = taskPreview{}
}

// DropTask resolves the final insertion index from y, moves the task and
// clears the preview. It returns the index used and whether the move applied.
func (c *Controller) DropTask(ctx context.Context, mover TaskMover, srcStageID, destStageID, taskID string, items []order.Rect, y float64) (int, bool) {
	index := order.InsertIndex(items, y)

	c.mu.Lock()
	c.task = taskPreview{}
	c.mu.Unlock()

	ok := mover.MoveTask(ctx, srcStageID, destStageID, taskID, index)
	slog.Debug("task dropped",
		"task_id", taskID,
		"src_stage_id", srcStageID,
		"dest_stage_id", destStageID,
		"index", index,
		"applied", ok)
	return index, ok
}

// TaskPreview returns the current task preview.
func (c *Controller) TaskPreview() models.TaskPreview {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.task.preview()
}

// TaskState reports whether a task preview is active.
func (c *Controller) TaskState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.task.state
}

func (p taskPreview) preview() models.TaskPreview {
	if p.state != Previewing {
		return models.TaskPreview{}
	}
	index, height := p.index, p.height
	return models.TaskPreview{Index: &index, Height: &height}
}

// ============================================================================
// STAGE DRAGS
// ============================================================================

// BeginStageDrag starts a stage drag from position from. The target starts
// out equal to the source.
func (c *Controller) BeginStageDrag(from int) models.StagePreview {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stage = stagePreview{state: Previewing, from: from, to: from}
	return c.stage.preview()
}

// HoverStage updates the target of the current stage drag from pointer x over
// stages laid out as items. The target follows the last hover alone; a
// pointer over no stage keeps the current one. Without a drag in progress it
// returns an empty preview.
func (c *Controller) HoverStage(items []order.Rect, x float64) models.StagePreview {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stage.state != Previewing {
		return models.StagePreview{}
	}
	if to, ok := order.StageTarget(items, c.stage.from, x); ok {
		c.stage.to = to
	}
	return c.stage.preview()
}

// LeaveStage cancels the stage drag.
func (c *Controller) LeaveStage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stage = stagePreview{}
}

// DropStage applies the pending from->to reorder to the workflow and clears
// the preview. Nothing is applied when no drag is in progress or the target
// equals the source.
func (c *Controller) DropStage(ctx context.Context, mover StageMover, workflowID string) bool {
	c.mu.Lock()
	pending := c.stage
	c.stage = stagePreview{}
	c.mu.Unlock()

	if pending.state != Previewing || pending.from == pending.to {
		return false
	}

	ok := mover.MoveStage(ctx, workflowID, pending.from, pending.to)
	slog.Debug("stage dropped",
		"workflow_id", workflowID,
		"from", pending.from,
		"to", pending.to,
		"applied", ok)
	return ok
}

// StagePreview returns the current stage preview.
func (c *Controller) StagePreview() models.StagePreview {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage.preview()
}

// StageState reports whether a stage drag is in progress.
func (c *Controller) StageState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage.state
}

func (p stagePreview) preview() models.StagePreview {
	if p.state != Previewing {
		return models.StagePreview{}
	}
	from, to := p.from, p.to
	return models.StagePreview{FromIndex: &from, ToIndex: &to}
}
