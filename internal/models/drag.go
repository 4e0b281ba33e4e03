package models

// TaskPreview is where a dragged task would land if dropped now.
// Both fields are nil while no task drag is hovering a stage.
type TaskPreview struct {
	Index  *int     `json:"index"`
	Height *float64 `json:"height"`
}

// Active reports whether the preview currently points somewhere.
func (p TaskPreview) Active() bool {
	return p.Index != nil
}

// StagePreview is the pending reorder of a stage drag.
type StagePreview struct {
	FromIndex *int `json:"fromIndex"`
	ToIndex   *int `json:"toIndex"`
}

// Active reports whether a stage drag is in progress.
func (p StagePreview) Active() bool {
	return p.FromIndex != nil
}
