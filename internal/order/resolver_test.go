package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// InsertIndex Tests
// ============================================================================

func TestInsertIndex(t *testing.T) {
	t.Parallel()

	// Three 80px cards with a 16px gap: midpoints at 40, 136, 232.
	cards := VerticalLayout(3, 80, 16)

	tests := []struct {
		name  string
		items []Rect
		y     float64
		want  int
	}{
		{"empty list", nil, 500, 0},
		{"empty list above", []Rect{}, -10, 0},
		{"above first card", cards, 0, 0},
		{"just above first midpoint", cards, 39.9, 0},
		{"on first midpoint", cards, 40, 1},
		{"between first and second", cards, 100, 1},
		{"lower half of second", cards, 150, 2},
		{"below every midpoint", cards, 232.1, 3},
		{"far below", cards, 10000, 3},
		{"negative pointer", cards, -50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, InsertIndex(tt.items, tt.y))
		})
	}
}

func TestInsertIndex_CoincidingMidpointsEarlierWins(t *testing.T) {
	items := []Rect{{Top: 0, Height: 100}, {Top: 25, Height: 50}}
	assert.Equal(t, 0, InsertIndex(items, 10))
}

func TestTaskPreview_CarriesDraggedHeight(t *testing.T) {
	idx, height := TaskPreview(VerticalLayout(2, 50, 0), 30, 72)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 72.0, height)
}

// ============================================================================
// Stage Target Tests
// ============================================================================

func TestStageAt(t *testing.T) {
	stages := HorizontalLayout(3, 100, 20) // [0,100) [120,220) [240,340)

	assert.Equal(t, 0, StageAt(stages, 0))
	assert.Equal(t, 0, StageAt(stages, 99.9))
	assert.Equal(t, -1, StageAt(stages, 110), "gap between stages")
	assert.Equal(t, 1, StageAt(stages, 120))
	assert.Equal(t, 2, StageAt(stages, 339))
	assert.Equal(t, -1, StageAt(stages, 340))
	assert.Equal(t, -1, StageAt(nil, 10))
}

func TestStageTarget(t *testing.T) {
	t.Parallel()

	stages := HorizontalLayout(3, 100, 20) // midpoints 50, 170, 290

	tests := []struct {
		name   string
		from   int
		x      float64
		wantTo int
		wantOK bool
	}{
		{"over itself", 1, 130, 1, true},
		{"over itself past its midpoint", 1, 200, 1, true},
		{"right, before next midpoint", 0, 150, 0, true},
		{"right, before last midpoint", 0, 260, 1, true},
		{"right, past next midpoint", 0, 180, 1, true},
		{"right, past last midpoint", 0, 300, 2, true},
		{"left, before prev midpoint", 2, 80, 1, true},
		{"left, before first midpoint from the middle", 1, 80, 1, true},
		{"left, past prev midpoint", 2, 40, 0, true},
		{"left, one step", 2, 160, 1, true},
		{"in a gap", 0, 110, 0, false},
		{"outside every stage", 0, 1000, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			to, ok := StageTarget(stages, tt.from, tt.x)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantTo, to)
			}
		})
	}
}

func TestStageTarget_Idempotent(t *testing.T) {
	stages := HorizontalLayout(4, 80, 10)
	to1, ok1 := StageTarget(stages, 0, 200)
	to2, ok2 := StageTarget(stages, 0, 200)
	assert.Equal(t, to1, to2)
	assert.Equal(t, ok1, ok2)
}

func TestStageTarget_IndependentOfDirection(t *testing.T) {
	t.Parallel()

	stages := HorizontalLayout(4, 100, 0) // midpoints 50, 150, 250, 350

	// Every x over a stage maps to one target per source, whichever way the
	// pointer arrived there.
	tests := []struct {
		from int
		x    float64
		want int
	}{
		{0, 120, 0},
		{0, 160, 1},
		{0, 260, 2},
		{0, 399, 3},
		{3, 260, 3},
		{3, 240, 2},
		{3, 120, 1},
		{3, 10, 0},
		{1, 60, 1},
		{1, 40, 0},
		{1, 240, 1},
		{1, 250, 2},
	}

	for _, tt := range tests {
		to, ok := StageTarget(stages, tt.from, tt.x)
		assert.True(t, ok)
		assert.Equal(t, tt.want, to, "from %d at x=%v", tt.from, tt.x)
	}
}
