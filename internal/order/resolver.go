// Package order converts pointer positions during a drag gesture into discrete
// list insertion indexes. Every function here is pure: the same rectangles and
// coordinate always produce the same answer, so redundant or out-of-order hover
// events cannot corrupt anything.
package order

// Rect is the bounding box of a rendered item, relative to its container's
// top-left corner.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// MidY returns the vertical midpoint of the rectangle.
func (r Rect) MidY() float64 {
	return r.Top + r.Height/2
}

// MidX returns the horizontal midpoint of the rectangle.
func (r Rect) MidX() float64 {
	return r.Left + r.Width/2
}

// InsertIndex resolves the vertical insertion index for a pointer at y.
// The first item whose midpoint lies below the pointer wins; when no midpoint
// does, the item goes to the end. An empty list always resolves to 0.
func InsertIndex(items []Rect, y float64) int {
	for i, item := range items {
		if item.MidY() > y {
			return i
		}
	}
	return len(items)
}

// TaskPreview resolves where a dragged task of draggedHeight would land and
// the height of the gap to render there.
func TaskPreview(items []Rect, y, draggedHeight float64) (int, float64) {
	return InsertIndex(items, y), draggedHeight
}

// StageAt returns the index of the stage whose horizontal span contains x,
// or -1 when the pointer is over none of them.
func StageAt(items []Rect, x float64) int {
	for i, item := range items {
		if x >= item.Left && x < item.Left+item.Width {
			return i
		}
	}
	return -1
}

// StageTarget resolves the destination index of a stage being dragged from
// index from while the pointer is at x. The answer depends only on from, the
// hovered stage and x, never on earlier hovers.
//
// Hovering the dragged stage itself resolves back to from. Over a stage to the
// right of from, the target is that stage once x reaches its midpoint and the
// slot just before it until then; to the left it mirrors, switching once x is
// at or before the midpoint. ok is false only when the pointer is over no
// stage, in which case the caller keeps its current preview.
func StageTarget(items []Rect, from int, x float64) (to int, ok bool) {
	hovered := StageAt(items, x)
	if hovered < 0 {
		return 0, false
	}

	mid := items[hovered].MidX()
	switch {
	case hovered > from && x < mid:
		return hovered - 1, true
	case hovered < from && x > mid:
		return hovered + 1, true
	default:
		return hovered, true
	}
}

// VerticalLayout returns the rectangles of count stacked items of equal
// height separated by gap, starting at the container's top.
func VerticalLayout(count int, height, gap float64) []Rect {
	items := make([]Rect, count)
	for i := range items {
		items[i] = Rect{Top: float64(i) * (height + gap), Height: height}
	}
	return items
}

// HorizontalLayout returns the rectangles of count side-by-side items of
// equal width separated by gap.
func HorizontalLayout(count int, width, gap float64) []Rect {
	items := make([]Rect, count)
	for i := range items {
		items[i] = Rect{Left: float64(i) * (width + gap), Width: width}
	}
	return items
}
