package orbit

import (
	"math"

	"github.com/ZenXLab/cropxoninnovations-sub001/vmath"
)

// PointerMove records the pointer position in world units
func (f *Field) PointerMove(p vmath.Vec2) {
	f.pointer = p
	f.pointerActive = true
	f.updateHover()
}

// PointerLeave deactivates the pointer and clears hover
func (f *Field) PointerLeave() {
	f.pointerActive = false
	f.updateHover()
}

// Pointer returns the last pointer position and whether it is over the canvas
func (f *Field) Pointer() (vmath.Vec2, bool) {
	return f.pointer, f.pointerActive
}

// Click moves the pointer to p and selects the hovered node
// Clicking empty space clears the selection; returns the selected index
func (f *Field) Click(p vmath.Vec2) int {
	f.PointerMove(p)
	f.selected = f.hovered
	f.notifyHighlight()
	return f.selected
}

// HitTest returns the nearest node whose activation radius contains p
func (f *Field) HitTest(p vmath.Vec2) int {
	best := None
	bestDist := math.Inf(1)
	for i := range f.nodes {
		n := &f.nodes[i]
		d := n.Pos.Dist(p)
		if d < n.Entity.Radius*f.tuning.HoverFactor && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func (f *Field) updateHover() {
	if f.pointerActive {
		f.hovered = f.HitTest(f.pointer)
	} else {
		f.hovered = None
	}
	f.notifyHighlight()
}

// Next moves keyboard focus forward, wrapping to the first node
func (f *Field) Next() int {
	return f.moveFocus(1)
}

// Prev moves keyboard focus backward, wrapping to the last node
func (f *Field) Prev() int {
	return f.moveFocus(-1)
}

func (f *Field) moveFocus(step int) int {
	n := len(f.nodes)
	if n == 0 {
		return None
	}
	switch {
	case f.focused != None:
		f.focused = vmath.WrapIndex(f.focused+step, n)
	case step > 0:
		f.focused = 0
	default:
		f.focused = n - 1
	}
	f.notifyHighlight()
	return f.focused
}

// Select marks the focused node (or the hovered one) as selected
func (f *Field) Select() int {
	target := f.focused
	if target == None {
		target = f.hovered
	}
	if target == None {
		return None
	}
	f.selected = target
	f.notifyHighlight()
	return f.selected
}

// Cancel clears keyboard focus and selection
func (f *Field) Cancel() {
	f.focused = None
	f.selected = None
	f.notifyHighlight()
}

// ToggleSpin flips the user spin switch and returns the new value
func (f *Field) ToggleSpin() bool {
	f.spinUser = !f.spinUser
	return f.spinUser
}

func (f *Field) Hovered() int  { return f.hovered }
func (f *Field) Focused() int  { return f.focused }
func (f *Field) Selected() int { return f.selected }

// Highlighted returns hovered, else focused, else selected
func (f *Field) Highlighted() int {
	switch {
	case f.hovered != None:
		return f.hovered
	case f.focused != None:
		return f.focused
	default:
		return f.selected
	}
}

// notifyHighlight fires the observer only when the highlighted id changes
func (f *Field) notifyHighlight() {
	id := f.idAt(f.Highlighted())
	if id == f.highlightID {
		return
	}
	f.highlightID = id
	if f.onHighlight != nil {
		f.onHighlight(id, id != "")
	}
}
