package vmath

import "math"

// LineWalker is a zero-allocation supercover DDA iterator over the cells a
// segment crosses. Coordinates are in cell units; cell (x, y) spans [x, x+1).
type LineWalker struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	tMaxX, tMaxY     float64
	tDeltaX, tDeltaY float64

	started bool
	done    bool
}

// NewLineWalker walks from (x1, y1) to (x2, y2)
func NewLineWalker(x1, y1, x2, y2 float64) LineWalker {
	w := LineWalker{
		currX: floorInt(x1), currY: floorInt(y1),
		targetX: floorInt(x2), targetY: floorInt(y2),
		stepX: 1, stepY: 1,
	}
	if !V2(x1, y1).Finite() || !V2(x2, y2).Finite() {
		w.done = true
		return w
	}

	dx, dy := x2-x1, y2-y1
	if dx < 0 {
		w.stepX = -1
		dx = -dx
	}
	if dy < 0 {
		w.stepY = -1
		dy = -dy
	}

	fracX := x1 - math.Floor(x1)
	fracY := y1 - math.Floor(y1)

	if dx == 0 {
		w.tMaxX = math.Inf(1)
	} else {
		w.tDeltaX = 1 / dx
		if w.stepX > 0 {
			w.tMaxX = (1 - fracX) * w.tDeltaX
		} else {
			w.tMaxX = fracX * w.tDeltaX
		}
	}
	if dy == 0 {
		w.tMaxY = math.Inf(1)
	} else {
		w.tDeltaY = 1 / dy
		if w.stepY > 0 {
			w.tMaxY = (1 - fracY) * w.tDeltaY
		} else {
			w.tMaxY = fracY * w.tDeltaY
		}
	}
	return w
}

// Next advances to the next cell; false once the target cell was returned
func (w *LineWalker) Next() bool {
	if w.done {
		return false
	}
	if !w.started {
		w.started = true
		return true
	}
	if w.currX == w.targetX && w.currY == w.targetY {
		w.done = true
		return false
	}

	switch {
	case w.tMaxX < w.tMaxY:
		if w.currX != w.targetX {
			w.currX += w.stepX
			w.tMaxX += w.tDeltaX
		} else {
			w.currY += w.stepY
			w.tMaxY += w.tDeltaY
		}
	case w.tMaxX > w.tMaxY:
		if w.currY != w.targetY {
			w.currY += w.stepY
			w.tMaxY += w.tDeltaY
		} else {
			w.currX += w.stepX
			w.tMaxX += w.tDeltaX
		}
	default:
		if w.currX != w.targetX {
			w.currX += w.stepX
			w.tMaxX += w.tDeltaX
		}
		if w.currY != w.targetY {
			w.currY += w.stepY
			w.tMaxY += w.tDeltaY
		}
	}
	return true
}

// Pos returns the current cell
func (w *LineWalker) Pos() (int, int) {
	return w.currX, w.currY
}
