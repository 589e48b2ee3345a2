package vmath

// CellToWorld maps a terminal cell to world units at the cell center
// aspect is the world height of one row; one column is one unit
func CellToWorld(x, y int, aspect float64) Vec2 {
	return Vec2{float64(x) + 0.5, (float64(y) + 0.5) * aspect}
}

// WorldToCell maps a world position to the containing cell
// Callers must reject non-finite positions first
func WorldToCell(p Vec2, aspect float64) (int, int) {
	return floorInt(p.X), floorInt(p.Y / aspect)
}

func floorInt(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
