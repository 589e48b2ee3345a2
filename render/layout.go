package render

import "github.com/ZenXLab/cropxoninnovations-sub001/parameter"

// Layout splits the screen into canvas, detail panel and status row
type Layout struct {
	Width, Height int

	CanvasWidth  int
	CanvasHeight int

	// PanelWidth is zero when the screen is too narrow for the panel
	PanelX     int
	PanelWidth int

	StatusY int
}

// ComputeLayout places the panel on the right when the canvas keeps PanelMinCanvas columns
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}
	l.StatusY = height - 1
	l.CanvasHeight = max(height-1, 0)
	l.CanvasWidth = width
	if width-parameter.PanelWidth >= parameter.PanelMinCanvas {
		l.PanelWidth = parameter.PanelWidth
		l.PanelX = width - parameter.PanelWidth
		l.CanvasWidth = l.PanelX
	}
	return l
}

// WorldSize returns the canvas extent in world units
func (l Layout) WorldSize() (float64, float64) {
	return float64(l.CanvasWidth), float64(l.CanvasHeight) * parameter.CellAspect
}
