package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette (deep-space dark)
var (
	ColorBg       = hex("#0b1020")
	ColorRing     = hex("#27324d")
	ColorLink     = hex("#1f2a44")
	ColorHub      = hex("#e2e8f0")
	ColorLabel    = hex("#94a3b8")
	ColorText     = hex("#cbd5e1")
	ColorDim      = hex("#64748b")
	ColorVisitor  = hex("#fde68a")
	ColorPanelBg  = hex("#0f172a")
	ColorBorder   = hex("#334155")
	ColorStatusBg = hex("#111827")
)

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// toTcell converts to a 24-bit tcell color
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// mix blends a toward b by t in Lab space, clamped to gamut
func mix(a, b colorful.Color, t float64) colorful.Color {
	switch {
	case t <= 0:
		return a
	case t >= 1:
		return b
	}
	return a.BlendLab(b, t).Clamped()
}
