package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"

	"github.com/ZenXLab/cropxoninnovations-sub001/scene"
)

const panelPad = 2

var panelHints = []string{
	"←/→ tab  focus",
	"enter    select",
	"esc      clear",
	"s spin   m mute",
	"q        quit",
}

// panel renders the detail column: highlighted entity, else the visited one
func (r *Renderer) panel(sc *scene.Scene) {
	l := r.layout
	if l.PanelWidth == 0 || l.CanvasHeight == 0 {
		return
	}
	b := r.buf
	b.Fill(l.PanelX, 0, l.PanelWidth, l.CanvasHeight, ColorPanelBg)
	for y := 0; y < l.CanvasHeight; y++ {
		b.Set(l.PanelX, y, '│', ColorBorder, false)
	}

	x := l.PanelX + panelPad
	width := l.PanelWidth - panelPad*2
	y := 1

	e, ok := sc.Detail()
	if !ok {
		b.Text(x, y, "CropXon ecosystem", ColorHub, true, width)
		y += 2
		y = r.paragraph(x, y, width, l.CanvasHeight-len(panelHints)-1,
			"Hover or focus a platform to see its details.", ColorDim)
	} else {
		col := e.RGB()
		b.Text(x, y, "● "+e.Name, col, true, width)
		y++
		if e.Category != "" {
			b.Text(x, y, strings.ToUpper(e.Category), ColorDim, false, width)
			y++
		}
		y++
		if e.Tagline != "" {
			y = r.paragraph(x, y, width, l.CanvasHeight-len(panelHints)-1, e.Tagline, ColorText)
			y++
		}
		if e.Description != "" {
			y = r.paragraph(x, y, width, l.CanvasHeight-len(panelHints)-1, e.Description, ColorLabel)
			y++
		}
		if sc.VisitingID() == e.ID {
			b.Text(x, y, "✦ visitor is here", ColorVisitor, false, width)
		}
	}

	hy := l.CanvasHeight - len(panelHints) - 1
	if hy <= y {
		return
	}
	for i, h := range panelHints {
		b.Text(x, hy+i, h, ColorDim, false, width)
	}
}

// paragraph word-wraps text into rows [y, limit) and returns the next free row
func (r *Renderer) paragraph(x, y, width, limit int, text string, fg colorful.Color) int {
	for _, line := range strings.Split(wordwrap.String(text, width), "\n") {
		if y >= limit {
			break
		}
		r.buf.Text(x, y, line, fg, false, width)
		y++
	}
	return y
}

// status renders the bottom row: frame, spin, visits, mute
func (r *Renderer) status(sc *scene.Scene, st Status) {
	l := r.layout
	if l.StatusY < 0 {
		return
	}
	b := r.buf
	b.Fill(0, l.StatusY, l.Width, 1, ColorStatusBg)

	f := sc.Field
	spin := "paused"
	switch {
	case f.Spinning():
		spin = "spinning"
	case !f.SpinEnabled():
		spin = "spin off"
	}
	sound := "♪ on"
	if st.Muted {
		sound = "♪ off"
	}
	left := fmt.Sprintf(" frame %s │ %s │ visitor %s │ visits %s │ %s",
		humanize.Comma(int64(f.Frame())),
		spin,
		sc.Visitor.State(),
		humanize.Comma(int64(sc.Visitor.Visits())),
		sound,
	)
	b.Text(0, l.StatusY, left, ColorText, false, l.Width)
}
