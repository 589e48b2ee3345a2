// Package render composites a scene into terminal cells
package render

import (
	"github.com/charmbracelet/harmonica"

	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
	"github.com/ZenXLab/cropxoninnovations-sub001/scene"
)

// Status carries app state shown in the status row
type Status struct {
	Muted bool
}

// Renderer draws scenes into its buffer; one per screen
type Renderer struct {
	buf    *Buffer
	layout Layout

	// Eased node scales, index-aligned with the field
	spring   harmonica.Spring
	scales   []float64
	scaleVel []float64
}

// NewRenderer creates a renderer for a width x height screen animating at fps
func NewRenderer(width, height, fps int) *Renderer {
	if fps <= 0 {
		fps = parameter.DefaultFPS
	}
	return &Renderer{
		buf:    NewBuffer(width, height),
		layout: ComputeLayout(width, height),
		spring: harmonica.NewSpring(harmonica.FPS(fps), parameter.HoverSpringFrequency, parameter.HoverSpringDamping),
	}
}

// Resize recomputes layout and buffer
func (r *Renderer) Resize(width, height int) {
	r.buf.Resize(width, height)
	r.layout = ComputeLayout(width, height)
}

func (r *Renderer) Layout() Layout  { return r.layout }
func (r *Renderer) Buffer() *Buffer { return r.buf }

// Draw composites one frame of sc
func (r *Renderer) Draw(sc *scene.Scene, st Status) {
	r.buf.Clear()
	r.ease(sc)

	c := newCanvas(r, sc)
	c.ring()
	c.links()
	c.halos()
	c.hub()
	c.nodes()
	c.labels()
	c.visitor()

	r.panel(sc)
	r.status(sc, st)
}

// Flush presents the composited frame
func (r *Renderer) Flush(s Screen) {
	r.buf.Flush(s)
}

// Scale returns the eased display scale of node i
func (r *Renderer) Scale(i int) float64 {
	if i < 0 || i >= len(r.scales) {
		return 1
	}
	return r.scales[i]
}

// ease steps each node's display scale toward 1 or HoverScale
func (r *Renderer) ease(sc *scene.Scene) {
	f := sc.Field
	n := f.Len()
	if len(r.scales) != n {
		r.scales = make([]float64, n)
		r.scaleVel = make([]float64, n)
		for i := range r.scales {
			r.scales[i] = 1
		}
	}
	hi := f.Highlighted()
	visiting, resting := sc.Visitor.Visiting()
	for i := 0; i < n; i++ {
		target := 1.0
		if i == hi || (resting && i == visiting) {
			target = parameter.HoverScale
		}
		r.scales[i], r.scaleVel[i] = r.spring.Update(r.scales[i], r.scaleVel[i], target)
	}
}
