package render

import (
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/ZenXLab/cropxoninnovations-sub001/orbit"
	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
	"github.com/ZenXLab/cropxoninnovations-sub001/scene"
	"github.com/ZenXLab/cropxoninnovations-sub001/visitor"
	"github.com/ZenXLab/cropxoninnovations-sub001/vmath"
)

// Halo reach as a multiple of the node radius
const (
	haloReach     = 2.4
	haloAlpha     = 0.35
	haloAlphaLit  = 0.6
	linkAlphaLit  = 0.55
	ringDotsScale = 1.5
)

// canvas draws the orbit area of one frame, clipped to the canvas rectangle
type canvas struct {
	r  *Renderer
	sc *scene.Scene
	f  *orbit.Field
	w  int
	h  int
	hi int
}

func newCanvas(r *Renderer, sc *scene.Scene) *canvas {
	return &canvas{
		r:  r,
		sc: sc,
		f:  sc.Field,
		w:  r.layout.CanvasWidth,
		h:  r.layout.CanvasHeight,
		hi: sc.Field.Highlighted(),
	}
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && x < c.w && y >= 0 && y < c.h
}

// cell maps a world point to a canvas cell, false when non-finite or clipped
func (c *canvas) cell(p vmath.Vec2) (int, int, bool) {
	if !p.Finite() {
		return 0, 0, false
	}
	x, y := vmath.WorldToCell(p, parameter.CellAspect)
	return x, y, c.inside(x, y)
}

func (c *canvas) set(x, y int, ch rune, fg colorful.Color, bold bool) {
	if c.inside(x, y) {
		c.r.buf.Set(x, y, ch, fg, bold)
	}
}

func (c *canvas) blend(x, y int, col colorful.Color, alpha float64) {
	if c.inside(x, y) {
		c.r.buf.BlendBg(x, y, col, alpha)
	}
}

// ring dots the orbit circle at roughly one dot per two columns
func (c *canvas) ring() {
	radius := c.f.Radius()
	if radius <= 0 {
		return
	}
	center := c.f.Center()
	steps := int(2 * math.Pi * radius / ringDotsScale)
	for i := 0; i < steps; i++ {
		p := vmath.Polar(center, radius, vmath.SlotAngle(i, steps))
		if x, y, ok := c.cell(p); ok {
			c.set(x, y, '·', ColorRing, false)
		}
	}
}

// links draws hub-to-node spokes, brightened toward the highlighted node
func (c *canvas) links() {
	center := c.f.Center()
	cx, cy := center.X, center.Y/parameter.CellAspect
	for i := 0; i < c.f.Len(); i++ {
		p := c.f.Position(i)
		if !p.Finite() {
			continue
		}
		col := ColorLink
		if i == c.hi {
			col = mix(ColorLink, c.f.Entity(i).RGB(), linkAlphaLit)
		}
		w := vmath.NewLineWalker(cx, cy, p.X, p.Y/parameter.CellAspect)
		for w.Next() {
			x, y := w.Pos()
			if !c.inside(x, y) {
				continue
			}
			if c.r.buf.At(x, y).Rune == ' ' {
				c.set(x, y, '∙', col, false)
			}
		}
	}
}

// halos blends each node color into the background with quadratic falloff
func (c *canvas) halos() {
	for i := 0; i < c.f.Len(); i++ {
		n := c.f.Node(i)
		if !n.Pos.Finite() {
			continue
		}
		peak := haloAlpha
		if i == c.hi {
			peak = haloAlphaLit
		}
		reach := n.Entity.Radius * c.r.Scale(i) * haloReach
		c.disc(n.Pos, reach, func(x, y int, d float64) {
			t := 1 - d/reach
			c.blend(x, y, n.Entity.RGB(), peak*t*t)
		})
	}
}

func (c *canvas) hub() {
	x, y, ok := c.cell(c.f.Center())
	if !ok {
		return
	}
	c.blend(x, y, ColorHub, 0.15)
	c.set(x, y, '◆', ColorHub, true)
}

// nodes fills each disc with its color and stamps the name initial
func (c *canvas) nodes() {
	for i := 0; i < c.f.Len(); i++ {
		n := c.f.Node(i)
		if !n.Pos.Finite() {
			continue
		}
		col := n.Entity.RGB()
		radius := n.Entity.Radius * c.r.Scale(i)
		c.disc(n.Pos, radius, func(x, y int, d float64) {
			c.r.buf.SetBg(x, y, col)
			c.r.buf.Set(x, y, ' ', ColorText, false)
		})
		if x, y, ok := c.cell(n.Pos); ok {
			c.r.buf.SetBg(x, y, col)
			c.r.buf.Set(x, y, initial(n.Entity.Name), ColorBg, true)
		}
	}
}

// labels centers each name under its disc
func (c *canvas) labels() {
	for i := 0; i < c.f.Len(); i++ {
		n := c.f.Node(i)
		if !n.Pos.Finite() {
			continue
		}
		below := n.Pos.Add(vmath.V2(0, n.Entity.Radius*c.r.Scale(i)+parameter.CellAspect))
		x, y, ok := c.cell(below)
		if !ok {
			continue
		}
		name := n.Entity.Name
		fg, bold := ColorLabel, false
		if i == c.hi {
			fg, bold = n.Entity.RGB(), true
		}
		width := runewidth.StringWidth(name)
		start := max(x-width/2, 0)
		c.r.buf.Text(start, y, name, fg, bold, c.w-start)
	}
}

// visitor draws the agent sprite: wings flap while flying, a star at rest
func (c *canvas) visitor() {
	a := c.sc.Visitor
	x, y, ok := c.cell(a.Pos)
	if !ok {
		return
	}
	c.blend(x, y, ColorVisitor, 0.25)
	c.set(x, y, visitorGlyph(a), ColorVisitor, true)
}

func visitorGlyph(a *visitor.Agent) rune {
	switch a.State() {
	case visitor.StateResting, visitor.StateLanding:
		return '✦'
	case visitor.StateWaiting:
		return '•'
	}
	if math.Sin(a.WingPhase) >= 0 {
		return '⌃'
	}
	return '⌄'
}

// disc visits canvas cells whose center lies within radius of p
func (c *canvas) disc(p vmath.Vec2, radius float64, fn func(x, y int, d float64)) {
	if radius <= 0 || !p.Finite() {
		return
	}
	aspect := parameter.CellAspect
	x0, y0 := vmath.WorldToCell(p.Sub(vmath.V2(radius, radius)), aspect)
	x1, y1 := vmath.WorldToCell(p.Add(vmath.V2(radius, radius)), aspect)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.w-1), min(y1, c.h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			d := vmath.CellToWorld(x, y, aspect).Dist(p)
			if d <= radius {
				fn(x, y, d)
			}
		}
	}
}

func initial(name string) rune {
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return '?'
	}
	return unicode.ToUpper(r)
}
