// Package orbit positions catalog entities on a rotating ring
//
// A Field owns all runtime state of one visualization: node positions and
// velocities, the shared rotation angle, pointer and keyboard focus. It is
// advanced explicitly through Tick so callers control timing; nothing in
// the package schedules itself.
package orbit

import (
	"time"

	"go.uber.org/zap"

	"github.com/ZenXLab/cropxoninnovations-sub001/catalog"
	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
	"github.com/ZenXLab/cropxoninnovations-sub001/physics"
	"github.com/ZenXLab/cropxoninnovations-sub001/vmath"
)

// None marks an empty hover/focus/selection index
const None = -1

// Node is the runtime state of one entity
type Node struct {
	Entity    *catalog.Entity
	SlotAngle float64
	Target    vmath.Vec2
	physics.Body
}

// HighlightFunc receives the highlighted entity id, ok=false when cleared
type HighlightFunc func(id string, ok bool)

// Field is the orbital layout of one visualization instance
type Field struct {
	log    *zap.Logger
	tuning Tuning

	cat   *catalog.Catalog
	nodes []Node

	size   vmath.Vec2
	center vmath.Vec2
	radius float64

	angle    float64
	spinUser bool

	pointer       vmath.Vec2
	pointerActive bool

	hovered  int
	focused  int
	selected int

	highlightID string
	onHighlight HighlightFunc

	frame uint64
}

// New creates a field for cat; call Resize before the first Tick
func New(cat *catalog.Catalog, tuning Tuning, log *zap.Logger) *Field {
	if log == nil {
		log = zap.NewNop()
	}
	f := &Field{
		log:      log,
		tuning:   tuning,
		spinUser: true,
		hovered:  None,
		focused:  None,
		selected: None,
	}
	f.rebuild(cat)
	return f
}

// OnHighlight registers the highlight observer, replacing any previous one
func (f *Field) OnHighlight(fn HighlightFunc) {
	f.onHighlight = fn
}

// SetCatalog swaps the entity list, keeping focus and selection by id
// Nodes whose id survives keep their position and velocity
func (f *Field) SetCatalog(cat *catalog.Catalog) {
	focusedID := f.idAt(f.focused)
	selectedID := f.idAt(f.selected)

	prev := make(map[string]physics.Body, len(f.nodes))
	for _, n := range f.nodes {
		prev[n.Entity.ID] = n.Body
	}

	f.rebuild(cat)
	for i := range f.nodes {
		n := &f.nodes[i]
		if b, ok := prev[n.Entity.ID]; ok {
			n.Body = b
		} else {
			n.Pos = n.Target
		}
	}

	f.focused = f.indexOf(focusedID)
	f.selected = f.indexOf(selectedID)
	f.hovered = None
	f.updateHover()
	f.log.Debug("field catalog replaced", zap.Int("entities", len(f.nodes)))
}

func (f *Field) rebuild(cat *catalog.Catalog) {
	f.cat = cat
	n := cat.Len()
	f.nodes = make([]Node, n)
	for i := range cat.Entities {
		e := &cat.Entities[i]
		node := &f.nodes[i]
		node.Entity = e
		node.SlotAngle = vmath.SlotAngle(e.SlotIndex(), n)
		node.Target = f.slotPosition(node.SlotAngle)
		node.Pos = node.Target
	}
}

// Resize re-lays the ring for a canvas of w x h world units
// Nodes snap to their new slots; velocities reset
func (f *Field) Resize(w, h float64) {
	f.size = vmath.V2(w, h)
	f.center = vmath.V2(w/2, h/2)
	f.radius = min(w, h) / 2 * f.tuning.OrbitFill
	for i := range f.nodes {
		n := &f.nodes[i]
		n.Target = f.slotPosition(n.SlotAngle)
		n.Pos = n.Target
		n.Vel = vmath.Vec2{}
	}
	f.updateHover()
}

func (f *Field) slotPosition(slotAngle float64) vmath.Vec2 {
	return vmath.Polar(f.center, f.radius, slotAngle+f.angle)
}

// Tick advances the field by dt
func (f *Field) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	if dt > parameter.MaxFrameDelta {
		dt = parameter.MaxFrameDelta
	}
	scale := float64(dt) / float64(parameter.FrameDuration)

	spinning := f.Spinning()
	attract := f.pointerActive && !spinning
	t := &f.tuning

	for i := range f.nodes {
		n := &f.nodes[i]
		n.Target = f.slotPosition(n.SlotAngle)

		if attract {
			n.Vel = n.Vel.Add(physics.Attraction(n.Pos, f.pointer, t.InteractionRadius, t.AttractionForce, scale))
		}
		physics.SpringStep(&n.Body, n.Target, t.SpringK, t.Damping, scale)

		if !n.Pos.Finite() || !n.Vel.Finite() {
			f.log.Warn("non-finite node state reset",
				zap.String("entity", n.Entity.ID),
				zap.Uint64("frame", f.frame))
			n.Pos = n.Target
			n.Vel = vmath.Vec2{}
		}
	}

	if spinning {
		f.angle += t.AngularSpeed * scale
	}
	f.frame++
	f.updateHover()
}

// Len returns node count
func (f *Field) Len() int { return len(f.nodes) }

// Node returns node i; caller must not retain it across Tick
func (f *Field) Node(i int) *Node { return &f.nodes[i] }

// Position returns the current position of node i
func (f *Field) Position(i int) vmath.Vec2 { return f.nodes[i].Pos }

// Entity returns the entity of node i
func (f *Field) Entity(i int) *catalog.Entity { return f.nodes[i].Entity }

// Catalog returns the entity list the ring is built from
func (f *Field) Catalog() *catalog.Catalog { return f.cat }

// Center returns the hub position in world units
func (f *Field) Center() vmath.Vec2 { return f.center }

// Radius returns the orbit radius in world units
func (f *Field) Radius() float64 { return f.radius }

// Size returns the canvas extent set by the last Resize
func (f *Field) Size() vmath.Vec2 { return f.size }

// Angle returns the shared rotation angle in radians
func (f *Field) Angle() float64 { return f.angle }

// Frame returns the number of committed ticks
func (f *Field) Frame() uint64 { return f.frame }

// SlotTarget returns where node i would sit with zero lag at the current angle
func (f *Field) SlotTarget(i int) vmath.Vec2 {
	return f.slotPosition(f.nodes[i].SlotAngle)
}

// Spinning reports whether the shared angle advances on Tick
func (f *Field) Spinning() bool {
	return f.spinUser && f.hovered == None && f.focused == None
}

// SpinEnabled reports the user spin switch, ignoring interaction holds
func (f *Field) SpinEnabled() bool { return f.spinUser }

func (f *Field) idAt(i int) string {
	if i < 0 || i >= len(f.nodes) {
		return ""
	}
	return f.nodes[i].Entity.ID
}

func (f *Field) indexOf(id string) int {
	if id == "" {
		return None
	}
	for i := range f.nodes {
		if f.nodes[i].Entity.ID == id {
			return i
		}
	}
	return None
}
