// Package visitor implements the autonomous agent that hops between ring nodes
package visitor

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/ZenXLab/cropxoninnovations-sub001/physics"
	"github.com/ZenXLab/cropxoninnovations-sub001/vmath"
)

// Targets is the read-only view of the ring the agent flies over
type Targets interface {
	Len() int
	Position(i int) vmath.Vec2
	Center() vmath.Vec2
}

// VisitFunc is called with ok=true once when a rest begins and ok=false when it ends
type VisitFunc func(index int, ok bool)

// Agent is the visitor state machine, advanced once per frame by Step
type Agent struct {
	physics.Body
	WingPhase float64

	cfg   Config
	rng   *vmath.FastRand
	noise opensimplex.Noise

	state     State
	target    int
	countdown float64
	clock     float64
	visits    uint64

	onVisit VisitFunc
}

// New creates an agent in Waiting near origin
func New(cfg Config, seed uint64, origin vmath.Vec2) *Agent {
	return &Agent{
		Body:      physics.Body{Pos: origin},
		cfg:       cfg,
		rng:       vmath.NewFastRand(seed),
		noise:     opensimplex.NewNormalized(int64(seed)),
		state:     StateWaiting,
		target:    -1,
		countdown: cfg.WaitFrames,
	}
}

// OnVisit registers the rest observer
func (a *Agent) OnVisit(fn VisitFunc) { a.onVisit = fn }

func (a *Agent) State() State   { return a.state }
func (a *Agent) Target() int    { return a.target }
func (a *Agent) Visits() uint64 { return a.visits }

// Visiting returns the node being rested on
func (a *Agent) Visiting() (int, bool) {
	if a.state != StateResting {
		return -1, false
	}
	return a.target, true
}

// Step advances the agent by scale reference frames
func (a *Agent) Step(scale float64, t Targets) {
	if scale <= 0 {
		return
	}
	n := t.Len()
	a.clock += scale
	a.WingPhase = math.Mod(a.WingPhase+a.cfg.WingSpeed*scale, 2*math.Pi)

	// Ring shrank under us: drop the stale target
	if a.state != StateWaiting && a.target >= n {
		a.Retarget(n, -1)
		if a.state == StateWaiting {
			a.drift(t)
			return
		}
	}

	switch a.state {
	case StateWaiting:
		a.drift(t)
		a.countdown -= scale
		if a.countdown <= 0 && n > 0 {
			a.target = a.rng.Intn(n)
			a.state = StateFlying
		}

	case StateFlying:
		hover := a.hoverPoint(t)
		a.fly(hover, scale)
		if a.Pos.Dist(hover) < a.cfg.LandDistance {
			a.state = StateLanding
		}

	case StateLanding:
		a.Pos = a.hoverPoint(t)
		a.Vel = vmath.Vec2{}
		a.countdown = a.cfg.RestFrames
		a.state = StateResting
		a.visits++
		a.notify(a.target, true)

	case StateResting:
		bob := math.Sin(a.clock*a.cfg.RestBobRate) * a.cfg.RestBobAmp
		a.Pos = a.hoverPoint(t).Add(vmath.V2(0, bob))
		a.countdown -= scale
		if a.countdown <= 0 {
			a.notify(a.target, false)
			a.target = a.rng.IntnExcept(n, a.target)
			a.state = StateFlying
		}
	}
}

// Retarget abandons the current target after the ring of n nodes changed
// A rest in progress is cleared; an agent still waiting is left alone
// skip is the index of the last rested node in the new ring, or -1
func (a *Agent) Retarget(n, skip int) {
	if a.state == StateWaiting {
		return
	}
	if a.state == StateResting {
		a.notify(a.target, false)
	}
	if n == 0 {
		a.state = StateWaiting
		a.target = -1
		a.countdown = a.cfg.WaitFrames
		return
	}
	a.target = a.rng.IntnExcept(n, skip)
	a.state = StateFlying
}

func (a *Agent) hoverPoint(t Targets) vmath.Vec2 {
	return t.Position(a.target).Add(vmath.V2(0, -a.cfg.HoverOffset))
}

// fly integrates toward hover with a sideways wobble that fades on approach
func (a *Agent) fly(hover vmath.Vec2, scale float64) {
	dir, dist := hover.Sub(a.Pos).Normalize()
	perp := vmath.V2(-dir.Y, dir.X)
	fade := math.Min(1, dist/10)
	a.Vel = a.Vel.Add(perp.Scale(math.Sin(a.WingPhase) * a.cfg.WobbleAmp * fade * scale))

	physics.SpringStep(&a.Body, hover, a.cfg.SpringK, a.cfg.Damping, scale)
	a.Vel = physics.ClampSpeed(a.Vel, a.cfg.MaxSpeed)
}

// drift hovers around the hub following smooth noise
func (a *Agent) drift(t Targets) {
	s := a.clock * a.cfg.DriftRate
	dx := (a.noise.Eval2(s, 0) - 0.5) * 2 * a.cfg.DriftRadius
	dy := (a.noise.Eval2(0, s+31.7) - 0.5) * 2 * a.cfg.DriftRadius
	a.Pos = t.Center().Add(vmath.V2(dx, dy))
	a.Vel = vmath.Vec2{}
}

func (a *Agent) notify(index int, ok bool) {
	if a.onVisit != nil {
		a.onVisit(index, ok)
	}
}
