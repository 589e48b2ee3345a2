package parameter

import "time"

// Frame timing
const (
	// FrameDuration is the reference frame the per-frame constants are tuned against
	FrameDuration = time.Second / 60

	// MaxFrameDelta clamps a single tick after stalls (terminal suspend, debugger)
	MaxFrameDelta = 100 * time.Millisecond

	DefaultFPS = 60
)

// Cell geometry
const (
	// CellAspect is the height of one terminal row in world units (one column = 1 unit)
	CellAspect = 2.0

	// OrbitFill is the fraction of the smaller canvas half-extent used as orbit radius
	OrbitFill = 0.72

	// PanelWidth is the detail panel column count, hidden below PanelMinCanvas
	PanelWidth     = 34
	PanelMinCanvas = 50
)

// Orbit integrator constants, per reference frame
const (
	SpringK = 0.08
	Damping = 0.85

	// AngularSpeed is radians per frame (~50s per revolution)
	AngularSpeed = 0.002

	// InteractionRadius is the pointer attraction reach in world units
	InteractionRadius = 24.0

	// AttractionForce scales the pointer pull; sign is toward the pointer
	AttractionForce = 0.6
)

// Node geometry
const (
	DefaultNodeRadius = 3.0

	// HoverFactor multiplies node radius for hover activation distance
	HoverFactor = 1.5

	// HoverScale is the visual scale target of a highlighted node
	HoverScale = 1.6

	// Hover easing spring (harmonica angular frequency and damping ratio)
	HoverSpringFrequency = 8.0
	HoverSpringDamping   = 0.7
)
