package orbit

import "github.com/ZenXLab/cropxoninnovations-sub001/parameter"

// Tuning holds the integrator and interaction constants of a Field
type Tuning struct {
	SpringK           float64
	Damping           float64
	AngularSpeed      float64 // radians per reference frame
	InteractionRadius float64
	AttractionForce   float64
	HoverFactor       float64
	OrbitFill         float64
}

// DefaultTuning returns the parameter package defaults
func DefaultTuning() Tuning {
	return Tuning{
		SpringK:           parameter.SpringK,
		Damping:           parameter.Damping,
		AngularSpeed:      parameter.AngularSpeed,
		InteractionRadius: parameter.InteractionRadius,
		AttractionForce:   parameter.AttractionForce,
		HoverFactor:       parameter.HoverFactor,
		OrbitFill:         parameter.OrbitFill,
	}
}
