package visitor

import "github.com/ZenXLab/cropxoninnovations-sub001/parameter"

// Config holds agent timings (reference frames) and motion constants (world units)
type Config struct {
	WaitFrames   float64
	RestFrames   float64
	SpringK      float64
	Damping      float64
	MaxSpeed     float64
	HoverOffset  float64
	LandDistance float64
	WingSpeed    float64
	WobbleAmp    float64
	RestBobAmp   float64
	RestBobRate  float64
	DriftRadius  float64
	DriftRate    float64
}

// DefaultConfig returns the parameter package defaults
func DefaultConfig() Config {
	return Config{
		WaitFrames:   parameter.VisitorWaitFrames,
		RestFrames:   parameter.VisitorRestFrames,
		SpringK:      parameter.VisitorSpringK,
		Damping:      parameter.VisitorDamping,
		MaxSpeed:     parameter.VisitorMaxSpeed,
		HoverOffset:  parameter.VisitorHoverOffset,
		LandDistance: parameter.VisitorLandDistance,
		WingSpeed:    parameter.VisitorWingSpeed,
		WobbleAmp:    parameter.VisitorWobbleAmp,
		RestBobAmp:   parameter.VisitorRestBobAmp,
		RestBobRate:  parameter.VisitorRestBobRate,
		DriftRadius:  parameter.VisitorDriftRadius,
		DriftRate:    parameter.VisitorDriftRate,
	}
}
