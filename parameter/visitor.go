package parameter

// Visitor agent timings are in reference frames
const (
	VisitorWaitFrames = 90
	VisitorRestFrames = 180

	VisitorSpringK  = 0.035
	VisitorDamping  = 0.88
	VisitorMaxSpeed = 3.0

	// VisitorHoverOffset places the hover point above the node, world units
	VisitorHoverOffset = 5.0

	// VisitorLandDistance is the capture radius that triggers landing
	VisitorLandDistance = 1.0

	// Wing oscillator and flight wobble
	VisitorWingSpeed   = 0.45
	VisitorWobbleAmp   = 0.25
	VisitorRestBobAmp  = 0.4
	VisitorRestBobRate = 0.08

	// Idle drift around the hub while waiting
	VisitorDriftRadius = 4.0
	VisitorDriftRate   = 0.01
)
