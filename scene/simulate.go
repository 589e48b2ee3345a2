package scene

import (
	"math"

	"github.com/ZenXLab/cropxoninnovations-sub001/parameter"
)

// Report summarizes a headless run
type Report struct {
	Frames     int
	MaxError   float64 // largest node distance from its ideal slot over the run
	FinalError float64 // largest distance on the last frame
	Visits     uint64
	Angle      float64
}

// Simulate advances s by frames reference frames without rendering
func Simulate(s *Scene, frames int) Report {
	var rep Report
	f := s.Field
	for i := 0; i < frames; i++ {
		s.Tick(parameter.FrameDuration)

		worst := 0.0
		for n := 0; n < f.Len(); n++ {
			worst = math.Max(worst, f.Position(n).Dist(f.SlotTarget(n)))
		}
		rep.MaxError = math.Max(rep.MaxError, worst)
		rep.FinalError = worst
		rep.Frames++
	}
	rep.Visits = s.Visitor.Visits()
	rep.Angle = f.Angle()
	return rep
}
