package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Landing chime
const (
	ChimeVolume = 0.35

	ChimeDuration = 220 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 180 * time.Millisecond

	// E6 with a fifth above
	ChimeFundamental = 1318.51
	ChimeOvertone    = 1975.53

	// MinChimeGap drops chimes closer together than this
	MinChimeGap = 250 * time.Millisecond
)
