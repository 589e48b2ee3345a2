package visitor

// State is the visitor's current phase; exactly one is active at a time
type State uint8

const (
	StateWaiting State = iota
	StateFlying
	StateLanding
	StateResting
)

var stateNames = [...]string{
	StateWaiting: "waiting",
	StateFlying:  "flying",
	StateLanding: "landing",
	StateResting: "resting",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
