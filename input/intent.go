// Package input translates terminal events into visualization intents
package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit       // q, Ctrl+C
	IntentResize     // terminal resize
	IntentToggleMute // m

	// Keyboard focus
	IntentNext       // Right, Down, Tab, l, j
	IntentPrev       // Left, Up, Backtab, h, k
	IntentSelect     // Enter, Space
	IntentCancel     // Esc
	IntentToggleSpin // s

	// Pointer (mouse, or touch delivered as mouse by the terminal)
	IntentPointerMove
	IntentPointerLeave
	IntentClick
)

var intentNames = [...]string{
	IntentNone:         "none",
	IntentQuit:         "quit",
	IntentResize:       "resize",
	IntentToggleMute:   "toggle-mute",
	IntentNext:         "next",
	IntentPrev:         "prev",
	IntentSelect:       "select",
	IntentCancel:       "cancel",
	IntentToggleSpin:   "toggle-spin",
	IntentPointerMove:  "pointer-move",
	IntentPointerLeave: "pointer-leave",
	IntentClick:        "click",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is a translated input event
// Cell is the terminal cell for pointer intents; Width/Height carry resize dimensions
type Intent struct {
	Type   IntentType
	Cell   [2]int
	Width  int
	Height int
}
