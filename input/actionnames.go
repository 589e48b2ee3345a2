package input

import "strings"

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve configured action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"quit":        IntentQuit,
	"toggle_mute": IntentToggleMute,
	"next":        IntentNext,
	"prev":        IntentPrev,
	"select":      IntentSelect,
	"cancel":      IntentCancel,
	"toggle_spin": IntentToggleSpin,
}

// ActionIntent resolves an action name
func ActionIntent(name string) (IntentType, bool) {
	t, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}
