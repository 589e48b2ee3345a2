package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Tab, Enter, Esc)
	Keys map[tcell.Key]IntentType

	// Printable bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:   IntentQuit,
			tcell.KeyEscape:  IntentCancel,
			tcell.KeyRight:   IntentNext,
			tcell.KeyDown:    IntentNext,
			tcell.KeyTab:     IntentNext,
			tcell.KeyLeft:    IntentPrev,
			tcell.KeyUp:      IntentPrev,
			tcell.KeyBacktab: IntentPrev,
			tcell.KeyEnter:   IntentSelect,
		},
		Runes: map[rune]IntentType{
			' ': IntentSelect,
			's': IntentToggleSpin,
			'S': IntentToggleSpin,
			'm': IntentToggleMute,
			'M': IntentToggleMute,
			'q': IntentQuit,
			'Q': IntentQuit,
			'l': IntentNext,
			'j': IntentNext,
			'h': IntentPrev,
			'k': IntentPrev,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}

// MergeKeyTable returns base with override applied
// Override entries bound to IntentNone ("none" action) delete the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if result.Keys == nil {
		result.Keys = make(map[tcell.Key]IntentType)
	}
	if result.Runes == nil {
		result.Runes = make(map[rune]IntentType)
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]IntentType) {
	for k, v := range override {
		if v == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
