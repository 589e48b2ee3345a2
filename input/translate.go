package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translator converts tcell events to intents
// It tracks whether the pointer is inside the canvas so leaving emits IntentPointerLeave once
type Translator struct {
	keys *KeyTable

	canvasWidth  int
	canvasHeight int
	inside       bool
	buttons      tcell.ButtonMask
}

// NewTranslator creates a translator for a canvas of the given cell size
// A nil table selects DefaultKeyTable
func NewTranslator(keys *KeyTable, canvasWidth, canvasHeight int) *Translator {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Translator{keys: keys, canvasWidth: canvasWidth, canvasHeight: canvasHeight}
}

// SetCanvas updates the canvas extent after a resize or layout change
func (t *Translator) SetCanvas(width, height int) {
	t.canvasWidth = width
	t.canvasHeight = height
}

// Translate maps one event; unrelated events yield IntentNone
func (t *Translator) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Intent{Type: t.keys.Lookup(ev)}

	case *tcell.EventMouse:
		return t.mouseIntent(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{}
}

// mouseIntent emits a click only on the press edge of the primary button
func (t *Translator) mouseIntent(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
	t.buttons = ev.Buttons()
	inCanvas := x >= 0 && y >= 0 && x < t.canvasWidth && y < t.canvasHeight
	if !inCanvas {
		if t.inside {
			t.inside = false
			return Intent{Type: IntentPointerLeave}
		}
		return Intent{}
	}
	t.inside = true
	cell := [2]int{x, y}
	if pressed {
		return Intent{Type: IntentClick, Cell: cell}
	}
	return Intent{Type: IntentPointerMove, Cell: cell}
}
