package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyIntents(t *testing.T) {
	tr := NewTranslator(nil, 80, 24)
	cases := []struct {
		key  tcell.Key
		ch   rune
		want IntentType
	}{
		{tcell.KeyRight, 0, IntentNext},
		{tcell.KeyDown, 0, IntentNext},
		{tcell.KeyTab, 0, IntentNext},
		{tcell.KeyLeft, 0, IntentPrev},
		{tcell.KeyUp, 0, IntentPrev},
		{tcell.KeyEnter, 0, IntentSelect},
		{tcell.KeyEscape, 0, IntentCancel},
		{tcell.KeyCtrlC, 0, IntentQuit},
		{tcell.KeyRune, ' ', IntentSelect},
		{tcell.KeyRune, 's', IntentToggleSpin},
		{tcell.KeyRune, 'm', IntentToggleMute},
		{tcell.KeyRune, 'q', IntentQuit},
		{tcell.KeyRune, 'z', IntentNone},
	}
	for _, c := range cases {
		got := tr.Translate(tcell.NewEventKey(c.key, c.ch, tcell.ModNone))
		if got.Type != c.want {
			t.Errorf("key %v rune %q: got %s, want %s", c.key, c.ch, got.Type, c.want)
		}
	}
}

func TestMouseMoveClickAndLeave(t *testing.T) {
	tr := NewTranslator(nil, 40, 20)

	in := tr.Translate(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	if in.Type != IntentPointerMove || in.Cell != [2]int{10, 5} {
		t.Fatalf("expected pointer move at (10,5), got %+v", in)
	}

	in = tr.Translate(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
	if in.Type != IntentClick {
		t.Fatalf("expected click on press, got %s", in.Type)
	}

	// Drag with button held is movement, not repeated clicks
	in = tr.Translate(tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone))
	if in.Type != IntentPointerMove {
		t.Fatalf("expected move while held, got %s", in.Type)
	}

	in = tr.Translate(tcell.NewEventMouse(50, 5, tcell.ButtonNone, tcell.ModNone))
	if in.Type != IntentPointerLeave {
		t.Fatalf("expected leave when crossing into panel, got %s", in.Type)
	}

	in = tr.Translate(tcell.NewEventMouse(51, 5, tcell.ButtonNone, tcell.ModNone))
	if in.Type != IntentNone {
		t.Fatalf("leave must fire once, got %s", in.Type)
	}
}

func TestResizeIntent(t *testing.T) {
	tr := NewTranslator(nil, 40, 20)
	in := tr.Translate(tcell.NewEventResize(120, 40))
	if in.Type != IntentResize || in.Width != 120 || in.Height != 40 {
		t.Fatalf("unexpected resize intent %+v", in)
	}
}

func TestIntentString(t *testing.T) {
	if IntentToggleSpin.String() != "toggle-spin" {
		t.Errorf("unexpected name %q", IntentToggleSpin.String())
	}
}
