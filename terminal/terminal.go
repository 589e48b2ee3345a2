// Package terminal opens the tcell screen and restores the tty after crashes
package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode is the color depth the screen is driven with
type ColorMode uint8

const (
	ColorModeAuto ColorMode = iota
	ColorMode256
	ColorModeTrueColor
)

// ParseColorMode maps a --color flag value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorModeAuto, nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	}
	return ColorModeAuto, fmt.Errorf("unknown color mode %q", s)
}

func (m ColorMode) String() string {
	switch m {
	case ColorMode256:
		return "256"
	case ColorModeTrueColor:
		return "truecolor"
	}
	return "auto"
}

// Environment hints that imply 24-bit color
var (
	trueColorValues       = []string{"truecolor", "24bit"}
	trueColorTermSuffixes = []string{"truecolor", "24bit", "direct"}
	trueColorTermIDs      = []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"}
)

// DetectColorMode resolves Auto from the process environment
func DetectColorMode() ColorMode {
	return detectColorMode(os.Getenv)
}

func detectColorMode(getenv func(string) string) ColorMode {
	if slices.Contains(trueColorValues, getenv("COLORTERM")) {
		return ColorModeTrueColor
	}
	if slices.ContainsFunc(trueColorTermIDs, func(k string) bool { return getenv(k) != "" }) {
		return ColorModeTrueColor
	}
	term := getenv("TERM")
	if slices.ContainsFunc(trueColorTermSuffixes, func(s string) bool { return strings.Contains(term, s) }) {
		return ColorModeTrueColor
	}
	return ColorMode256
}

// Open initializes a screen with mouse reporting enabled
// Auto resolves through DetectColorMode; 256 makes tcell downsample RGB
func Open(mode ColorMode) (tcell.Screen, ColorMode, error) {
	if mode == ColorModeAuto {
		mode = DetectColorMode()
	}
	switch mode {
	case ColorMode256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case ColorModeTrueColor:
		os.Unsetenv("TCELL_TRUECOLOR")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, mode, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, mode, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()
	return screen, mode, nil
}

// restoreSequence undoes what Open enabled: mouse tracking modes,
// hidden cursor, alternate screen and attributes
const restoreSequence = "\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l" +
	"\x1b[0m\x1b[?25h\x1b[?7h\x1b[?1049l"

// EmergencyReset puts the tty back into a usable state without tcell,
// for panic paths where the screen may be half torn down
func EmergencyReset(w io.Writer) {
	io.WriteString(w, restoreSequence)
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
	restoreCookedMode()
}

// Crash resets the terminal and reports a recovered panic with its stack
// Uses \r\n for raw mode compatibility
func Crash(w io.Writer, where string, r any) {
	EmergencyReset(w)
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s CRASHED: %v\x1b[0m\r\n", where, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
}
