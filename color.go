package curses

import "github.com/lixenwraith/curses/native"

// ColorID names a palette slot, not an RGB value. Terminals with color
// support provide at least the eight classic slots below; whether a slot
// can be redefined is a separate capability.
type ColorID uint8

const (
	Black   = ColorID(native.ColorBlack)
	Red     = ColorID(native.ColorRed)
	Green   = ColorID(native.ColorGreen)
	Yellow  = ColorID(native.ColorYellow)
	Blue    = ColorID(native.ColorBlue)
	Magenta = ColorID(native.ColorMagenta)
	Cyan    = ColorID(native.ColorCyan)
	White   = ColorID(native.ColorWhite)
)

// ColorPair names a registered foreground/background pairing. Pair 0 is
// reserved for the terminal's default coloring and cannot be registered.
type ColorPair uint8

// CursorVisibility selects how the hardware cursor renders.
type CursorVisibility int

const (
	CursorInvisible   = CursorVisibility(native.CursorInvisible)
	CursorVisible     = CursorVisibility(native.CursorNormal)
	CursorVeryVisible = CursorVisibility(native.CursorVeryVisible)
)
