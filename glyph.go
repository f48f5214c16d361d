package curses

// Position is a screen coordinate, column then row, zero-indexed from
// the top-left. Validity depends on the current screen size and is
// checked where the position is used.
type Position struct {
	X int
	Y int
}

// Size is the screen extent. Valid positions are 0..Cols-1 and 0..Rows-1.
type Size struct {
	Cols int
	Rows int
}

// Glyph is one display character together with its rendering: an
// optional color pair (0 means the ambient pair) and attribute flags
// combined with the ambient set for this glyph only.
type Glyph struct {
	Ch   rune
	Pair ColorPair
	Attr Attributes
}

// GlyphOf wraps a bare rune as a Glyph with ambient rendering.
func GlyphOf(ch rune) Glyph {
	return Glyph{Ch: ch}
}
