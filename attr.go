package curses

import "github.com/lixenwraith/curses/native"

// Attributes is a set of independent style flags, combinable with |.
// Whether a given terminal can render a flag is the terminal's business;
// unsupported flags are silent no-ops.
type Attributes uint16

const (
	// Standout makes text stand out, usually the same as Reverse.
	Standout Attributes = 1 << iota
	// Underline underlines text where the terminal supports it.
	Underline
	// Reverse swaps foreground and background.
	Reverse
	// Blink blinks, or at least renders distinctly.
	Blink
	// Dim renders at reduced intensity.
	Dim
	// Bold renders at increased intensity.
	Bold
	// AltCharSet selects the alternate character set for the glyph.
	// ACS accessors set this for you.
	AltCharSet
	// Invisible renders foreground in the background color.
	Invisible
	// Italic italicizes where the terminal supports it.
	Italic
)

// AttrNone is the empty attribute set.
const AttrNone Attributes = 0

var attrBits = [...]struct {
	flag Attributes
	bit  native.Attr
}{
	{Standout, native.AttrStandout},
	{Underline, native.AttrUnderline},
	{Reverse, native.AttrReverse},
	{Blink, native.AttrBlink},
	{Dim, native.AttrDim},
	{Bold, native.AttrBold},
	{AltCharSet, native.AttrAltCharSet},
	{Invisible, native.AttrInvisible},
	{Italic, native.AttrItalic},
}

// Has reports whether every flag in set is present in a.
func (a Attributes) Has(set Attributes) bool {
	return a&set == set
}

// nativeBits computes the display attribute word for the whole set, so a
// batch toggles with a single native call.
func (a Attributes) nativeBits() native.Attr {
	var bits native.Attr
	for _, ab := range attrBits {
		if a&ab.flag != 0 {
			bits |= ab.bit
		}
	}
	return bits
}
