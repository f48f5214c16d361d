package curses

import "github.com/lixenwraith/curses/native"

// KeyKind tags the closed vocabulary of logical keys.
type KeyKind uint8

const (
	// KeyNone is the zero Key, returned by a timed poll that expired.
	KeyNone KeyKind = iota
	// KeyByte is a literal input byte, printable or control (see Key.Byte).
	KeyByte
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	// KeyCenter is keypad 5 with numlock off.
	KeyCenter
	// KeyResize reports that the terminal changed size.
	KeyResize
	// KeyFunction is a function key; the index is in Key.Fn.
	KeyFunction
	// KeyUnknown is the fallback for any raw code outside the vocabulary.
	KeyUnknown
)

// Key is one decoded input event. It is a plain value: comparable,
// immutable, no identity beyond its fields. Raw always holds the code the
// key decoded from.
type Key struct {
	Kind KeyKind
	Byte byte // set for KeyByte
	Fn   int  // set for KeyFunction
	Raw  int
}

// ByteKey builds the KeyByte value for a literal byte.
func ByteKey(b byte) Key {
	return Key{Kind: KeyByte, Byte: b, Raw: int(b)}
}

// specialCodes maps named raw sentinels to key kinds. Codes come from the
// native constant table, never bare literals, since the values are a
// platform convention rather than a fact of this package.
var specialCodes = map[int]KeyKind{
	'\n':                    KeyEnter,
	native.KeyCodeEnter:     KeyEnter,
	native.KeyCodeBackspace: KeyBackspace,
	native.KeyCodeUp:        KeyUp,
	native.KeyCodeDown:      KeyDown,
	native.KeyCodeLeft:      KeyLeft,
	native.KeyCodeRight:     KeyRight,
	native.KeyCodeInsert:    KeyInsert,
	native.KeyCodeDelete:    KeyDelete,
	native.KeyCodeHome:      KeyHome,
	native.KeyCodeEnd:       KeyEnd,
	native.KeyCodePageUp:    KeyPageUp,
	native.KeyCodePageDown:  KeyPageDown,
	native.KeyCodeCenter:    KeyCenter,
	native.KeyCodeResize:    KeyResize,
}

// Decode maps a raw key code to its logical Key. It is pure and total:
// every integer decodes to exactly one Key, with KeyUnknown as the
// exhaustive fallback, and equal inputs always decode equal.
func Decode(raw int) Key {
	if kind, ok := specialCodes[raw]; ok {
		return Key{Kind: kind, Raw: raw}
	}
	if raw >= native.KeyCodeF0 && raw <= native.KeyCodeF0+native.MaxFunctionKey {
		return Key{Kind: KeyFunction, Fn: raw - native.KeyCodeF0, Raw: raw}
	}
	if raw >= 0 && raw <= 0xff {
		return Key{Kind: KeyByte, Byte: byte(raw), Raw: raw}
	}
	return Key{Kind: KeyUnknown, Raw: raw}
}

// Encode is the inverse of Decode, producing the raw code to push back
// into the input queue. KeyNone encodes to the native error sentinel.
func Encode(k Key) int {
	switch k.Kind {
	case KeyNone:
		return native.Err
	case KeyByte:
		return int(k.Byte)
	case KeyEnter:
		return '\n'
	case KeyBackspace:
		return native.KeyCodeBackspace
	case KeyUp:
		return native.KeyCodeUp
	case KeyDown:
		return native.KeyCodeDown
	case KeyLeft:
		return native.KeyCodeLeft
	case KeyRight:
		return native.KeyCodeRight
	case KeyInsert:
		return native.KeyCodeInsert
	case KeyDelete:
		return native.KeyCodeDelete
	case KeyHome:
		return native.KeyCodeHome
	case KeyEnd:
		return native.KeyCodeEnd
	case KeyPageUp:
		return native.KeyCodePageUp
	case KeyPageDown:
		return native.KeyCodePageDown
	case KeyCenter:
		return native.KeyCodeCenter
	case KeyResize:
		return native.KeyCodeResize
	case KeyFunction:
		return native.KeyCodeF0 + k.Fn
	}
	return k.Raw
}
