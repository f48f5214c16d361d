package curses

import "strconv"

var kindNames = map[KeyKind]string{
	KeyNone:      "None",
	KeyEnter:     "Enter",
	KeyBackspace: "Backspace",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyCenter:    "Center",
	KeyResize:    "Resize",
}

// String renders a Key for logs and error messages.
func (k Key) String() string {
	switch k.Kind {
	case KeyByte:
		if k.Byte >= 0x20 && k.Byte < 0x7f {
			return string(rune(k.Byte))
		}
		return "Byte(" + strconv.Itoa(int(k.Byte)) + ")"
	case KeyFunction:
		return "F" + strconv.Itoa(k.Fn)
	case KeyUnknown:
		return "Unknown(" + strconv.Itoa(k.Raw) + ")"
	}
	if name, ok := kindNames[k.Kind]; ok {
		return name
	}
	return "Unknown(" + strconv.Itoa(k.Raw) + ")"
}
