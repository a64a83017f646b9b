package termcore

// KeyCode names a non-character key. Character keys are carried in
// KeyEvent.Rune with KeyCode == KeyNone.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeyBackspace
	KeyTab
)

// KeyEvent is a host UI keypress, translated by EncodeKey into wire bytes
// given an InputMode snapshot (ModeFlags).
type KeyEvent struct {
	Code                        KeyCode
	Rune                        rune // valid when Code == KeyNone
	Shift, Alt, Ctrl            bool
	BackspaceSendsBackspaceByte bool // option: Backspace sends 0x08 instead of DEL
	LNM                         bool // line-feed/new-line mode: Enter sends \r\n
}

func modifierCode(shift, alt, ctrl bool) int {
	m := 1
	if shift {
		m++
	}
	if alt {
		m += 2
	}
	if ctrl {
		m += 4
	}
	return m
}

// EncodeKey is the stateless KeyEncoder (spec.md §4's KeyEncoder).
func EncodeKey(ev KeyEvent, mode ModeFlags) []byte {
	hasMod := ev.Shift || ev.Alt || ev.Ctrl

	arrowFinal := func(final byte) []byte {
		if hasMod {
			return []byte("\x1b[1;" + itoa(modifierCode(ev.Shift, ev.Alt, ev.Ctrl)) + string(final))
		}
		if mode.CursorKeysApp {
			return []byte("\x1bO" + string(final))
		}
		return []byte("\x1b[" + string(final))
	}

	ssFinal := func(final byte) []byte {
		if hasMod {
			return []byte("\x1b[1;" + itoa(modifierCode(ev.Shift, ev.Alt, ev.Ctrl)) + string(final))
		}
		return []byte("\x1bO" + string(final))
	}

	tildeForm := func(code int) []byte {
		if hasMod {
			return []byte("\x1b[" + itoa(code) + ";" + itoa(modifierCode(ev.Shift, ev.Alt, ev.Ctrl)) + "~")
		}
		return []byte("\x1b[" + itoa(code) + "~")
	}

	switch ev.Code {
	case KeyUp:
		return arrowFinal('A')
	case KeyDown:
		return arrowFinal('B')
	case KeyRight:
		return arrowFinal('C')
	case KeyLeft:
		return arrowFinal('D')
	case KeyF1:
		return ssFinal('P')
	case KeyF2:
		return ssFinal('Q')
	case KeyF3:
		return ssFinal('R')
	case KeyF4:
		return ssFinal('S')
	case KeyF5:
		return tildeForm(15)
	case KeyF6:
		return tildeForm(17)
	case KeyF7:
		return tildeForm(18)
	case KeyF8:
		return tildeForm(19)
	case KeyF9:
		return tildeForm(20)
	case KeyF10:
		return tildeForm(21)
	case KeyF11:
		return tildeForm(23)
	case KeyF12:
		return tildeForm(24)
	case KeyInsert:
		return tildeForm(2)
	case KeyDelete:
		return tildeForm(3)
	case KeyHome:
		return arrowFinal('H')
	case KeyEnd:
		return arrowFinal('F')
	case KeyPageUp:
		return tildeForm(5)
	case KeyPageDown:
		return tildeForm(6)
	case KeyEnter:
		if ev.LNM {
			return []byte("\r\n")
		}
		return []byte("\r")
	case KeyBackspace:
		if ev.Ctrl {
			return []byte{0x7F}
		}
		if ev.BackspaceSendsBackspaceByte {
			return []byte{0x08}
		}
		return []byte{0x7F}
	case KeyTab:
		if ev.Shift {
			return []byte("\x1b[Z")
		}
		return []byte{0x09}
	}

	return encodeRune(ev)
}

func encodeRune(ev KeyEvent) []byte {
	r := ev.Rune
	var out []byte

	if ev.Ctrl {
		switch {
		case r >= 'a' && r <= 'z':
			out = []byte{byte(r - 'a' + 1)}
		case r >= 'A' && r <= 'Z':
			out = []byte{byte(r - 'A' + 1)}
		case r == '@':
			out = []byte{0}
		case r == '[':
			out = []byte{27}
		case r == '\\':
			out = []byte{28}
		case r == ']':
			out = []byte{29}
		case r == '^':
			out = []byte{30}
		case r == '_':
			out = []byte{31}
		case r == '?':
			out = []byte{0x7F}
		default:
			out = []byte(string(r))
		}
	} else {
		out = []byte(string(r))
	}

	if ev.Alt {
		return append([]byte{0x1b}, out...)
	}
	return out
}
