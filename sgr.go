package termcore

// executeSGR applies one CSI m sequence's parameters to the grid's SGR
// working state, including the 256-color and true-color subparameter forms
// (spec.md §4's SGR subsystem and Open Question (c)).
func (p *Parser) executeSGR(params []Param) {
	p.grid.mu.Lock()
	defer p.grid.mu.Unlock()
	sgr := &p.grid.sgr

	if len(params) == 1 && params[0].Base < 0 {
		*sgr = defaultSGRState()
		return
	}

	for i := 0; i < len(params); i++ {
		code := params[i].Base
		if code < 0 {
			code = 0
		}
		switch {
		case code == 0:
			*sgr = defaultSGRState()
		case code == 1:
			sgr.attrs |= AttrBold
		case code == 2:
			sgr.attrs |= AttrDim
		case code == 3:
			sgr.attrs |= AttrItalic
		case code == 4:
			sub := subOrNeg(params[i], 0)
			if sub == 2 {
				sgr.attrs |= AttrDoubleUnderline
				sgr.underlineStyle = UnderlineDouble
			} else {
				sgr.attrs |= AttrUnderline
				sgr.underlineStyle = underlineStyleFor(sub)
			}
		case code == 5:
			sgr.attrs |= AttrBlink
		case code == 7:
			sgr.attrs |= AttrReverse
		case code == 8:
			sgr.attrs |= AttrHidden
		case code == 9:
			sgr.attrs |= AttrStrikethrough
		case code == 21:
			sgr.attrs |= AttrDoubleUnderline
			sgr.underlineStyle = UnderlineDouble
		case code == 22:
			sgr.attrs &^= AttrBold | AttrDim
		case code == 23:
			sgr.attrs &^= AttrItalic
		case code == 24:
			sgr.attrs &^= AttrUnderline | AttrDoubleUnderline
			sgr.underlineStyle = UnderlineNone
		case code == 25:
			sgr.attrs &^= AttrBlink
		case code == 27:
			sgr.attrs &^= AttrReverse
		case code == 28:
			sgr.attrs &^= AttrHidden
		case code == 29:
			sgr.attrs &^= AttrStrikethrough
		case code == 53:
			sgr.attrs |= AttrOverline
		case code == 55:
			sgr.attrs &^= AttrOverline
		case code >= 30 && code <= 37:
			sgr.fg = IndexedColor(code - 30)
		case code == 38:
			if c, consumed := p.parseSGRColor(params, i); c.Type != ColorTypeDefault {
				sgr.fg = c
				i += consumed
			}
		case code == 39:
			sgr.fg = DefaultColor
		case code >= 40 && code <= 47:
			sgr.bg = IndexedColor(code - 40)
		case code == 48:
			if c, consumed := p.parseSGRColor(params, i); c.Type != ColorTypeDefault {
				sgr.bg = c
				i += consumed
			}
		case code == 49:
			sgr.bg = DefaultColor
		case code == 58:
			if c, consumed := p.parseSGRColor(params, i); c.Type != ColorTypeDefault {
				sgr.underlineColor = c
				i += consumed
			}
		case code == 59:
			sgr.underlineColor = DefaultColor
		case code >= 90 && code <= 97:
			sgr.fg = IndexedColor(code - 90 + 8)
		case code >= 100 && code <= 107:
			sgr.bg = IndexedColor(code - 100 + 8)
		}
	}
}

func underlineStyleFor(sub int) UnderlineStyle {
	switch sub {
	case 0:
		return UnderlineNone
	case 2:
		return UnderlineDouble
	case 3:
		return UnderlineCurly
	case 4:
		return UnderlineDotted
	case 5:
		return UnderlineDashed
	default:
		return UnderlineSingle
	}
}

func subOrNeg(p Param, i int) int {
	if i < len(p.Subs) && p.Subs[i] >= 0 {
		return p.Subs[i]
	}
	return -1
}

// parseSGRColor parses the 256-color/true-color extended forms starting at
// params[i] (code 38/48/58), supporting both the semicolon form
// (`38;5;N`, `38;2;R;G;B`) and the colon subparameter form (`38:5:N`,
// `38:2:CS:R:G:B`). Returns the resolved color and how many extra top-level
// params the semicolon form consumed (0 for the colon form, since its
// values live in Subs rather than spanning extra top-level params). A zero
// Color (ColorTypeDefault) means the form was not recognized.
func (p *Parser) parseSGRColor(params []Param, i int) (Color, int) {
	cur := params[i]
	if len(cur.Subs) > 0 {
		return p.parseSGRColorColon(cur), 0
	}
	if i+1 >= len(params) {
		return Color{}, 0
	}
	switch params[i+1].Base {
	case 5:
		if i+2 < len(params) {
			return IndexedColor(params[i+2].Base), 2
		}
	case 2:
		if i+4 < len(params) {
			r, g, b := params[i+2].Base, params[i+3].Base, params[i+4].Base
			return TrueColor(clampByte(r), clampByte(g), clampByte(b)), 4
		}
	}
	return Color{}, 0
}

// parseSGRColorColon handles `38:5:N` and `38:2:CS:R:G:B`. Per Open
// Question (c): an empty colorspace id (the degenerate `38:2::R:G:B` form
// some terminals emit) is collected as -1 and still occupies its slot, so
// R/G/B are read from the last three Subs slots as when a CS is present;
// the form with no CS slot at all (`38:2:R:G:B`) reads the first three.
func (p *Parser) parseSGRColorColon(cur Param) Color {
	if len(cur.Subs) == 0 {
		return Color{}
	}
	switch cur.Subs[0] {
	case 5:
		if len(cur.Subs) > 1 {
			return IndexedColor(cur.Subs[1])
		}
	case 2:
		rest := cur.Subs[1:]
		if len(rest) >= 4 {
			// colorspace slot present (possibly empty, -1): CS, R, G, B
			return TrueColor(clampByte(rest[1]), clampByte(rest[2]), clampByte(rest[3]))
		}
		if len(rest) == 3 {
			return TrueColor(clampByte(rest[0]), clampByte(rest[1]), clampByte(rest[2]))
		}
	}
	return Color{}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
