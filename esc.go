package termcore

// dispatchESC handles a two-character (or bare) ESC sequence once its final
// byte arrives. Intermediates collected via actCollect (e.g. '(' / ')' for
// charset designation, '#' for line attributes) are consulted first.
func (p *Parser) dispatchESC(final byte) {
	inter := p.pc.Intermediates()
	defer p.pc.Clear()

	if len(inter) == 1 {
		switch inter[0] {
		case '(':
			p.designateCharset(G0, final)
			return
		case ')':
			p.designateCharset(G1, final)
			return
		case '#':
			// DECALN and friends: no SPEC_FULL component renders double-size
			// lines (see DESIGN.md, LineAttribute dropped from cell.go); consumed
			// and ignored like any other unrecognized sequence.
			return
		}
	}

	switch final {
	case 'D': // IND
		p.grid.LineFeed()
	case 'E': // NEL
		p.grid.CarriageReturn()
		p.grid.LineFeed()
	case 'H': // HTS
		p.grid.SetTabStop(true)
	case 'M': // RI
		p.grid.ReverseIndex()
	case 'Z': // DECID
		p.respond([]byte("\x1b[?6c"))
	case '7': // DECSC
		p.grid.SaveCursor()
	case '8': // DECRC
		p.grid.RestoreCursor()
	case '=': // DECKPAM
		p.grid.mu.Lock()
		p.grid.mode.KeypadApp = true
		p.grid.mu.Unlock()
	case '>': // DECKPNM
		p.grid.mu.Lock()
		p.grid.mode.KeypadApp = false
		p.grid.mu.Unlock()
	case 'c': // RIS
		p.grid.FullReset()
	}
}

func (p *Parser) designateCharset(slot CharsetSlot, final byte) {
	var cs Charset
	switch final {
	case '0':
		cs = CharsetDECSpecialGraphics
	case 'A':
		cs = CharsetUKNational
	default:
		cs = CharsetASCII
	}
	p.grid.mu.Lock()
	if slot == G0 {
		p.grid.charset.G0 = cs
	} else {
		p.grid.charset.G1 = cs
	}
	p.grid.mu.Unlock()
}
