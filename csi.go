package termcore

// dispatchCSI handles a complete CSI sequence once its final byte arrives.
func (p *Parser) dispatchCSI(final byte) {
	params := p.pc.Params()
	private := p.pc.Private()
	inter := p.pc.Intermediates()
	defer p.pc.Clear()

	// Private markers '>', '<', '=' only matter for DA/DECSCUSR-style
	// sequences; on anything else they must be silently ignored rather than
	// mis-dispatching (e.g. `CSI > 1 u` must not run as `CSI u`, and
	// `CSI > 4 ; 1 m` must not corrupt SGR). '?' is the normal DECSET/DECRST/
	// DECRQM marker and is handled per-final-byte below.
	if private != 0 && private != '?' {
		switch final {
		case 'c':
			p.respond([]byte("\x1b[>0;279;0c")) // DA secondary
		case 'u':
			// DECSCUSR cursor-style query family some terminals route through
			// `CSI > ... u`; termcore has nothing to report, ignored.
		}
		return
	}

	if private == '?' {
		p.dispatchDECPrivate(final, params)
		return
	}

	if len(inter) == 1 && inter[0] == ' ' && final == 'q' {
		p.executeDECSCUSR(params)
		return
	}
	if len(inter) == 1 && inter[0] == '$' {
		switch final {
		case 'p':
			// DECRQM handled via '?' private marker path normally; bare form ignored.
		}
		return
	}

	switch final {
	case 'A':
		p.grid.MoveCursorRelative(-Get(params, 0, 1), 0)
	case 'B':
		p.grid.MoveCursorRelative(Get(params, 0, 1), 0)
	case 'C':
		p.grid.MoveCursorRelative(0, Get(params, 0, 1))
	case 'D':
		p.grid.MoveCursorRelative(0, -Get(params, 0, 1))
	case 'E':
		p.grid.MoveCursorRelative(Get(params, 0, 1), 0)
		p.grid.CarriageReturn()
	case 'F':
		p.grid.MoveCursorRelative(-Get(params, 0, 1), 0)
		p.grid.CarriageReturn()
	case 'G':
		p.grid.MoveCursorTo(p.grid.GridCursor().Row, Get(params, 0, 1)-1)
	case 'H', 'f':
		p.grid.MoveCursorTo(Get(params, 0, 1)-1, Get(params, 1, 1)-1)
	case 'I':
		for i := 0; i < Get(params, 0, 1); i++ {
			p.grid.Tab()
		}
	case 'J':
		p.grid.EraseInDisplay(EraseMode(Get(params, 0, 0)))
	case 'K':
		p.grid.EraseInLine(EraseMode(Get(params, 0, 0)))
	case 'L':
		p.grid.InsertLines(Get(params, 0, 1))
	case 'M':
		p.grid.DeleteLines(Get(params, 0, 1))
	case 'P':
		p.grid.DeleteChars(Get(params, 0, 1))
	case 'S':
		p.grid.ScrollUp(Get(params, 0, 1))
	case 'T':
		p.grid.ScrollDown(Get(params, 0, 1))
	case 'X':
		p.grid.EraseChars(Get(params, 0, 1))
	case 'Z':
		for i := 0; i < Get(params, 0, 1); i++ {
			p.grid.BackTab()
		}
	case '@':
		p.grid.InsertChars(Get(params, 0, 1))
	case 'd':
		p.grid.MoveCursorTo(Get(params, 0, 1)-1, p.grid.GridCursor().Col)
	case 'g':
		if Get(params, 0, 0) == 3 {
			p.grid.ClearAllTabStops()
		} else {
			p.grid.SetTabStop(false)
		}
	case 'h':
		p.grid.SetMode(Get(params, 0, -1), true)
	case 'l':
		p.grid.SetMode(Get(params, 0, -1), false)
	case 'm':
		p.executeSGR(params)
	case 'n':
		p.executeDSR(Get(params, 0, 0))
	case 'r':
		p.grid.SetScrollRegion(Get(params, 0, 1)-1, Get(params, 1, p.grid.Rows())-1)
	case 's':
		p.grid.SaveCursor()
	case 'u':
		p.grid.RestoreCursor()
	case 'c':
		p.respond([]byte("\x1b[?62;22c")) // DA primary
	case 't':
		// Window-manipulation no-op acknowledgement (SPEC_FULL §6): termcore
		// has no real window to query or resize, so every Ps is consumed and
		// ignored rather than replied to.
	}
}

func (p *Parser) dispatchDECPrivate(final byte, params []Param) {
	switch final {
	case 'h':
		for _, param := range params {
			if param.Base >= 0 {
				p.grid.SetDECMode(param.Base, true)
			}
		}
	case 'l':
		for _, param := range params {
			if param.Base >= 0 {
				p.grid.SetDECMode(param.Base, false)
			}
		}
	case 'p':
		// DECRQM handled when an intermediate '$' was collected; see below.
	}
	inter := p.pc.Intermediates()
	if final == 'p' && len(inter) == 1 && inter[0] == '$' {
		mode := Get(params, 0, 0)
		p.respond([]byte("\x1b[?" + itoa(mode) + ";2$y"))
	}
}

func (p *Parser) executeDSR(n int) {
	switch n {
	case 5:
		p.respond([]byte("\x1b[0n"))
	case 6:
		cur := p.grid.GridCursor()
		p.respond([]byte("\x1b[" + itoa(cur.Row+1) + ";" + itoa(cur.Col+1) + "R"))
	}
}

func (p *Parser) executeDECSCUSR(params []Param) {
	n := Get(params, 0, 0)
	style, blink := CursorBlock, true
	switch n {
	case 0, 1:
		style, blink = CursorBlock, true
	case 2:
		style, blink = CursorBlock, false
	case 3:
		style, blink = CursorUnderline, true
	case 4:
		style, blink = CursorUnderline, false
	case 5:
		style, blink = CursorBar, true
	case 6:
		style, blink = CursorBar, false
	}
	p.grid.mu.Lock()
	p.grid.cursor.Style = style
	p.grid.cursor.Blink = blink
	p.grid.mu.Unlock()
}
