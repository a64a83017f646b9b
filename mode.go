package termcore

// ResetSGR resets the SGR working state to defaults (SGR 0).
func (g *Grid) ResetSGR() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sgr = defaultSGRState()
}

// CurrentSGR returns a copy of the SGR working state any newly printed
// character would inherit (spec.md §3 invariant).
func (g *Grid) CurrentSGR() (fg, bg, underlineColor Color, attrs AttrFlags, style UnderlineStyle) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sgr.fg, g.sgr.bg, g.sgr.underlineColor, g.sgr.attrs, g.sgr.underlineStyle
}

// SetMode applies an SM/RM (ANSI, non-DEC-private) mode.
func (g *Grid) SetMode(n int, set bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch n {
	case 4:
		g.mode.InsertMode = set
	}
}

// SetDECMode applies a DECSET/DECRST (private, '?'-prefixed) mode.
func (g *Grid) SetDECMode(n int, set bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch n {
	case 1:
		g.mode.CursorKeysApp = set
	case 3:
		g.mode.Column132 = set // Open Question (a): stored only, never resizes
	case 5:
		g.mode.ReverseVideo = set
	case 6:
		g.mode.OriginMode = set
		g.cursor.Row, g.cursor.Col = 0, 0
		if set {
			g.cursor.Row = g.scrollTop
		}
	case 7:
		g.mode.AutoWrap = set
	case 9:
		g.mode.SendMouseX10 = set
	case 12:
		g.cursor.Blink = set
	case 25:
		g.mode.CursorVisible = set
		g.cursor.Visible = set
	case 47, 1047:
		g.setAltScreenLocked(set)
	case 1000:
		g.mode.SendMouseNormal = set
	case 1002:
		g.mode.SendMouseBtn = set
	case 1003:
		g.mode.SendMouseAny = set
	case 1004:
		g.mode.FocusEvents = set
	case 1005:
		g.mode.MouseUTF8 = set
	case 1006:
		g.mode.MouseSGR = set
	case 1049:
		g.setAltScreenLocked(set)
	case 2004:
		g.mode.BracketedPaste = set
	}
}

func (g *Grid) setAltScreenLocked(enter bool) {
	if enter == g.usingAlt {
		return
	}
	if enter {
		g.savedCursor = g.cursor
		g.initCells(g.alternate)
		g.usingAlt = true
	} else {
		g.usingAlt = false
		g.cursor = g.savedCursor
	}
	g.mode.AltScreen = g.usingAlt
	g.markDirty(0, g.cols*g.rows)
}

// ModeSnapshot returns a copy of the current mode flags (spec.md §3
// invariant: always equal to the most recently set values).
func (g *Grid) ModeSnapshot() ModeFlags {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.mode
}

// SoftReset implements DECSTR: resets mode flags, SGR state, scroll region,
// and charset to their power-on defaults without clearing the screen.
func (g *Grid) SoftReset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.mode = DefaultModeFlags()
	g.sgr = defaultSGRState()
	g.charset = CharsetState{G0: CharsetASCII, G1: CharsetASCII}
	g.scrollTop, g.scrollBottom = 0, g.rows-1
	g.cursor.Row, g.cursor.Col = 0, 0
}

// FullReset implements RIS: soft-resets and also clears the screen,
// scrollback, tab stops, and titles.
func (g *Grid) FullReset() {
	g.mu.Lock()
	g.mode = DefaultModeFlags()
	g.sgr = defaultSGRState()
	g.charset = CharsetState{G0: CharsetASCII, G1: CharsetASCII}
	g.scrollTop, g.scrollBottom = 0, g.rows-1
	g.cursor = Cursor{Visible: true, Style: CursorBlock}
	g.usingAlt = false
	g.initCells(g.primary)
	g.initCells(g.alternate)
	g.resetTabStops()
	g.clearScrollbackLocked()
	g.windowTitle, g.iconTitle = "", ""
	g.titleStack = nil
	g.currentHyperlink = ""
	g.markDirty(0, g.cols*g.rows)
	g.mu.Unlock()
}
