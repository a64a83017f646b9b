package termcore

// Print writes r at the cursor, applying auto-wrap, wide-char pairing, and
// insert-mode shifting, then advances the cursor. Zero-width runes (e.g.
// combining marks) are discarded: they consume no column and leave the
// previously printed cell unchanged.
func (g *Grid) Print(r rune) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.printLocked(r)
}

func (g *Grid) printLocked(r rune) {
	width := CellWidth(r)
	if width == 0 {
		g.foldCombining(r)
		return
	}

	if g.cursor.Col >= g.cols {
		if g.mode.AutoWrap {
			g.lineFeedLocked()
			g.cursor.Col = 0
		} else {
			g.cursor.Col = g.cols - 1
		}
	}

	if width == 2 && g.cursor.Col == g.cols-1 {
		// A wide char cannot occupy the last column; pad with a blank and wrap.
		g.setCellLocked(g.cursor.Row, g.cursor.Col, EmptyCellAt(g.sgr.fg, g.sgr.bg, g.cursor.Row, g.cursor.Col))
		if g.mode.AutoWrap {
			g.lineFeedLocked()
			g.cursor.Col = 0
		} else {
			return
		}
	}

	if g.mode.InsertMode {
		g.shiftRightLocked(g.cursor.Row, g.cursor.Col, width)
	}

	cell := Cell{
		Char:           r,
		Foreground:     g.sgr.fg,
		Background:     g.sgr.bg,
		UnderlineColor: g.sgr.underlineColor,
		Attrs:          g.sgr.attrs,
		UnderlineStyle: g.sgr.underlineStyle,
		HyperlinkID:    g.currentHyperlink,
		Row:            g.cursor.Row,
		Col:            g.cursor.Col,
	}
	if width == 2 {
		cell.Attrs |= AttrWideChar
	}
	if cell.HyperlinkID != "" {
		cell.Attrs |= AttrHyperlinkPresent
	}
	g.setCellLocked(g.cursor.Row, g.cursor.Col, cell)

	if width == 2 {
		g.setCellLocked(g.cursor.Row, g.cursor.Col+1, continuationCell(cell))
	}

	g.cursor.Col += width
}

func (g *Grid) setCellLocked(row, col int, cell Cell) {
	*g.cellAt(row, col) = cell
	g.markCellDirty(row, col)
}

// foldCombining handles a zero-width rune without consuming a column.
// termcore stores only the base rune (spec.md's Cell is a fixed-layout
// single-scalar record), so the rune is not stored: the cell behind the
// cursor keeps its base rune and every combining mark is dropped.
func (g *Grid) foldCombining(r rune) {
	col := g.cursor.Col - 1
	if col < 0 {
		return
	}
	if col >= g.cols {
		col = g.cols - 1
	}
	_ = r // base rune is intentionally left unmodified; see doc comment
}

func (g *Grid) shiftRightLocked(row, col, n int) {
	active := g.active()
	base := row * g.cols
	for c := g.cols - 1; c >= col+n; c-- {
		active[base+c] = active[base+c-n]
		active[base+c].Col = c
	}
	for c := col; c < col+n && c < g.cols; c++ {
		active[base+c] = EmptyCellAt(g.sgr.fg, g.sgr.bg, row, c)
	}
	g.markDirty(base+col, base+g.cols)
}

// LineFeed implements LF/IND: moves the cursor down one row, scrolling the
// region if at the bottom.
func (g *Grid) LineFeed() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.lineFeedLocked()
}

func (g *Grid) lineFeedLocked() {
	if g.cursor.Row == g.scrollBottom {
		g.scrollUpLocked(1)
		return
	}
	if g.cursor.Row < g.rows-1 {
		g.cursor.Row++
	}
}

// CarriageReturn implements CR: moves the cursor to column 0.
func (g *Grid) CarriageReturn() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cursor.Col = 0
}

// ReverseIndex implements RI: moves the cursor up one row, scrolling the
// region (downward) if at the top.
func (g *Grid) ReverseIndex() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cursor.Row == g.scrollTop {
		g.scrollDownLocked(1)
		return
	}
	if g.cursor.Row > 0 {
		g.cursor.Row--
	}
}

// Backspace moves the cursor left one column, no wrap.
func (g *Grid) Backspace() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cursor.Col > 0 {
		g.cursor.Col--
	}
}

// Tab implements HT: advances the cursor to the next tab stop, or the last
// column if none remain.
func (g *Grid) Tab() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for c := g.cursor.Col + 1; c < g.cols; c++ {
		if c < len(g.tabStops) && g.tabStops[c] {
			g.cursor.Col = c
			return
		}
	}
	g.cursor.Col = g.cols - 1
}

// BackTab moves the cursor to the previous tab stop (CBT).
func (g *Grid) BackTab() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for c := g.cursor.Col - 1; c >= 0; c-- {
		if c < len(g.tabStops) && g.tabStops[c] {
			g.cursor.Col = c
			return
		}
	}
	g.cursor.Col = 0
}

// SetTabStop sets/clears a tab stop at the cursor column (HTS / TBC).
func (g *Grid) SetTabStop(set bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.cursor.Col < len(g.tabStops) {
		g.tabStops[g.cursor.Col] = set
	}
}

// ClearAllTabStops implements CSI 3 g (TBC with parameter 3).
func (g *Grid) ClearAllTabStops() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range g.tabStops {
		g.tabStops[i] = false
	}
}

// Bell increments the bell counter (BEL).
func (g *Grid) Bell() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bellCount++
}

// BellCount reports the number of bells rung so far.
func (g *Grid) BellCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.bellCount
}
