package termcore

// SetScrollRegion implements DECSTBM. top/bottom are 0-based, inclusive; an
// invalid region (top >= bottom) is ignored per spec.md §3's invariant
// `0 <= scroll_top < scroll_bottom <= rows-1`.
func (g *Grid) SetScrollRegion(top, bottom int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if top < 0 {
		top = 0
	}
	if bottom > g.rows-1 {
		bottom = g.rows - 1
	}
	if top >= bottom {
		return
	}
	g.scrollTop, g.scrollBottom = top, bottom
	g.cursor.Row = top
	g.cursor.Col = 0
}

// ScrollUp scrolls the active scroll region up by n lines (new blank lines
// appear at the bottom). Only the primary buffer, and only when the full
// screen is the scroll region, feeds scrollback (spec.md §3 invariant).
func (g *Grid) ScrollUp(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scrollUpLocked(n)
}

func (g *Grid) scrollUpLocked(n int) {
	if n <= 0 {
		return
	}
	active := g.active()
	top, bottom := g.scrollTop, g.scrollBottom
	rows := bottom - top + 1
	if n > rows {
		n = rows
	}

	if !g.usingAlt && top == 0 && bottom == g.rows-1 {
		for i := 0; i < n; i++ {
			g.pushScrollbackLocked(active[0:g.cols])
			copy(active, active[g.cols:])
			blankBase := (g.rows - 1) * g.cols
			for c := 0; c < g.cols; c++ {
				active[blankBase+c] = EmptyCellAt(g.sgr.fg, g.sgr.bg, g.rows-1, c)
			}
		}
		g.markDirty(0, g.rows*g.cols)
		return
	}

	for i := 0; i < n; i++ {
		for r := top; r < bottom; r++ {
			copy(active[r*g.cols:(r+1)*g.cols], active[(r+1)*g.cols:(r+2)*g.cols])
			for c := 0; c < g.cols; c++ {
				active[r*g.cols+c].Row = r
			}
		}
		blankBase := bottom * g.cols
		for c := 0; c < g.cols; c++ {
			active[blankBase+c] = EmptyCellAt(g.sgr.fg, g.sgr.bg, bottom, c)
		}
	}
	g.markDirty(top*g.cols, (bottom+1)*g.cols)
}

// ScrollDown scrolls the active scroll region down by n lines (new blank
// lines appear at the top). Never touches scrollback.
func (g *Grid) ScrollDown(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scrollDownLocked(n)
}

func (g *Grid) scrollDownLocked(n int) {
	if n <= 0 {
		return
	}
	active := g.active()
	top, bottom := g.scrollTop, g.scrollBottom
	rows := bottom - top + 1
	if n > rows {
		n = rows
	}
	for i := 0; i < n; i++ {
		for r := bottom; r > top; r-- {
			copy(active[r*g.cols:(r+1)*g.cols], active[(r-1)*g.cols:r*g.cols])
			for c := 0; c < g.cols; c++ {
				active[r*g.cols+c].Row = r
			}
		}
		for c := 0; c < g.cols; c++ {
			active[top*g.cols+c] = EmptyCellAt(g.sgr.fg, g.sgr.bg, top, c)
		}
	}
	g.markDirty(top*g.cols, (bottom+1)*g.cols)
}
