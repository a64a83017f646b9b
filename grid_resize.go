package termcore

// Resize changes the grid's dimensions, preserving surviving cells,
// truncating or padding, and re-clamping cursor and scroll region per
// spec.md §3's Lifecycles. cols==0 || rows==0 degenerates to an empty grid
// per the resize-to-zero error-handling rule (spec.md §7): subsequent
// snapshots report cell_count == 0 until resized back.
func (g *Grid) Resize(cols, rows int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cols == g.cols && rows == g.rows {
		return
	}
	if cols <= 0 || rows <= 0 {
		g.cols, g.rows = 0, 0
		g.primary, g.alternate = nil, nil
		g.tabStops = nil
		g.scrollTop, g.scrollBottom = 0, 0
		g.cursor.Row, g.cursor.Col = 0, 0
		g.dirtyMin, g.dirtyMax = 0, 0
		return
	}

	g.primary = g.resizeMatrixLocked(g.primary, cols, rows)
	g.alternate = g.resizeMatrixLocked(g.alternate, cols, rows)
	g.cols, g.rows = cols, rows

	g.resetTabStops()

	if g.scrollBottom > g.rows-1 || g.scrollTop >= g.scrollBottom {
		g.scrollTop = 0
		g.scrollBottom = g.rows - 1
	}
	g.cursor.Row = g.clampCursorRow(g.cursor.Row)
	g.cursor.Col = g.clampCursorCol(g.cursor.Col)

	g.dirtyMin, g.dirtyMax = 0, g.cols*g.rows
}

func (g *Grid) resizeMatrixLocked(old []Cell, newCols, newRows int) []Cell {
	next := make([]Cell, newCols*newRows)
	for r := 0; r < newRows; r++ {
		for c := 0; c < newCols; c++ {
			next[r*newCols+c] = EmptyCellAt(g.sgr.fg, g.sgr.bg, r, c)
		}
	}
	oldCols, oldRows := g.cols, g.rows
	copyRows := minInt(oldRows, newRows)
	copyCols := minInt(oldCols, newCols)
	for r := 0; r < copyRows; r++ {
		for c := 0; c < copyCols; c++ {
			if r*oldCols+c >= len(old) {
				continue
			}
			cell := old[r*oldCols+c]
			cell.Row, cell.Col = r, c
			next[r*newCols+c] = cell
		}
	}
	return next
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
