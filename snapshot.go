package termcore

// DirtyRange is a half-open `[Min, Max)` range over the flat active-buffer
// cell array. A zero-value range with Max <= Min (use None()) signals no
// change since the last snapshot.
type DirtyRange struct {
	Min, Max int
}

// None reports whether the range carries no dirty cells.
func (d DirtyRange) None() bool { return d.Max <= d.Min }

// GridSnapshot is an immutable view of a Grid's active buffer plus the
// dirty range accumulated since the previous snapshot. Taking a snapshot
// clears the Grid's dirty tracking atomically.
type GridSnapshot struct {
	Cols, Rows int
	Cells      []Cell // copy of the active buffer, row-major, len == Cols*Rows
	Cursor     Cursor
	Dirty      DirtyRange
	Mode       ModeFlags

	// Palette is a copy of the 256-entry color table at snapshot time, so a
	// CellBridge resolving indexed colors sees the table as it stood for
	// this frame even if a later OSC 4 mutates it before the bridge reads.
	Palette [256]RGB

	// BoldIsBright mirrors Terminal.BoldIsBright(); Grid itself has no
	// notion of this rendering convention, so Terminal.Snapshot fills it in.
	BoldIsBright bool
}

// Snapshot captures the current active buffer and clears dirty tracking.
// If no Feed call intervened since the previous Snapshot, Dirty.None() is
// true on this call (spec.md §8 property 5, snapshot monotonicity).
func (g *Grid) Snapshot() GridSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cols == 0 || g.rows == 0 {
		return GridSnapshot{Dirty: DirtyRange{0, 0}}
	}

	cells := make([]Cell, len(g.active()))
	copy(cells, g.active())

	var dirty DirtyRange
	if g.dirtyMax == -1 {
		dirty = DirtyRange{0, 0}
	} else {
		dirty = DirtyRange{g.dirtyMin, g.dirtyMax}
	}
	g.dirtyMin, g.dirtyMax = 0, -1

	return GridSnapshot{
		Cols:    g.cols,
		Rows:    g.rows,
		Cells:   cells,
		Cursor:  g.cursor,
		Dirty:   dirty,
		Mode:    g.mode,
		Palette: g.palette,
	}
}
