package termcore

import "sync"

// ModeFlags holds the DECSET/DECRST and SM/RM mode bits the InputMode
// tracker and Grid both consult. Mirrors spec.md §3's "mode flags" field;
// values always equal what SM/RM/DECSET/DECRST last set, or what DECSTR/RIS
// reset them to.
type ModeFlags struct {
	AutoWrap        bool // DECAWM (7)
	OriginMode      bool // DECOM (6)
	InsertMode      bool // IRM (4)
	CursorKeysApp   bool // DECCKM (1)
	KeypadApp       bool // DECKPAM/DECKPNM
	ReverseVideo    bool // DECSCNM (5)
	CursorVisible   bool // DECTCEM (25)
	BracketedPaste  bool // 2004
	AltScreen       bool // 1049/47/1047
	SendMouseX10    bool // 9
	SendMouseNormal bool // 1000
	SendMouseBtn    bool // 1002
	SendMouseAny    bool // 1003
	MouseSGR        bool // 1006
	MouseUTF8       bool // 1005
	FocusEvents     bool // 1004
	Column132       bool // DECCOLM (3), stored, never resizes the grid (Open Question a)
}

// DefaultModeFlags returns the flags a freshly reset terminal (RIS/DECSTR) has.
func DefaultModeFlags() ModeFlags {
	return ModeFlags{
		AutoWrap:      true,
		CursorVisible: true,
	}
}

// CharsetSlot identifies G0 or G1.
type CharsetSlot int

const (
	G0 CharsetSlot = iota
	G1
)

// CharsetState is the `{active, G0, G1}` triple spec.md §3 names.
type CharsetState struct {
	Active CharsetSlot
	G0     Charset
	G1     Charset
}

// sgrState is the SGR working state: the exact attributes any newly
// printed character inherits.
type sgrState struct {
	fg, bg, underlineColor Color
	attrs                  AttrFlags
	underlineStyle         UnderlineStyle
}

func defaultSGRState() sgrState {
	return sgrState{fg: DefaultColor, bg: DefaultColor, underlineColor: DefaultColor}
}

// Grid is the terminal's screen state: two cell matrices, scrollback,
// scroll region, SGR/charset/mode state, tab stops, and the ambient
// metadata (hyperlink scope, cwd, titles, bell counter) spec.md §3 names.
type Grid struct {
	mu sync.RWMutex

	cols, rows int

	primary   []Cell
	alternate []Cell
	usingAlt  bool

	cursor       Cursor
	savedCursor  Cursor
	savedSGR     sgrState
	savedCharset CharsetState

	scrollTop, scrollBottom int

	sgr     sgrState
	charset CharsetState

	mode ModeFlags

	tabInterval int
	tabStops    []bool

	currentHyperlink string
	hyperlinks       map[string]string

	workingDirectory string
	windowTitle      string
	iconTitle        string
	titleStack       []string

	bellCount int

	scrollback     []Cell // flat rows of `cols` cells each, ring buffer
	scrollbackCap  int
	scrollbackHead int
	scrollbackLen  int

	palette [256]RGB

	dirtyMin, dirtyMax int // [min,max) over the flat active-buffer cell array; dirtyMax==-1 means none
}

// NewGrid creates a Grid of the given size. cols==0 || rows==0 is tolerated
// per spec.md §7 (resize-to-zero): the grid becomes a no-op, snapshots carry
// cell_count == 0.
func NewGrid(cols, rows, scrollbackCap int) *Grid {
	g := &Grid{
		cols:          cols,
		rows:          rows,
		scrollTop:     0,
		scrollBottom:  max0(rows-1, 0),
		sgr:           defaultSGRState(),
		charset:       CharsetState{G0: CharsetASCII, G1: CharsetASCII},
		mode:          DefaultModeFlags(),
		tabInterval:   8,
		hyperlinks:    make(map[string]string),
		scrollbackCap: scrollbackCap,
		palette:       DefaultPalette,
		dirtyMax:      -1,
	}
	g.cursor = Cursor{Visible: true, Style: CursorBlock}
	g.allocate()
	g.resetTabStops()
	return g
}

func max0(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}

func (g *Grid) allocate() {
	n := g.cols * g.rows
	g.primary = make([]Cell, n)
	g.alternate = make([]Cell, n)
	g.initCells(g.primary)
	g.initCells(g.alternate)
}

func (g *Grid) initCells(cells []Cell) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			cells[r*g.cols+c] = EmptyCellAt(g.sgr.fg, g.sgr.bg, r, c)
		}
	}
}

// active returns the currently displayed cell matrix (primary or alternate).
func (g *Grid) active() []Cell {
	if g.usingAlt {
		return g.alternate
	}
	return g.primary
}

func (g *Grid) resetTabStops() {
	g.tabStops = make([]bool, g.cols)
	for c := 0; c < g.cols; c += g.tabInterval {
		if g.tabInterval <= 0 {
			break
		}
		g.tabStops[c] = true
	}
}

// activeCharsetIsASCII reports whether the designated G0/G1 charset is
// plain ASCII, letting the parser's ground-state fast path skip per-byte
// charset translation in the overwhelmingly common case.
func (g *Grid) activeCharsetIsASCII() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.charset.ActiveCharset() == CharsetASCII
}

// Cols and Rows report the current grid dimensions.
func (g *Grid) Cols() int { g.mu.RLock(); defer g.mu.RUnlock(); return g.cols }
func (g *Grid) Rows() int { g.mu.RLock(); defer g.mu.RUnlock(); return g.rows }

// cellAt returns a pointer to the active-buffer cell at (row, col). Caller
// must hold g.mu.
func (g *Grid) cellAt(row, col int) *Cell {
	return &g.active()[row*g.cols+col]
}

func (g *Grid) markDirty(from, to int) {
	if g.dirtyMax == -1 {
		g.dirtyMin, g.dirtyMax = from, to
		return
	}
	if from < g.dirtyMin {
		g.dirtyMin = from
	}
	if to > g.dirtyMax {
		g.dirtyMax = to
	}
}

func (g *Grid) markCellDirty(row, col int) {
	idx := row*g.cols + col
	g.markDirty(idx, idx+1)
}
