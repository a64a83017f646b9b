// Package bridge implements the CellBridge subsystem (spec.md §4.9): a
// double-buffered conversion from a termcore.GridSnapshot into packed
// CellInstance records a GPU-backed renderer can upload directly, without
// termcore itself depending on any rendering concern.
//
// Usage follows the update -> swap -> read discipline spec.md §6 names:
// call Update once per render tick with the latest snapshot, then Swap,
// then ReadBuffer; the slice ReadBuffer returns stays valid only until the
// next Swap.
package bridge

import "github.com/quayterm/termcore"

// SentinelNone is the glyph index meaning "no glyph sampled" — either an
// empty cell (code point 0) or the trailing half of a wide-char pair.
const SentinelNone uint32 = 0

// CellInstance is one packed, renderer-ready cell: the fields a glyph-atlas
// renderer needs per instanced quad.
type CellInstance struct {
	GlyphIndex uint32
	Attrs      termcore.AttrFlags
	FgR, FgG, FgB, FgA uint8
	BgR, BgG, BgB, BgA uint8
	Row, Col int32
}

// GlyphLookup resolves a printable cell to its atlas glyph index. It is
// never called for a cell whose Char is 0 (SentinelNone is used directly).
type GlyphLookup func(cell termcore.Cell) uint32

// Default foreground/background used to resolve ColorTypeDefault cells.
// A consumer wanting different terminal defaults should post-process the
// bridge's output or fork these constants; termcore's Color model has no
// slot of its own for "the default color" beyond the sentinel.
var (
	DefaultFg = termcore.RGB{R: 229, G: 229, B: 229}
	DefaultBg = termcore.RGB{R: 0, G: 0, B: 0}
)

// CellBridge holds the two flat CellInstance arrays and the writer/reader
// index spec.md §4.9 describes.
type CellBridge struct {
	buffers  [2][]CellInstance
	w        int // writer index; reader is 1-w
	cols     int
	rows     int
	capacity int // allocated length of each buffer, power-of-two, >= 256
}

// New returns an empty CellBridge; its first Update always does a full
// conversion since no buffers are allocated yet.
func New() *CellBridge {
	return &CellBridge{}
}

// nextCapacity rounds need up to a power of two, minimum 256.
func nextCapacity(need int) int {
	cap := 256
	for cap < need {
		cap <<= 1
	}
	return cap
}

// ensureCapacity reallocates the buffers whenever the rounded capacity
// changes (growing or shrinking) and reports whether a full
// conversion is required (new allocation or a dimension change — a dirty
// slice from the old layout would land on the wrong cells in the new one).
func (cb *CellBridge) ensureCapacity(cols, rows int) bool {
	need := cols * rows
	full := false

	if want := nextCapacity(need); want != cb.capacity || cb.buffers[0] == nil {
		cb.buffers[0] = make([]CellInstance, want)
		cb.buffers[1] = make([]CellInstance, want)
		cb.capacity = want
		full = true
	}
	if cols != cb.cols || rows != cb.rows {
		full = true
	}
	cb.cols, cb.rows = cols, rows
	return full
}

// Update converts snap into the writer buffer, doing a full conversion on
// (re)allocation or a dimension change, otherwise copying the reader
// buffer's baseline forward and reconverting only the dirty slice
// (spec.md §4.9 steps 3-5).
func (cb *CellBridge) Update(snap termcore.GridSnapshot, glyphOf GlyphLookup) {
	full := cb.ensureCapacity(snap.Cols, snap.Rows)
	if cb.cols == 0 || cb.rows == 0 {
		return
	}

	n := cb.cols * cb.rows
	w := cb.buffers[cb.w]
	r := cb.buffers[1-cb.w]

	if full {
		for i := 0; i < n; i++ {
			w[i] = cb.convert(snap, i, glyphOf)
		}
		return
	}

	copy(w[:n], r[:n])
	if snap.Dirty.None() {
		return
	}
	lo, hi := snap.Dirty.Min, snap.Dirty.Max
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	for i := lo; i < hi; i++ {
		w[i] = cb.convert(snap, i, glyphOf)
	}
}

// convert builds the CellInstance for flat index idx, handling wide-char
// continuation detection before falling back to glyphOf.
func (cb *CellBridge) convert(snap termcore.GridSnapshot, idx int, glyphOf GlyphLookup) CellInstance {
	row, col := idx/cb.cols, idx%cb.cols
	cell := snap.Cells[idx]

	if col > 0 {
		prev := snap.Cells[idx-1]
		if prev.IsWide() {
			fg := termcore.ResolveColor(prev.Foreground, &snap.Palette, prev.Attrs.Has(termcore.AttrBold), snap.BoldIsBright, true, DefaultFg, DefaultBg)
			bg := termcore.ResolveColor(prev.Background, &snap.Palette, prev.Attrs.Has(termcore.AttrBold), snap.BoldIsBright, false, DefaultFg, DefaultBg)
			return CellInstance{
				GlyphIndex: SentinelNone,
				Attrs:      cell.Attrs,
				FgR: fg.R, FgG: fg.G, FgB: fg.B, FgA: 255,
				BgR: bg.R, BgG: bg.G, BgB: bg.B, BgA: 255,
				Row: int32(row), Col: int32(col),
			}
		}
	}

	glyph := SentinelNone
	if cell.Char != 0 {
		glyph = uint32(glyphOf(cell))
	}
	bold := cell.Attrs.Has(termcore.AttrBold)
	fg := termcore.ResolveColor(cell.Foreground, &snap.Palette, bold, snap.BoldIsBright, true, DefaultFg, DefaultBg)
	bg := termcore.ResolveColor(cell.Background, &snap.Palette, bold, snap.BoldIsBright, false, DefaultFg, DefaultBg)
	return CellInstance{
		GlyphIndex: glyph,
		Attrs:      cell.Attrs,
		FgR: fg.R, FgG: fg.G, FgB: fg.B, FgA: 255,
		BgR: bg.R, BgG: bg.G, BgB: bg.B, BgA: 255,
		Row: int32(row), Col: int32(col),
	}
}

// Swap exchanges the writer/reader roles; the buffer ReadBuffer returns
// after this call is the one just filled by Update.
func (cb *CellBridge) Swap() {
	cb.w = 1 - cb.w
}

// ReadBuffer returns the current reader buffer, sliced to cols*rows. It is
// only valid until the next Swap.
func (cb *CellBridge) ReadBuffer() []CellInstance {
	n := cb.cols * cb.rows
	r := cb.buffers[1-cb.w]
	if n > len(r) {
		n = len(r)
	}
	return r[:n]
}

// Cols and Rows report the dimensions the last Update converted.
func (cb *CellBridge) Cols() int { return cb.cols }
func (cb *CellBridge) Rows() int { return cb.rows }
