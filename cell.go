package termcore

// UnderlineStyle represents the rendering style of the underline attribute.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// AttrFlags is the cell attribute bitset. Bits 0-11 are the stable layout
// the bridge and renderer agree on across the snapshot boundary; bit 12
// (hyperlink-present) is a parser-internal convenience mirroring whether
// HyperlinkID is non-empty and is not part of that cross-boundary contract.
type AttrFlags uint16

const (
	AttrBold AttrFlags = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrDoubleUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
	AttrOverline
	AttrWideChar
	AttrProtected
	AttrHyperlinkPresent
)

// Has reports whether every bit in flags is set.
func (a AttrFlags) Has(flags AttrFlags) bool { return a&flags == flags }

// Cell is a fixed-layout terminal cell record.
type Cell struct {
	Char           rune
	Foreground     Color
	Background     Color
	UnderlineColor Color
	Attrs          AttrFlags
	UnderlineStyle UnderlineStyle
	HyperlinkID    string
	Row, Col       int
}

// IsEmpty reports whether the cell holds no printable content.
func (c Cell) IsEmpty() bool {
	return c.Char == 0 || c.Char == ' '
}

// IsWide reports whether this cell is a wide-char primary.
func (c Cell) IsWide() bool { return c.Attrs.Has(AttrWideChar) }

// EmptyCell returns a blank cell with default colors at row/col 0,0.
func EmptyCell() Cell {
	return Cell{
		Char:       ' ',
		Foreground: DefaultColor,
		Background: DefaultColor,
	}
}

// EmptyCellAt returns a blank cell carrying the given fg/bg and position,
// used to fill newly-exposed rows/columns on resize and scroll.
func EmptyCellAt(fg, bg Color, row, col int) Cell {
	return Cell{
		Char:       ' ',
		Foreground: fg,
		Background: bg,
		Row:        row,
		Col:        col,
	}
}

// continuationCell returns the paired continuation cell for a wide-char
// primary at (row, col): empty glyph slot, mirrored colors, wide bit clear.
func continuationCell(primary Cell) Cell {
	cont := primary
	cont.Char = 0
	cont.Attrs &^= AttrWideChar
	cont.Col = primary.Col + 1
	return cont
}
