package bridge

import (
	"testing"

	"github.com/quayterm/termcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func glyphByChar(cell termcore.Cell) uint32 {
	return uint32(cell.Char)
}

func snapshotOf(t *testing.T, feed string, cols, rows int) termcore.GridSnapshot {
	t.Helper()
	tm := termcore.New(termcore.WithSize(cols, rows))
	tm.Feed([]byte(feed))
	return tm.Snapshot()
}

// TestUpdateSwapReadDiscipline checks that ReadBuffer only reflects data
// from the buffer Update just wrote, after Swap is called — never the
// writer buffer mid-update.
func TestUpdateSwapReadDiscipline(t *testing.T) {
	cb := New()
	snap := snapshotOf(t, "hi", 5, 1)

	cb.Update(snap, glyphByChar)
	cb.Swap()
	buf := cb.ReadBuffer()

	require.Len(t, buf, 5)
	assert.Equal(t, uint32('h'), buf[0].GlyphIndex)
	assert.Equal(t, uint32('i'), buf[1].GlyphIndex)
}

// TestBlankCellUsesGlyphLookupNotSentinel clarifies that SentinelNone is
// reserved specifically for Char==0 (continuation cells), not for ordinary
// space-filled empty cells, which still go through GlyphLookup.
func TestBlankCellUsesGlyphLookupNotSentinel(t *testing.T) {
	cb := New()
	snap := snapshotOf(t, "a", 3, 1) // cols 1,2 stay as space-filled empty cells

	cb.Update(snap, glyphByChar)
	cb.Swap()
	buf := cb.ReadBuffer()

	assert.Equal(t, uint32(' '), buf[1].GlyphIndex, "space cell should resolve via glyphOf, not SentinelNone")
}

// TestWideCharContinuationGetsSentinelGlyph mirrors the CellBridge-specific
// half of spec.md §8 property 6: a wide character's continuation cell gets
// SentinelNone as its glyph and the primary cell's resolved colors.
func TestWideCharContinuationGetsSentinelGlyph(t *testing.T) {
	cb := New()
	snap := snapshotOf(t, "\x1b[31m中", 5, 1)

	cb.Update(snap, glyphByChar)
	cb.Swap()
	buf := cb.ReadBuffer()

	assert.NotEqual(t, SentinelNone, buf[0].GlyphIndex, "wide primary cell must carry a real glyph")
	assert.Equal(t, SentinelNone, buf[1].GlyphIndex, "continuation cell must carry SentinelNone")
	assert.Equal(t, buf[0].FgR, buf[1].FgR, "continuation cell must mirror the primary cell's color")
	assert.Equal(t, buf[0].FgG, buf[1].FgG)
	assert.Equal(t, buf[0].FgB, buf[1].FgB)
}

// TestCapacityRoundsToPowerOfTwoMinimum256 exercises nextCapacity's
// rounding rule directly.
func TestCapacityRoundsToPowerOfTwoMinimum256(t *testing.T) {
	assert.Equal(t, 256, nextCapacity(1))
	assert.Equal(t, 256, nextCapacity(256))
	assert.Equal(t, 512, nextCapacity(257))
	assert.Equal(t, 1024, nextCapacity(1000))
}

// TestFullConversionOnDimensionChange checks that a dimension change forces
// a full reconversion: after a resize from 5x1 to 6x1 the bridge reports
// the new width and its reader buffer covers all six cells.
func TestFullConversionOnDimensionChange(t *testing.T) {
	cb := New()
	tm := termcore.New(termcore.WithSize(5, 1))
	tm.Feed([]byte("abcde"))
	snap := tm.Snapshot()
	cb.Update(snap, glyphByChar)
	cb.Swap()
	require.Equal(t, uint32('a'), cb.ReadBuffer()[0].GlyphIndex)

	// Resize changes dimensions (and marks the whole grid dirty); the
	// dimension change forces a full conversion.
	tm.Resize(6, 1)
	snap2 := tm.Snapshot()
	cb.Update(snap2, glyphByChar)
	cb.Swap()
	assert.Equal(t, 6, cb.Cols())
	require.Len(t, cb.ReadBuffer(), 6)
}
