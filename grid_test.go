package termcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnapshotMonotonicityNoFeedMeansNoDirty is spec.md §8 property 5: if
// no Feed call happens between two Snapshot calls, the second reports
// Dirty.None() == true.
func TestSnapshotMonotonicityNoFeedMeansNoDirty(t *testing.T) {
	tm := New(WithSize(10, 3))
	tm.Feed([]byte("hello"))

	first := tm.Snapshot()
	assert.False(t, first.Dirty.None(), "first snapshot after a Feed should report dirty cells")

	second := tm.Snapshot()
	assert.True(t, second.Dirty.None(), "snapshot taken with no intervening Feed must report no dirty cells")
}

// TestSnapshotDirtyRangeCoversOnlyWrittenCells checks the dirty range is
// exactly the span touched, not the whole buffer.
func TestSnapshotDirtyRangeCoversOnlyWrittenCells(t *testing.T) {
	tm := New(WithSize(10, 3))
	tm.Feed([]byte("\x1b[2;3Hab"))

	snap := tm.Snapshot()
	rowStart := 1 * snap.Cols
	wantMin, wantMax := rowStart+2, rowStart+4
	assert.Equal(t, wantMin, snap.Dirty.Min)
	assert.Equal(t, wantMax, snap.Dirty.Max)
}

// TestWideCharContinuationCoherence is spec.md §8 property 6 and scenario
// S9: printing a wide character writes a primary cell plus a glyph-free
// continuation cell immediately after it, mirroring colors and clearing
// the wide bit. The last-column case (a wide char never starts in the
// grid's last column) is covered by TestWideCharAtLastColumnPadsAndWraps.
func TestWideCharContinuationCoherence(t *testing.T) {
	tm := New(WithSize(10, 2))
	tm.Feed([]byte("\x1b[31m中")) // red fg, wide CJK character

	snap := tm.Snapshot()
	primary := snap.Cells[0]
	cont := snap.Cells[1]

	require.True(t, primary.IsWide())
	assert.Equal(t, '中', primary.Char)

	assert.Equal(t, rune(0), cont.Char, "continuation cell must carry no glyph")
	assert.False(t, cont.IsWide(), "continuation cell must not itself carry the wide bit")
	assert.Equal(t, primary.Foreground, cont.Foreground)
	assert.Equal(t, primary.Background, cont.Background)

	assert.Equal(t, 2, snap.Cursor.Col, "cursor should advance by the wide char's full width")
}

// TestWideCharAtLastColumnPadsAndWraps checks the wide-char-can't-split
// edge case: a wide char that would straddle the last column instead pads
// the last column blank and wraps before printing.
func TestWideCharAtLastColumnPadsAndWraps(t *testing.T) {
	tm := New(WithSize(3, 2))
	tm.Feed([]byte("ab中")) // 'a','b' fill cols 0-1, leaving col 2 as the last column

	snap := tm.Snapshot()
	last := snap.Cells[2]
	assert.True(t, last.IsEmpty(), "last column should be padded blank, not split")

	row1 := snap.Cells[snap.Cols : snap.Cols+2]
	require.True(t, row1[0].IsWide())
	assert.Equal(t, '中', row1[0].Char)
}

// TestScrollbackMonotonicity is spec.md §8 property 7: scrollback only ever
// grows from a full-region scroll-up on the primary buffer, never from the
// alternate screen or a partial scroll region.
func TestScrollbackMonotonicity(t *testing.T) {
	tm := New(WithSize(5, 2), WithScrollback(100))

	before := tm.Grid.ScrollbackLen()
	tm.Feed([]byte("row1\nrow2\nrow3")) // LF keeps the column, so the text also wraps: the 2-row screen scrolls three times
	after := tm.Grid.ScrollbackLen()
	assert.Greater(t, after, before)

	// Switching to the alternate screen and scrolling there must never push
	// scrollback lines.
	tm.Feed([]byte("\x1b[?1049h"))
	atAlt := tm.Grid.ScrollbackLen()
	tm.Feed([]byte("x\ny\nz\nw"))
	afterAltScroll := tm.Grid.ScrollbackLen()
	assert.Equal(t, atAlt, afterAltScroll, "scrolling the alternate screen must not grow scrollback")
}

// TestScrollRegionPartialScrollDoesNotPushScrollback verifies a restricted
// scroll region (DECSTBM) scrolling does not feed scrollback, only a
// full-screen scroll does.
func TestScrollRegionPartialScrollDoesNotPushScrollback(t *testing.T) {
	tm := New(WithSize(5, 5), WithScrollback(100))
	tm.Feed([]byte("\x1b[2;4r")) // restrict scroll region to rows 2-4

	before := tm.Grid.ScrollbackLen()
	tm.Feed([]byte("\x1b[4;1H\n\n\n")) // scroll within the restricted region only
	after := tm.Grid.ScrollbackLen()
	assert.Equal(t, before, after, "scrolling within a restricted region must not push scrollback")
}
