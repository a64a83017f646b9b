package termcore

import "testing"

// TestCUPClampsToLastColumnNotSentinel is spec.md §8 scenario S2: an
// absolute CUP addressing past the last column places the cursor at the
// last real column, not the pre-wrap sentinel, so the immediately
// following Print lands a character before any wrap happens.
func TestCUPClampsToLastColumnNotSentinel(t *testing.T) {
	tm := New(WithSize(80, 24))
	tm.Feed([]byte("\x1b[999;999H")) // CUP clamps row/col to 23,79 (0-based)
	tm.Feed([]byte("X"))

	snap := tm.Snapshot()
	lastCol := snap.Cols - 1
	lastRow := snap.Rows - 1
	idx := lastRow*snap.Cols + lastCol
	if snap.Cells[idx].Char != 'X' {
		t.Fatalf("expected X at (%d,%d), got %q", lastRow, lastCol, snap.Cells[idx].Char)
	}
	if snap.Cursor.Row != lastRow || snap.Cursor.Col != snap.Cols {
		t.Fatalf("expected cursor at (%d,%d) post-wrap sentinel, got (%d,%d)",
			lastRow, snap.Cols, snap.Cursor.Row, snap.Cursor.Col)
	}
}

// TestDAReportsPrimaryDeviceAttributes is scenario S4.
func TestDAReportsPrimaryDeviceAttributes(t *testing.T) {
	var got []byte
	tm := New(WithSize(80, 24), WithResponse(func(b []byte) { got = append(got, b...) }))
	tm.Feed([]byte("\x1b[c"))
	if string(got) != "\x1b[?62;22c" {
		t.Fatalf("DA primary: got %q want %q", got, "\x1b[?62;22c")
	}
}

// TestDSR6ReportsCursorPosition is scenario S5.
func TestDSR6ReportsCursorPosition(t *testing.T) {
	var got []byte
	tm := New(WithSize(80, 24), WithResponse(func(b []byte) { got = append(got, b...) }))
	tm.Feed([]byte("\x1b[5;10H\x1b[6n"))
	want := "\x1b[5;10R"
	if string(got) != want {
		t.Fatalf("DSR6: got %q want %q", got, want)
	}
}

// TestAltScreen1049SavesAndRestoresPrimaryContent is scenario S3: entering
// the alt screen via CSI ? 1049 h hides the primary buffer's content, and
// CSI ? 1049 l restores it exactly.
func TestAltScreen1049SavesAndRestoresPrimaryContent(t *testing.T) {
	tm := New(WithSize(10, 3))
	tm.Feed([]byte("primary"))

	tm.Feed([]byte("\x1b[?1049h"))
	altSnap := tm.Snapshot()
	if altSnap.Cells[0].Char != ' ' {
		t.Fatalf("alt screen should start blank, got %q at (0,0)", altSnap.Cells[0].Char)
	}
	tm.Feed([]byte("alt"))

	tm.Feed([]byte("\x1b[?1049l"))
	restored := tm.Snapshot()
	if restored.Cells[0].Char != 'p' {
		t.Fatalf("expected primary content restored, got %q at (0,0)", restored.Cells[0].Char)
	}
}

// TestCSIPrivateMarkerIgnoredOutsideDAAndDECSCUSR guards against the bug
// class spec.md §7 warns about: a `>` or `<` private marker on a sequence
// that isn't DA-secondary or DECSCUSR-query must not be misdispatched as
// the bare (unmarked) form.
func TestCSIPrivateMarkerIgnoredOutsideDAAndDECSCUSR(t *testing.T) {
	tm := New(WithSize(10, 3))
	tm.Feed([]byte("\x1b[31m"))    // set red fg via the bare form
	tm.Feed([]byte("\x1b[>4;1m")) // marked form must not reset/alter SGR state
	tm.Feed([]byte("A"))

	snap := tm.Snapshot()
	if snap.Cells[0].Foreground != IndexedColor(1) {
		t.Fatalf("expected fg still red (index 1) after marked CSI, got %+v", snap.Cells[0].Foreground)
	}
}
