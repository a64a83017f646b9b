package termcore

import "testing"

// TestSGRColorSwitch is spec.md §8 scenario S1: standard and bright
// indexed foreground codes (30-37, 90-97) select the expected palette index.
func TestSGRColorSwitch(t *testing.T) {
	cases := []struct {
		seq  string
		want Color
	}{
		{"\x1b[31m", IndexedColor(1)},
		{"\x1b[97m", IndexedColor(15)},
		{"\x1b[39m", DefaultColor},
	}
	for _, c := range cases {
		tm := New(WithSize(5, 1))
		tm.Feed([]byte(c.seq))
		tm.Feed([]byte("X"))
		got := tm.Snapshot().Cells[0].Foreground
		if got != c.want {
			t.Errorf("%q: fg got %+v want %+v", c.seq, got, c.want)
		}
	}
}

// TestSGRColonSubparamTrueColor is scenario S8: the colon-subparameter
// truecolor form `38:2::R:G:B` (colorspace id omitted) resolves to the
// given RGB triple, per Open Question (c)'s resolution.
func TestSGRColonSubparamTrueColor(t *testing.T) {
	tm := New(WithSize(5, 1))
	tm.Feed([]byte("\x1b[38:2::10:20:30m"))
	tm.Feed([]byte("X"))

	got := tm.Snapshot().Cells[0].Foreground
	want := TrueColor(10, 20, 30)
	if got != want {
		t.Fatalf("colon truecolor: got %+v want %+v", got, want)
	}
}

// TestSGRSemicolonTrueColorAndIndexed covers the semicolon forms
// `38;2;R;G;B` and `48;5;N` alongside the colon form above.
func TestSGRSemicolonTrueColorAndIndexed(t *testing.T) {
	tm := New(WithSize(5, 1))
	tm.Feed([]byte("\x1b[38;2;100;150;200;48;5;21m"))
	tm.Feed([]byte("X"))

	cell := tm.Snapshot().Cells[0]
	if cell.Foreground != TrueColor(100, 150, 200) {
		t.Errorf("fg: got %+v want TrueColor(100,150,200)", cell.Foreground)
	}
	if cell.Background != IndexedColor(21) {
		t.Errorf("bg: got %+v want IndexedColor(21)", cell.Background)
	}
}

// TestSGRResetClearsAttributesAndColors checks that SGR 0 (and the bare
// `CSI m` form) returns to the default state.
func TestSGRResetClearsAttributesAndColors(t *testing.T) {
	tm := New(WithSize(5, 1))
	tm.Feed([]byte("\x1b[1;31;4m"))
	tm.Feed([]byte("\x1b[m"))
	tm.Feed([]byte("X"))

	cell := tm.Snapshot().Cells[0]
	if cell.Foreground != DefaultColor {
		t.Errorf("fg after reset: got %+v want DefaultColor", cell.Foreground)
	}
	if cell.Attrs.Has(AttrBold) {
		t.Errorf("bold still set after SGR reset")
	}
}
