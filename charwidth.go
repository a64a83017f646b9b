package termcore

import "github.com/mattn/go-runewidth"

// runewidthCond is shared across Grid.Print calls; ambiguous-width characters
// are treated as narrow, matching xterm's default (not East Asian mode).
var runewidthCond = runewidth.NewCondition()

// CellWidth returns the number of terminal columns a rune occupies: 0 for
// combining marks and other zero-width runes, 1 for normal/ambiguous-narrow
// runes, 2 for East-Asian-wide and emoji. Replaces the teacher's hand-rolled
// FlexWidth/CellWidth float scheme with go-runewidth's width oracle.
func CellWidth(r rune) int {
	return runewidthCond.RuneWidth(r)
}

// IsZeroWidth reports whether r is a combining mark or other zero-width rune
// that should be folded onto the previously printed cell rather than
// consuming a column of its own.
func IsZeroWidth(r rune) bool {
	return CellWidth(r) == 0
}
