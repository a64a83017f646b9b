package termcore

import "strings"

// dispatchDCS handles a complete DCS string once ST terminates it. termcore
// only implements DECRQSS (`ESC P $ q <selector> ST`), generalized from
// purfecterm/parser.go's accumulate-then-dispatch DCS handling (the
// teacher's own custom 7000-series OSC commands are not carried over — see
// DESIGN.md).
func (p *Parser) dispatchDCS() {
	s := string(p.dcsBuf)
	if !strings.HasPrefix(s, "$q") {
		return
	}
	selector := s[2:]
	switch selector {
	case "m":
		fg, bg, ul, attrs, _ := p.grid.CurrentSGR()
		codes := sgrReplyCodes(fg, bg, ul, attrs)
		p.respond([]byte("\x1bP1$r" + codes + "m\x1b\\"))
	case "r":
		p.grid.mu.RLock()
		top, bottom := p.grid.scrollTop+1, p.grid.scrollBottom+1
		p.grid.mu.RUnlock()
		p.respond([]byte("\x1bP1$r" + itoa(top) + ";" + itoa(bottom) + "r\x1b\\"))
	case " q":
		cur := p.grid.GridCursor()
		p.respond([]byte("\x1bP1$r" + itoa(decscusrCode(cur.Style, cur.Blink)) + " q\x1b\\"))
	default:
		p.respond([]byte("\x1bP0$r\x1b\\"))
	}
}

func sgrReplyCodes(fg, bg, ul Color, attrs AttrFlags) string {
	codes := []string{"0"}
	if attrs.Has(AttrBold) {
		codes = append(codes, "1")
	}
	if attrs.Has(AttrDim) {
		codes = append(codes, "2")
	}
	if attrs.Has(AttrItalic) {
		codes = append(codes, "3")
	}
	if attrs.Has(AttrUnderline) {
		codes = append(codes, "4")
	}
	if attrs.Has(AttrBlink) {
		codes = append(codes, "5")
	}
	if attrs.Has(AttrReverse) {
		codes = append(codes, "7")
	}
	if attrs.Has(AttrHidden) {
		codes = append(codes, "8")
	}
	if attrs.Has(AttrStrikethrough) {
		codes = append(codes, "9")
	}
	if !fg.IsDefault() {
		codes = append(codes, fg.ToSGRCode(true))
	}
	if !bg.IsDefault() {
		codes = append(codes, bg.ToSGRCode(false))
	}
	if !ul.IsDefault() {
		codes = append(codes, extendedSGRCode(58, ul))
	}
	return strings.Join(codes, ";")
}

// extendedSGRCode formats a color using only the extended 5/2 subforms
// (`<prefix>;5;N` or `<prefix>;2;R;G;B`), used for underline color (58)
// which has no 0-15 direct-code form the way fg/bg (30-37/90-97) do.
func extendedSGRCode(prefix int, c Color) string {
	if c.Type == ColorTypeTrueColor {
		return itoa(prefix) + ";2;" + itoa(int(c.R)) + ";" + itoa(int(c.G)) + ";" + itoa(int(c.B))
	}
	return itoa(prefix) + ";5;" + itoa(int(c.Index))
}

func decscusrCode(style CursorStyle, blink bool) int {
	switch style {
	case CursorUnderline:
		if blink {
			return 3
		}
		return 4
	case CursorBar:
		if blink {
			return 5
		}
		return 6
	default:
		if blink {
			return 1
		}
		return 2
	}
}
