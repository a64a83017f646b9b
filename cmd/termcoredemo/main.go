// Command termcoredemo runs a real shell behind a PTY and drives it through
// termcore, exercising Feed/Snapshot/Resize end to end (stdin bytes are
// forwarded to the shell raw, without EncodeKey). It is a
// smoke-test harness, not a full terminal UI: it redraws the grid to the
// host terminal on every dirty snapshot using a simple cursor-addressed
// repaint rather than differential rendering.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/quayterm/termcore"
	"github.com/quayterm/termcore/atlas"
	"github.com/quayterm/termcore/bridge"
)

// cellBridge and glyphPacker are driven once per render tick alongside the
// plain-text repaint below, so this smoke-test harness actually exercises
// the subsystems a real GPU-backed front end would depend on instead of
// just the text path. There is no font rasterizer here, so glyphOf mints a
// 1x1 placeholder bitmap per distinct rune the first time it's seen.
var (
	cellBridge    = bridge.New()
	glyphPacker   = atlas.NewAtlasPacker(1, 1)
	glyphIndexes  = map[rune]uint32{}
	nextGlyphIdx  uint32 = 1
)

func glyphOf(cell termcore.Cell) uint32 {
	if idx, ok := glyphIndexes[cell.Char]; ok {
		return idx
	}
	idx := nextGlyphIdx
	nextGlyphIdx++
	glyphIndexes[cell.Char] = idx
	glyphPacker.Allocate(1, 1, []byte{255, 255, 255, 255}, 0, 0)
	return idx
}

func main() {
	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}

	tm := termcore.New(
		termcore.WithSize(cols, rows),
		termcore.WithScrollback(2000),
		termcore.WithResponse(func(b []byte) { writePTY(b) }),
		termcore.WithClipboardWrite(func(b []byte) {}),
	)

	pty, err := NewPTY()
	if err != nil {
		fmt.Fprintln(os.Stderr, "termcoredemo: create PTY:", err)
		os.Exit(1)
	}
	defer pty.Close()

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color", "COLORTERM=truecolor")
	if err := pty.Start(cmd); err != nil {
		fmt.Fprintln(os.Stderr, "termcoredemo: start shell:", err)
		os.Exit(1)
	}
	pty.Resize(cols, rows)
	activePTY = pty

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "termcoredemo: enter raw mode:", err)
		os.Exit(1)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	fmt.Print("\x1b[?1049h\x1b[2J\x1b[H")
	defer fmt.Print("\x1b[?1049l")

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)

	done := make(chan struct{})

	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := pty.Read(buf)
			if n > 0 {
				tm.Feed(buf[:n])
				redraw(tm)
			}
			if err != nil {
				close(done)
				return
			}
		}
	}()

	go func() {
		buf := make([]byte, 256)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				pty.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-sigwinch:
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				tm.Resize(w, h)
				pty.Resize(w, h)
				redraw(tm)
			}
		case <-done:
			return
		case <-time.After(250 * time.Millisecond):
			redraw(tm)
		}
	}
}

var activePTY PTY

func writePTY(b []byte) {
	if activePTY != nil {
		activePTY.Write(b)
	}
}

// redraw repaints only when the snapshot reports a non-empty dirty range,
// using a full-frame repaint keyed off the snapshot's cell grid — good
// enough for a smoke test, not the differential renderer a real front end
// would use against the bridge subpackage.
func redraw(tm *termcore.Terminal) {
	snap := tm.Snapshot()
	if snap.Dirty.None() {
		return
	}

	cellBridge.Update(snap, glyphOf)
	cellBridge.Swap()
	_ = cellBridge.ReadBuffer() // a GPU front end would upload this; we just print text below

	var b strings.Builder
	b.WriteString("\x1b[H")
	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			cell := snap.Cells[row*snap.Cols+col]
			if cell.Char == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(cell.Char)
		}
		if row != snap.Rows-1 {
			b.WriteString("\r\n")
		}
	}
	fmt.Fprint(os.Stdout, b.String())
	fmt.Fprintf(os.Stdout, "\x1b[%d;%dH", snap.Cursor.Row+1, snap.Cursor.Col+1)
}
