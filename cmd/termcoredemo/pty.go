package main

import (
	"io"
	"os/exec"
)

// PTY is the minimal pseudo-terminal surface termcoredemo drives: start a
// shell behind it, pump bytes in both directions, and resize/close it when
// the host terminal does.
type PTY interface {
	io.ReadWriteCloser

	// Start launches cmd with this PTY's slave as its controlling terminal.
	Start(cmd *exec.Cmd) error

	// Resize reports a new terminal size to the kernel/console side.
	Resize(cols, rows int) error
}
