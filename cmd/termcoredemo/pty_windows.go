//go:build windows
// +build windows

package main

import (
	"errors"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"unsafe"
)

var (
	kernel32                = syscall.NewLazyDLL("kernel32.dll")
	procCreatePseudoConsole = kernel32.NewProc("CreatePseudoConsole")
	procResizePseudoConsole = kernel32.NewProc("ResizePseudoConsole")
	procClosePseudoConsole  = kernel32.NewProc("ClosePseudoConsole")
)

// coord packs a ConPTY size the way CreatePseudoConsole/ResizePseudoConsole
// expect it: X/Y as a single COORD value passed by its 32-bit bit pattern.
type coord struct {
	X, Y int16
}

func (c coord) packed() uintptr { return uintptr(*(*uint32)(unsafe.Pointer(&c))) }

// hpcon is a handle to a Windows pseudo console.
type hpcon syscall.Handle

// ConPTY implements PTY on top of the Win32 ConPTY API.
type ConPTY struct {
	mu      sync.Mutex
	handle  hpcon
	pipeIn  *os.File // termcoredemo writes here; the console reads it
	pipeOut *os.File // the console writes here; termcoredemo reads it

	closeOnce sync.Once
}

// NewPTY creates an 80x24 pseudo console; the caller resizes it to the
// host terminal with Resize.
func NewPTY() (PTY, error) {
	return newConPTY(80, 24)
}

func newConPTY(cols, rows int) (*ConPTY, error) {
	inputRead, inputWrite, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	outputRead, outputWrite, err := os.Pipe()
	if err != nil {
		inputRead.Close()
		inputWrite.Close()
		return nil, err
	}

	var h hpcon
	r, _, _ := procCreatePseudoConsole.Call(
		coord{X: int16(cols), Y: int16(rows)}.packed(),
		inputRead.Fd(),
		outputWrite.Fd(),
		0,
		uintptr(unsafe.Pointer(&h)),
	)
	inputRead.Close()
	outputWrite.Close()
	if r != 0 {
		inputWrite.Close()
		outputRead.Close()
		return nil, errors.New("termcoredemo: CreatePseudoConsole failed")
	}

	return &ConPTY{handle: h, pipeIn: inputWrite, pipeOut: outputRead}, nil
}

// Start launches cmd with its stdio wired to the pseudo console's pipes.
// termcoredemo never needs the STARTUPINFOEX/PROC_THREAD_ATTRIBUTE_PSEUDOCONSOLE
// dance a real console-host replacement would use to make child processes
// attach to the ConPTY directly; routing stdio through the pipes is enough
// for a byte-pump smoke test.
func (p *ConPTY) Start(cmd *exec.Cmd) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	cmd.Stdin, cmd.Stdout, cmd.Stderr = p.pipeIn, p.pipeOut, p.pipeOut
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}
	return cmd.Start()
}

func (p *ConPTY) Read(b []byte) (int, error)  { return p.pipeOut.Read(b) }
func (p *ConPTY) Write(b []byte) (int, error) { return p.pipeIn.Write(b) }

// Resize calls ResizePseudoConsole with the new cell dimensions.
func (p *ConPTY) Resize(cols, rows int) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	r, _, _ := procResizePseudoConsole.Call(
		uintptr(p.handle),
		coord{X: int16(cols), Y: int16(rows)}.packed(),
	)
	if r != 0 {
		return errors.New("termcoredemo: ResizePseudoConsole failed")
	}
	return nil
}

// Close tears down the pseudo console and its pipes exactly once.
func (p *ConPTY) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.pipeIn.Close()
		p.pipeOut.Close()
		if p.handle != 0 {
			procClosePseudoConsole.Call(uintptr(p.handle))
			p.handle = 0
		}
	})
	return nil
}
