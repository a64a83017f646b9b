//go:build !windows
// +build !windows

package main

/*
#define _XOPEN_SOURCE 600
#include <stdlib.h>
#include <string.h>
#include <fcntl.h>
#include <unistd.h>
#include <sys/ioctl.h>

// termcore_pty_open opens /dev/ptmx and performs the grantpt/unlockpt
// handshake in one call, so the Go side only ever sees a ready-to-open
// master fd rather than juggling three separate syscalls across the
// cgo boundary.
static int termcore_pty_open(void) {
    int fd = open("/dev/ptmx", O_RDWR | O_NOCTTY);
    if (fd < 0) {
        return -1;
    }
    if (grantpt(fd) != 0 || unlockpt(fd) != 0) {
        close(fd);
        return -1;
    }
    return fd;
}

// termcore_pty_slave_path writes the slave device path for master fd into
// buf (size buflen) and returns 0, or -1 if ptsname fails or doesn't fit.
static int termcore_pty_slave_path(int fd, char *buf, size_t buflen) {
    char *name = ptsname(fd);
    if (name == NULL || strlen(name) >= buflen) {
        return -1;
    }
    strcpy(buf, name);
    return 0;
}

// termcore_pty_setsize applies rows/cols (and, best-effort, a pixel size
// of zero since termcoredemo never tracks cell-pixel dimensions).
static int termcore_pty_setsize(int fd, unsigned short rows, unsigned short cols) {
    struct winsize ws = {.ws_row = rows, .ws_col = cols};
    return ioctl(fd, TIOCSWINSZ, &ws);
}
*/
import "C"

import (
	"errors"
	"os"
	"os/exec"
	"sync"
	"syscall"
)

// UnixPTY is a pty(7) pair opened through glibc's ptmx helpers.
type UnixPTY struct {
	master *os.File
	slave  *os.File

	closeOnce sync.Once
}

// NewPTY opens a fresh Unix PTY pair.
func NewPTY() (PTY, error) {
	fd := C.termcore_pty_open()
	if fd < 0 {
		return nil, errors.New("termcoredemo: open /dev/ptmx: grantpt/unlockpt failed")
	}
	master := os.NewFile(uintptr(fd), "/dev/ptmx")

	var buf [256]C.char
	if C.termcore_pty_slave_path(fd, &buf[0], C.size_t(len(buf))) != 0 {
		master.Close()
		return nil, errors.New("termcoredemo: ptsname failed")
	}

	slave, err := os.OpenFile(C.GoString(&buf[0]), os.O_RDWR, 0)
	if err != nil {
		master.Close()
		return nil, err
	}
	return &UnixPTY{master: master, slave: slave}, nil
}

// Start runs cmd with the PTY slave as stdin/stdout/stderr and controlling
// terminal, then closes the parent's copy of the slave fd.
func (p *UnixPTY) Start(cmd *exec.Cmd) error {
	cmd.Stdin, cmd.Stdout, cmd.Stderr = p.slave, p.slave, p.slave
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid:  true,
		Setctty: true,
		Ctty:    0,
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	p.slave.Close()
	p.slave = nil
	return nil
}

func (p *UnixPTY) Read(b []byte) (int, error)  { return p.master.Read(b) }
func (p *UnixPTY) Write(b []byte) (int, error) { return p.master.Write(b) }

// Resize applies a TIOCSWINSZ for the new terminal size.
func (p *UnixPTY) Resize(cols, rows int) error {
	if C.termcore_pty_setsize(C.int(p.master.Fd()), C.ushort(rows), C.ushort(cols)) != 0 {
		return errors.New("termcoredemo: TIOCSWINSZ failed")
	}
	return nil
}

// Close releases the slave (if Start never ran) and master fds exactly
// once, so a caller that closes both on an error path and in a deferred
// cleanup doesn't double-close the master.
func (p *UnixPTY) Close() error {
	var err error
	p.closeOnce.Do(func() {
		if p.slave != nil {
			p.slave.Close()
		}
		err = p.master.Close()
	})
	return err
}
