// console.go - raw-terminal Console, grounded on terminal_host.go's
// use of golang.org/x/term for raw-mode stdin handling.

package gtuos

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// TerminalConsole services CallConsoleIn/CallConsoleOut against the
// host's real stdin/stdout, in raw mode so the guest sees every
// keystroke without line buffering or OS echo.
type TerminalConsole struct {
	fd       int
	oldState *term.State
}

// NewTerminalConsole puts stdin into raw mode. Call Close to restore it.
func NewTerminalConsole() (*TerminalConsole, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "gtuos: failed to set raw mode")
	}
	return &TerminalConsole{fd: fd, oldState: oldState}, nil
}

// Close restores the terminal to its prior state.
func (t *TerminalConsole) Close() error {
	return term.Restore(t.fd, t.oldState)
}

// ReadByte blocks for a single byte from stdin, translating CR to LF
// and DEL to BS the way terminal_host.go does for its MMIO device.
func (t *TerminalConsole) ReadByte() (byte, error) {
	buf := make([]byte, 1)
	if _, err := os.Stdin.Read(buf); err != nil {
		return 0, errors.Wrap(err, "gtuos: console read")
	}
	b := buf[0]
	if b == '\r' {
		b = '\n'
	}
	if b == 0x7F {
		b = 0x08
	}
	return b, nil
}

// WriteByte writes a single byte to stdout.
func (t *TerminalConsole) WriteByte(b byte) error {
	_, err := fmt.Fprintf(os.Stdout, "%c", b)
	return err
}
