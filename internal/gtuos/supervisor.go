// supervisor.go - GTUOS: the syscall dispatch layer that services a
// trapped 8080 guest. The core engine treats this as opaque; GTUOS
// defines its own call-number convention and owns it entirely.

package gtuos

import (
	"log"

	"github.com/pkg/errors"

	"github.com/gtuos/emu8080/internal/gtu8080"
)

// Call numbers, read from register A on trap. GTUOS keeps these small
// and CP/M-flavored since that's the ABI most 8080 guest code already
// expects from a supervisor.
const (
	CallExit      byte = 0
	CallConsoleIn byte = 1
	CallConsoleOut byte = 2
	CallReadByte  byte = 9
	CallWriteByte byte = 10
	CallYield     byte = 11
)

// Console is the host-facing I/O a supervisor call can touch.
type Console interface {
	ReadByte() (byte, error)
	WriteByte(b byte) error
}

// Handler services one call number. It reads its arguments from CPU
// registers and reports a byte to hand back in A, or an error to
// surface to the host loop.
type Handler func(c *gtu8080.CPU, mem gtu8080.AddressSpace, console Console) (byte, error)

// Supervisor is GTUOS: a registry of call-number handlers dispatched
// when the core reports SyscallPending. Call numbers are read from A
// per the convention above; the core never sees this table.
type Supervisor struct {
	handlers map[byte]Handler
	console  Console
	exited   bool
	exitCode byte
}

// New builds a Supervisor with the standard call table installed.
func New(console Console) *Supervisor {
	s := &Supervisor{handlers: make(map[byte]Handler), console: console}
	s.Connect(CallExit, handleExit)
	s.Connect(CallConsoleIn, handleConsoleIn)
	s.Connect(CallConsoleOut, handleConsoleOut)
	s.Connect(CallReadByte, handleReadByte)
	s.Connect(CallWriteByte, handleWriteByte)
	s.Connect(CallYield, handleYield)
	return s
}

// Connect registers a handler for a call number, overwriting any
// handler previously registered for it. Returns false if the slot was
// already occupied, mirroring the pack's device-registry Connect
// convention without forbidding a deliberate override.
func (s *Supervisor) Connect(call byte, h Handler) bool {
	_, existed := s.handlers[call]
	s.handlers[call] = h
	log.Printf("gtuos: connected call 0x%02X", call)
	return !existed
}

// Exited reports whether a guest has invoked CallExit.
func (s *Supervisor) Exited() (bool, byte) {
	return s.exited, s.exitCode
}

// HandleCall services the pending trap: it reads the call number from
// A, dispatches to the registered handler, writes its result back to
// A, and clears the core's pending flag. mem is passed through so a
// handler can read/write guest memory (e.g. a buffer address in DE).
func (s *Supervisor) HandleCall(c *gtu8080.CPU, mem gtu8080.AddressSpace) error {
	call := c.A
	h, ok := s.handlers[call]
	if !ok {
		c.ClearSyscall()
		return errors.Errorf("gtuos: unhandled call number 0x%02X at PC=0x%04X", call, c.PC)
	}

	result, err := h(c, mem, s.console)
	c.ClearSyscall()
	if err != nil {
		return errors.Wrapf(err, "gtuos: call 0x%02X", call)
	}
	c.A = result
	if call == CallExit {
		s.exited = true
		s.exitCode = result
	}
	return nil
}

func handleExit(c *gtu8080.CPU, mem gtu8080.AddressSpace, console Console) (byte, error) {
	log.Println("gtuos: guest requested exit, code", c.B)
	c.Halted = true
	return c.B, nil
}

func handleConsoleIn(c *gtu8080.CPU, mem gtu8080.AddressSpace, console Console) (byte, error) {
	b, err := console.ReadByte()
	if err != nil {
		return 0, err
	}
	return b, nil
}

func handleConsoleOut(c *gtu8080.CPU, mem gtu8080.AddressSpace, console Console) (byte, error) {
	if err := console.WriteByte(c.B); err != nil {
		return 0, err
	}
	return 0, nil
}

// handleReadByte reads one byte from the guest address in DE into A,
// the trivial memory-peek call a supervisor needs to implement
// anything richer (buffered console reads, a directory listing) on
// top of.
func handleReadByte(c *gtu8080.CPU, mem gtu8080.AddressSpace, console Console) (byte, error) {
	return mem.Read(c.DE()), nil
}

// handleWriteByte writes B to the guest address in DE.
func handleWriteByte(c *gtu8080.CPU, mem gtu8080.AddressSpace, console Console) (byte, error) {
	if err := mem.Write(c.DE(), c.B); err != nil {
		return 0, err
	}
	return 0, nil
}

// handleYield is a no-op: it returns 0 and leaves CPU state and memory
// untouched. Task switching happens only through the scheduler
// interrupt, not through this call.
func handleYield(c *gtu8080.CPU, mem gtu8080.AddressSpace, console Console) (byte, error) {
	return 0, nil
}
