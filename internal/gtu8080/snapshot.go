// snapshot.go - binary state save/load, no header/version per spec.md §9

package gtu8080

import (
	"encoding/binary"
	"io"
)

// stateHeader is the fixed-size register/flag record written ahead of
// the guest memory image. Field order is the wire format; do not
// reorder without bumping callers that depend on SaveState's layout.
type stateHeader struct {
	A, B, C, D, E, H, L byte
	SP, PC              uint16
	Flags               byte // packed, see flags.go
	IE                  byte // 0 or 1
	Halted              byte // 0 or 1
	TrapOpcode          byte
	Quantum             uint32
}

// SaveState writes stateHeader followed by exactly GuestAddressSpace
// bytes of guest memory (read through the bank controller, so any
// cached dirty bytes are flushed and current mappings are respected).
func (m *Machine) SaveState(w io.Writer) error {
	if m.Cache != nil {
		m.Cache.Flush()
	}

	h := stateHeader{
		A: m.CPU.A, B: m.CPU.B, C: m.CPU.C, D: m.CPU.D, E: m.CPU.E, H: m.CPU.H, L: m.CPU.L,
		SP: m.CPU.SP, PC: m.CPU.PC,
		Flags:      m.CPU.Flags.Pack(),
		TrapOpcode: m.CPU.TrapOpcode,
		Quantum:    m.scheduler.quantum,
	}
	if m.CPU.IE {
		h.IE = 1
	}
	if m.CPU.Halted {
		h.Halted = 1
	}

	if err := binary.Write(w, binary.LittleEndian, h); err != nil {
		return wrap(err, "write state header")
	}

	image := make([]byte, GuestAddressSpace)
	for addr := 0; addr < GuestAddressSpace; addr++ {
		image[addr] = m.Banks.Read(uint16(addr))
	}
	if _, err := w.Write(image); err != nil {
		return wrap(err, "write guest memory image")
	}
	return nil
}

// LoadState reverses SaveState. It writes through the bank controller
// so mapping/read-only rules observed at save time are re-applied
// consistently; a read-only mapping present at load time causes the
// corresponding bytes to be silently skipped rather than erroring the
// whole load, since the image may predate a mapping change.
func (m *Machine) LoadState(r io.Reader) error {
	var h stateHeader
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return wrap(err, "read state header")
	}

	image := make([]byte, GuestAddressSpace)
	if _, err := io.ReadFull(r, image); err != nil {
		return wrap(err, "read guest memory image")
	}

	m.CPU.A, m.CPU.B, m.CPU.C, m.CPU.D, m.CPU.E, m.CPU.H, m.CPU.L = h.A, h.B, h.C, h.D, h.E, h.H, h.L
	m.CPU.SP, m.CPU.PC = h.SP, h.PC
	m.CPU.Flags.Unpack(h.Flags)
	m.CPU.IE = h.IE != 0
	m.CPU.Halted = h.Halted != 0
	m.CPU.TrapOpcode = h.TrapOpcode
	if m.scheduler != nil {
		m.scheduler.quantum = h.Quantum
	}

	for addr := 0; addr < GuestAddressSpace; addr++ {
		_ = m.Banks.Write(uint16(addr), image[addr])
	}
	if m.Cache != nil {
		m.Cache.Flush()
	}
	return nil
}
