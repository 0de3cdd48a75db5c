package gtuos

import (
	"errors"
	"testing"

	"github.com/gtuos/emu8080/internal/gtu8080"
)

type fakeConsole struct {
	in  []byte
	out []byte
}

func (f *fakeConsole) ReadByte() (byte, error) {
	if len(f.in) == 0 {
		return 0, errors.New("no more input")
	}
	b := f.in[0]
	f.in = f.in[1:]
	return b, nil
}

func (f *fakeConsole) WriteByte(b byte) error {
	f.out = append(f.out, b)
	return nil
}

func newTestMachine() *gtu8080.Machine {
	return gtu8080.NewMachine()
}

func TestExitCallHaltsAndReturnsCode(t *testing.T) {
	m := newTestMachine()
	m.CPU.A = CallExit
	m.CPU.B = 7

	s := New(&fakeConsole{})
	if err := s.HandleCall(m.CPU, m.Banks); err != nil {
		t.Fatal(err)
	}
	if !m.CPU.Halted {
		t.Fatalf("CallExit should halt the CPU")
	}
	exited, code := s.Exited()
	if !exited || code != 7 {
		t.Fatalf("Exited() = (%v, %d), want (true, 7)", exited, code)
	}
}

func TestConsoleOutCallWritesRegisterB(t *testing.T) {
	m := newTestMachine()
	m.CPU.A = CallConsoleOut
	m.CPU.B = 'x'

	console := &fakeConsole{}
	s := New(console)
	if err := s.HandleCall(m.CPU, m.Banks); err != nil {
		t.Fatal(err)
	}
	if len(console.out) != 1 || console.out[0] != 'x' {
		t.Fatalf("console output = %v, want [x]", console.out)
	}
}

func TestReadWriteByteCallsTouchGuestMemory(t *testing.T) {
	m := newTestMachine()
	m.CPU.A = CallWriteByte
	m.CPU.SetDE(0x3000)
	m.CPU.B = 0x55

	s := New(&fakeConsole{})
	if err := s.HandleCall(m.CPU, m.Banks); err != nil {
		t.Fatal(err)
	}
	requireGuestByte(t, m, 0x3000, 0x55)

	m.CPU.A = CallReadByte
	m.CPU.SetDE(0x3000)
	if err := s.HandleCall(m.CPU, m.Banks); err != nil {
		t.Fatal(err)
	}
	if m.CPU.A != 0x55 {
		t.Fatalf("CallReadByte result in A = 0x%02X, want 0x55", m.CPU.A)
	}
}

func TestUnhandledCallNumberReturnsError(t *testing.T) {
	m := newTestMachine()
	m.CPU.A = 0xEE
	s := New(&fakeConsole{})
	if err := s.HandleCall(m.CPU, m.Banks); err == nil {
		t.Fatalf("unregistered call number should error")
	}
	if m.CPU.SyscallPending() {
		t.Fatalf("HandleCall should clear the pending flag even on error")
	}
}

func requireGuestByte(t *testing.T, m *gtu8080.Machine, addr uint16, want byte) {
	t.Helper()
	if got := m.Banks.Read(addr); got != want {
		t.Fatalf("mem[0x%04X] = 0x%02X, want 0x%02X", addr, got, want)
	}
}
