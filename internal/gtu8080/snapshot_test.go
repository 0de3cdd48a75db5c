package gtu8080

import (
	"bytes"
	"testing"
)

func TestSaveLoadStateRoundTrip(t *testing.T) {
	m := NewMachine()
	m.CPU.A, m.CPU.B = 0x42, 0x13
	m.CPU.SetHL(0xBEEF)
	m.CPU.PC = 0x1000
	m.CPU.Flags.Z = true
	m.CPU.Flags.CY = true
	if err := m.Banks.Write(0x2000, 0x99); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := m.SaveState(&buf); err != nil {
		t.Fatal(err)
	}

	fresh := NewMachine()
	if err := fresh.LoadState(&buf); err != nil {
		t.Fatal(err)
	}

	requireEqualU8(t, "A", fresh.CPU.A, 0x42)
	requireEqualU8(t, "B", fresh.CPU.B, 0x13)
	requireEqualU16(t, "HL", fresh.CPU.HL(), 0xBEEF)
	requireEqualU16(t, "PC", fresh.CPU.PC, 0x1000)
	requireFlag(t, "Z", fresh.CPU.Flags.Z, true)
	requireFlag(t, "CY", fresh.CPU.Flags.CY, true)
	requireEqualU8(t, "mem[0x2000]", fresh.Banks.Read(0x2000), 0x99)
}
