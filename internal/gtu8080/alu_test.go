package gtu8080

import "testing"

func TestAddSetsCarryAndAuxCarry(t *testing.T) {
	rig := newCPUTestRig()
	c := rig.cpu()
	c.A = 0xFF
	c.add(0x01, 0)
	requireEqualU8(t, "A", c.A, 0x00)
	requireFlag(t, "CY", c.Flags.CY, true)
	requireFlag(t, "AC", c.Flags.AC, true)
	requireFlag(t, "Z", c.Flags.Z, true)
}

func TestSubSetsBorrow(t *testing.T) {
	rig := newCPUTestRig()
	c := rig.cpu()
	c.A = 0x00
	c.sub(0x01, 0)
	requireEqualU8(t, "A", c.A, 0xFF)
	requireFlag(t, "CY", c.Flags.CY, true)
}

func TestSubNoBorrowWhenMinuendLarger(t *testing.T) {
	rig := newCPUTestRig()
	c := rig.cpu()
	c.A = 0x10
	c.sub(0x01, 0)
	requireEqualU8(t, "A", c.A, 0x0F)
	requireFlag(t, "CY", c.Flags.CY, false)
}

func TestDAAAdjustsBothNibbles(t *testing.T) {
	rig := newCPUTestRig()
	c := rig.cpu()
	c.A = 0x9B
	c.Flags.CY = false
	c.Flags.AC = false
	c.daa()
	requireEqualU8(t, "A", c.A, 0x01)
	requireFlag(t, "CY", c.Flags.CY, true)
}

func TestDAALowNibbleOnly(t *testing.T) {
	rig := newCPUTestRig()
	c := rig.cpu()
	c.A = 0x0A
	c.Flags.CY = false
	c.Flags.AC = false
	c.daa()
	requireEqualU8(t, "A", c.A, 0x10)
	requireFlag(t, "CY", c.Flags.CY, false)
}

func TestCMATogglesAllBitsAndPreservesFlags(t *testing.T) {
	rig := newCPUTestRig()
	c := rig.cpu()
	c.A = 0x0F
	c.Flags.Z = true
	c.Flags.CY = true
	c.cma()
	requireEqualU8(t, "A", c.A, 0xF0)
	requireFlag(t, "Z", c.Flags.Z, true)
	requireFlag(t, "CY", c.Flags.CY, true)
}

func TestAndComputesAuxCarryFromOperandsNotResult(t *testing.T) {
	rig := newCPUTestRig()
	c := rig.cpu()
	c.A = 0x08
	c.and(0x00)
	requireEqualU8(t, "A", c.A, 0x00)
	requireFlag(t, "AC", c.Flags.AC, true)
}

func TestDADSetsCarryOnOverflowOnly(t *testing.T) {
	rig := newCPUTestRig()
	c := rig.cpu()
	c.SetHL(0xFFFF)
	c.dad16(0x0001)
	requireEqualU16(t, "HL", c.HL(), 0x0000)
	requireFlag(t, "CY", c.Flags.CY, true)
	requireFlag(t, "Z", c.Flags.Z, false)
}
