// flags.go - the five 8080 condition-code flags and their PSW packing

package gtu8080

// PSW bit positions. Bits 1, 3, 5 are reserved with fixed values 1, 0, 0.
const (
	pswBitCY = 0
	pswBitP  = 2
	pswBitAC = 4
	pswBitZ  = 6
	pswBitS  = 7

	pswReservedBit1 = 1 << 1 // always 1 in the pushed form
)

// Flags holds the five condition codes as independent booleans, per the
// spec's recommendation against a packed bitfield: only PUSH PSW, POP PSW
// and snapshotting need the packed byte, so packing happens at those
// boundaries only (Pack/Unpack below).
type Flags struct {
	S  bool
	Z  bool
	AC bool
	P  bool
	CY bool
}

// Pack returns the PSW byte layout from spec.md §3: CY@0, P@2, AC@4, Z@6,
// S@7, with reserved bit 1 always set and bits 3,5 always clear.
func (f Flags) Pack() byte {
	var b byte
	if f.CY {
		b |= 1 << pswBitCY
	}
	if f.P {
		b |= 1 << pswBitP
	}
	if f.AC {
		b |= 1 << pswBitAC
	}
	if f.Z {
		b |= 1 << pswBitZ
	}
	if f.S {
		b |= 1 << pswBitS
	}
	b |= pswReservedBit1
	return b
}

// Unpack restores the five flags from a PSW byte produced by Pack (or by
// any value POP PSW loads from the stack).
func (f *Flags) Unpack(b byte) {
	f.CY = b&(1<<pswBitCY) != 0
	f.P = b&(1<<pswBitP) != 0
	f.AC = b&(1<<pswBitAC) != 0
	f.Z = b&(1<<pswBitZ) != 0
	f.S = b&(1<<pswBitS) != 0
}

// setZSP derives Z, S and P from a result byte, following every
// flag-affecting instruction's shared rule in spec.md §4.3.
func (f *Flags) setZSP(result byte) {
	f.Z = result == 0
	f.S = result&0x80 != 0
	f.P = Parity(result)
}
