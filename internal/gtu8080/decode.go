// decode.go - opcode dispatch table and the one-instruction execute step

package gtu8080

// opFunc executes one instruction body (the opcode byte has already been
// fetched and PC advanced past it) and returns the cycle count to credit.
type opFunc func(c *CPU) (uint32, error)

// OpInfo is the declarative half of the decoder: the data spec.md §4.4
// asks for alongside the pattern-matched opFunc, kept for introspection
// (profiling, disassembly) rather than driving execution itself, since
// conditional instructions need to compute their own taken/not-taken
// cycle count at runtime.
type OpInfo struct {
	Length        byte
	BaseCycles    byte
	AffectsFlags  bool
	TouchesMemory bool
}

var opcodeTable [256]opFunc
var opInfoTable [256]OpInfo

func register(opcode byte, length, baseCycles byte, affectsFlags, touchesMemory bool, fn opFunc) {
	opcodeTable[opcode] = fn
	opInfoTable[opcode] = OpInfo{length, baseCycles, affectsFlags, touchesMemory}
}

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = opUnimplemented
	}
	initTransferOps()
	initArithOps()
	initLogicOps()
	initRotateOps()
	initBranchOps()
	initStackOps()
	initIOOps()
	initControlOps()
}

func opUnimplemented(c *CPU) (uint32, error) {
	return 0, newError(KindInvalidOpcode, "unimplemented opcode 0x%02X at 0x%04X", c.LastOpcode, c.PC-1)
}

// DebugFrame is the pre-execution snapshot emitted to a debug sink when
// Step(true) is called. Emission never changes control flow (§4.7).
type DebugFrame struct {
	PC      uint16
	Opcode  byte
	A       byte
	B, C    byte
	D, E    byte
	H, L    byte
	Flags   Flags
}

// DebugSink receives one frame per instruction when debug mode is on.
type DebugSink interface {
	OnDebugFrame(DebugFrame)
}

// Execute fetches and executes exactly one instruction at PC, per
// spec.md §4.7(b). It never delivers interrupts; that is Machine.Step's
// job (§4.5). Debug emission happens before dispatch and is purely
// observational.
func (c *CPU) Execute(debug bool, sink DebugSink) (uint32, error) {
	if c.Halted {
		return 4, nil
	}

	opcode := c.mem.Read(c.PC)

	if debug && sink != nil {
		sink.OnDebugFrame(DebugFrame{
			PC: c.PC, Opcode: opcode,
			A: c.A, B: c.B, C: c.C, D: c.D, E: c.E, H: c.H, L: c.L,
			Flags: c.Flags,
		})
	}

	c.PC++
	c.LastOpcode = opcode

	cycles, err := opcodeTable[opcode](c)
	c.finishInstruction()
	if err != nil {
		return 0, err
	}
	return cycles, nil
}

// finishInstruction applies EI's one-instruction-delayed enable, per
// spec.md §4.4's control group note.
func (c *CPU) finishInstruction() {
	if c.ieDelay > 0 {
		c.ieDelay--
		if c.ieDelay == 0 {
			c.IE = true
		}
	}
}

// conditionMet evaluates one of the eight 8080 branch conditions encoded
// in bits 3-4 of a Jcc/Ccc/Rcc opcode: NZ,Z,NC,C,PO,PE,P,M.
func (c *CPU) conditionMet(cc byte) bool {
	switch cc {
	case 0:
		return !c.Flags.Z
	case 1:
		return c.Flags.Z
	case 2:
		return !c.Flags.CY
	case 3:
		return c.Flags.CY
	case 4:
		return !c.Flags.P
	case 5:
		return c.Flags.P
	case 6:
		return !c.Flags.S
	case 7:
		return c.Flags.S
	default:
		return false
	}
}
