// opcodes_arith.go - arithmetic group: ADD/ADC/SUB/SBB, ADI/ACI/SUI/SBI,
// INR/DCR, INX/DCX, DAD, DAA

package gtu8080

func initArithOps() {
	type aluOp struct {
		base byte
		fn   func(c *CPU, val byte)
	}
	ops := []aluOp{
		{0x80, func(c *CPU, v byte) { c.add(v, 0) }},
		{0x88, func(c *CPU, v byte) { c.add(v, boolBit(c.Flags.CY)) }},
		{0x90, func(c *CPU, v byte) { c.sub(v, 0) }},
		{0x98, func(c *CPU, v byte) { c.sub(v, boolBit(c.Flags.CY)) }},
	}
	for _, op := range ops {
		for src := byte(0); src <= 7; src++ {
			opcode := op.base + src
			s := src
			fn := op.fn
			cycles := byte(4)
			if s == RegM {
				cycles = 7
			}
			register(opcode, 1, cycles, true, s == RegM, func(c *CPU) (uint32, error) {
				fn(c, c.reg8(s))
				if s == RegM {
					return 7, nil
				}
				return 4, nil
			})
		}
	}

	immOps := map[byte]func(c *CPU, v byte){
		0xC6: func(c *CPU, v byte) { c.add(v, 0) },
		0xCE: func(c *CPU, v byte) { c.add(v, boolBit(c.Flags.CY)) },
		0xD6: func(c *CPU, v byte) { c.sub(v, 0) },
		0xDE: func(c *CPU, v byte) { c.sub(v, boolBit(c.Flags.CY)) },
	}
	for opcode, fn := range immOps {
		f := fn
		register(opcode, 2, 7, true, false, func(c *CPU) (uint32, error) {
			f(c, c.fetchByte())
			return 7, nil
		})
	}

	inrOpcodes := map[byte]byte{0x04: RegB, 0x0C: RegC, 0x14: RegD, 0x1C: RegE, 0x24: RegH, 0x2C: RegL, 0x34: RegM, 0x3C: RegA}
	for opcode, reg := range inrOpcodes {
		r := reg
		cycles := byte(5)
		if r == RegM {
			cycles = 10
		}
		register(opcode, 1, cycles, true, r == RegM, func(c *CPU) (uint32, error) {
			if err := c.setReg8(r, c.inr(c.reg8(r))); err != nil {
				return 0, err
			}
			if r == RegM {
				return 10, nil
			}
			return 5, nil
		})
	}

	dcrOpcodes := map[byte]byte{0x05: RegB, 0x0D: RegC, 0x15: RegD, 0x1D: RegE, 0x25: RegH, 0x2D: RegL, 0x35: RegM, 0x3D: RegA}
	for opcode, reg := range dcrOpcodes {
		r := reg
		cycles := byte(5)
		if r == RegM {
			cycles = 10
		}
		register(opcode, 1, cycles, true, r == RegM, func(c *CPU) (uint32, error) {
			if err := c.setReg8(r, c.dcr(c.reg8(r))); err != nil {
				return 0, err
			}
			if r == RegM {
				return 10, nil
			}
			return 5, nil
		})
	}

	inxOpcodes := map[byte]byte{0x03: PairBC, 0x13: PairDE, 0x23: PairHL, 0x33: PairSP}
	for opcode, pair := range inxOpcodes {
		p := pair
		register(opcode, 1, 5, false, false, func(c *CPU) (uint32, error) {
			c.SetPair(p, c.Pair(p)+1)
			return 5, nil
		})
	}

	dcxOpcodes := map[byte]byte{0x0B: PairBC, 0x1B: PairDE, 0x2B: PairHL, 0x3B: PairSP}
	for opcode, pair := range dcxOpcodes {
		p := pair
		register(opcode, 1, 5, false, false, func(c *CPU) (uint32, error) {
			c.SetPair(p, c.Pair(p)-1)
			return 5, nil
		})
	}

	dadOpcodes := map[byte]byte{0x09: PairBC, 0x19: PairDE, 0x29: PairHL, 0x39: PairSP}
	for opcode, pair := range dadOpcodes {
		p := pair
		register(opcode, 1, 10, true, false, func(c *CPU) (uint32, error) {
			c.dad16(c.Pair(p))
			return 10, nil
		})
	}

	register(0x27, 1, 4, true, false, func(c *CPU) (uint32, error) {
		c.daa()
		return 4, nil
	})
}
