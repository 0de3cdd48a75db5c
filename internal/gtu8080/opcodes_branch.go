// opcodes_branch.go - branch group: JMP/Jcc, CALL/Ccc, RET/Rcc, RST, PCHL

package gtu8080

func initBranchOps() {
	register(0xC3, 3, 10, false, false, func(c *CPU) (uint32, error) {
		c.PC = c.fetchWord()
		return 10, nil
	})

	jccOpcodes := map[byte]byte{0xC2: 0, 0xCA: 1, 0xD2: 2, 0xDA: 3, 0xE2: 4, 0xEA: 5, 0xF2: 6, 0xFA: 7}
	for opcode, cc := range jccOpcodes {
		cond := cc
		register(opcode, 3, 10, false, false, func(c *CPU) (uint32, error) {
			addr := c.fetchWord()
			if c.conditionMet(cond) {
				c.PC = addr
			}
			return 10, nil
		})
	}

	register(0xCD, 3, 17, false, true, func(c *CPU) (uint32, error) {
		addr := c.fetchWord()
		if err := c.pushWord(c.PC); err != nil {
			return 0, err
		}
		c.PC = addr
		return 17, nil
	})

	cccOpcodes := map[byte]byte{0xC4: 0, 0xCC: 1, 0xD4: 2, 0xDC: 3, 0xE4: 4, 0xEC: 5, 0xF4: 6, 0xFC: 7}
	for opcode, cc := range cccOpcodes {
		cond := cc
		register(opcode, 3, 11, false, true, func(c *CPU) (uint32, error) {
			addr := c.fetchWord()
			if !c.conditionMet(cond) {
				return 11, nil
			}
			if err := c.pushWord(c.PC); err != nil {
				return 0, err
			}
			c.PC = addr
			return 17, nil
		})
	}

	register(0xC9, 1, 10, false, true, func(c *CPU) (uint32, error) {
		c.PC = c.popWord()
		return 10, nil
	})

	rccOpcodes := map[byte]byte{0xC0: 0, 0xC8: 1, 0xD0: 2, 0xD8: 3, 0xE0: 4, 0xE8: 5, 0xF0: 6, 0xF8: 7}
	for opcode, cc := range rccOpcodes {
		cond := cc
		register(opcode, 1, 5, false, true, func(c *CPU) (uint32, error) {
			if !c.conditionMet(cond) {
				return 5, nil
			}
			c.PC = c.popWord()
			return 11, nil
		})
	}

	for n := byte(0); n <= 7; n++ {
		opcode := 0xC7 | n<<3
		entry := uint16(n) * 8
		register(opcode, 1, 11, false, true, func(c *CPU) (uint32, error) {
			if opcode == c.TrapOpcode {
				c.syscallPending = true
			}
			if err := c.pushWord(c.PC); err != nil {
				return 0, err
			}
			c.PC = entry
			return 11, nil
		})
	}

	register(0xE9, 1, 5, false, false, func(c *CPU) (uint32, error) {
		c.PC = c.HL()
		return 5, nil
	})
}
