// opcodes_stack.go - stack group: PUSH, POP, XTHL, SPHL

package gtu8080

func initStackOps() {
	pushOpcodes := map[byte]byte{0xC5: PairBC, 0xD5: PairDE, 0xE5: PairHL, 0xF5: PairPSW}
	for opcode, pair := range pushOpcodes {
		p := pair
		register(opcode, 1, 11, false, true, func(c *CPU) (uint32, error) {
			return 11, c.pushWord(c.Pair(p))
		})
	}

	popOpcodes := map[byte]byte{0xC1: PairBC, 0xD1: PairDE, 0xE1: PairHL, 0xF1: PairPSW}
	for opcode, pair := range popOpcodes {
		p := pair
		register(opcode, 1, 10, p == PairPSW, true, func(c *CPU) (uint32, error) {
			c.SetPair(p, c.popWord())
			return 10, nil
		})
	}

	register(0xE3, 1, 18, false, true, func(c *CPU) (uint32, error) {
		loAddr, hiAddr := c.SP, c.SP+1
		lo, hi := c.mem.Read(loAddr), c.mem.Read(hiAddr)
		if err := c.mem.Write(loAddr, c.L); err != nil {
			return 0, err
		}
		if err := c.mem.Write(hiAddr, c.H); err != nil {
			return 0, err
		}
		c.L, c.H = lo, hi
		return 18, nil
	})

	register(0xF9, 1, 5, false, false, func(c *CPU) (uint32, error) {
		c.SP = c.HL()
		return 5, nil
	})
}
