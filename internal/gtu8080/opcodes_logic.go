// opcodes_logic.go - logic group: ANA/XRA/ORA/CMP, ANI/XRI/ORI/CPI,
// CMA, CMC, STC

package gtu8080

func initLogicOps() {
	type logicOp struct {
		base byte
		fn   func(c *CPU, v byte)
	}
	ops := []logicOp{
		{0xA0, func(c *CPU, v byte) { c.and(v) }},
		{0xA8, func(c *CPU, v byte) { c.xor(v) }},
		{0xB0, func(c *CPU, v byte) { c.or(v) }},
		{0xB8, func(c *CPU, v byte) { c.cmpOnly(v) }},
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
		0xE6: func(c *CPU, v byte) { c.and(v) },
		0xEE: func(c *CPU, v byte) { c.xor(v) },
		0xF6: func(c *CPU, v byte) { c.or(v) },
		0xFE: func(c *CPU, v byte) { c.cmpOnly(v) },
	}
	for opcode, fn := range immOps {
		f := fn
		register(opcode, 2, 7, true, false, func(c *CPU) (uint32, error) {
			f(c, c.fetchByte())
			return 7, nil
		})
	}

	register(0x2F, 1, 4, false, false, func(c *CPU) (uint32, error) {
		c.cma()
		return 4, nil
	})
	register(0x3F, 1, 4, true, false, func(c *CPU) (uint32, error) {
		c.cmc()
		return 4, nil
	})
	register(0x37, 1, 4, true, false, func(c *CPU) (uint32, error) {
		c.stc()
		return 4, nil
	})
}
