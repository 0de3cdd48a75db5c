// opcodes_transfer.go - data transfer group: MOV, MVI, LXI, LDA/STA,
// LDAX/STAX, LHLD/SHLD, XCHG

package gtu8080

func initTransferOps() {
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 { // HLT lives in this range; see opcodes_control.go
			continue
		}
		dst := byte((opcode >> 3) & 0x07)
		src := byte(opcode & 0x07)
		cycles := byte(5)
		if dst == RegM || src == RegM {
			cycles = 7
		}
		register(byte(opcode), 1, cycles, false, dst == RegM || src == RegM, func(c *CPU) (uint32, error) {
			return opMOV(c, dst, src)
		})
	}

	mviOpcodes := map[byte]byte{
		0x06: RegB, 0x0E: RegC, 0x16: RegD, 0x1E: RegE,
		0x26: RegH, 0x2E: RegL, 0x36: RegM, 0x3E: RegA,
	}
	for opcode, dst := range mviOpcodes {
		d := dst
		cycles := byte(7)
		if d == RegM {
			cycles = 10
		}
		register(opcode, 2, cycles, false, d == RegM, func(c *CPU) (uint32, error) {
			return opMVI(c, d)
		})
	}

	lxiOpcodes := map[byte]byte{0x01: PairBC, 0x11: PairDE, 0x21: PairHL, 0x31: PairSP}
	for opcode, pair := range lxiOpcodes {
		p := pair
		register(opcode, 3, 10, false, false, func(c *CPU) (uint32, error) {
			c.SetPair(p, c.fetchWord())
			return 10, nil
		})
	}

	register(0x3A, 3, 13, false, true, opLDA)
	register(0x32, 3, 13, false, true, opSTA)
	register(0x2A, 3, 16, false, true, opLHLD)
	register(0x22, 3, 16, false, true, opSHLD)

	register(0x0A, 1, 7, false, true, func(c *CPU) (uint32, error) {
		c.A = c.mem.Read(c.BC())
		return 7, nil
	})
	register(0x1A, 1, 7, false, true, func(c *CPU) (uint32, error) {
		c.A = c.mem.Read(c.DE())
		return 7, nil
	})
	register(0x02, 1, 7, false, true, func(c *CPU) (uint32, error) {
		return 7, c.mem.Write(c.BC(), c.A)
	})
	register(0x12, 1, 7, false, true, func(c *CPU) (uint32, error) {
		return 7, c.mem.Write(c.DE(), c.A)
	})

	register(0xEB, 1, 4, false, false, func(c *CPU) (uint32, error) {
		c.H, c.L, c.D, c.E = c.D, c.E, c.H, c.L
		return 4, nil
	})
}

func opMOV(c *CPU, dst, src byte) (uint32, error) {
	value := c.reg8(src)
	if err := c.setReg8(dst, value); err != nil {
		return 0, err
	}
	if dst == RegM || src == RegM {
		return 7, nil
	}
	return 5, nil
}

func opMVI(c *CPU, dst byte) (uint32, error) {
	value := c.fetchByte()
	if err := c.setReg8(dst, value); err != nil {
		return 0, err
	}
	if dst == RegM {
		return 10, nil
	}
	return 7, nil
}

func opLDA(c *CPU) (uint32, error) {
	addr := c.fetchWord()
	c.A = c.mem.Read(addr)
	return 13, nil
}

func opSTA(c *CPU) (uint32, error) {
	addr := c.fetchWord()
	return 13, c.mem.Write(addr, c.A)
}

func opLHLD(c *CPU) (uint32, error) {
	addr := c.fetchWord()
	c.L = c.mem.Read(addr)
	c.H = c.mem.Read(addr + 1)
	return 16, nil
}

func opSHLD(c *CPU) (uint32, error) {
	addr := c.fetchWord()
	if err := c.mem.Write(addr, c.L); err != nil {
		return 0, err
	}
	return 16, c.mem.Write(addr+1, c.H)
}
