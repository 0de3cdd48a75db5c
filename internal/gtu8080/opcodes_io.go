// opcodes_io.go - IN/OUT, the 8080's port-mapped I/O escape hatch

package gtu8080

func initIOOps() {
	register(0xDB, 2, 10, false, false, func(c *CPU) (uint32, error) {
		port := c.fetchByte()
		if c.io.r == nil {
			c.A = 0
			return 10, nil
		}
		c.A = c.io.r.IORead(port)
		return 10, nil
	})

	register(0xD3, 2, 10, false, false, func(c *CPU) (uint32, error) {
		port := c.fetchByte()
		if c.io.w != nil {
			c.io.w.IOWrite(port, c.A)
		}
		return 10, nil
	})
}
