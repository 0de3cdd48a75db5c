// opcodes_rotate.go - rotate group: RLC, RRC, RAL, RAR

package gtu8080

func initRotateOps() {
	register(0x07, 1, 4, true, false, func(c *CPU) (uint32, error) { c.rlc(); return 4, nil })
	register(0x0F, 1, 4, true, false, func(c *CPU) (uint32, error) { c.rrc(); return 4, nil })
	register(0x17, 1, 4, true, false, func(c *CPU) (uint32, error) { c.ral(); return 4, nil })
	register(0x1F, 1, 4, true, false, func(c *CPU) (uint32, error) { c.rar(); return 4, nil })
}
