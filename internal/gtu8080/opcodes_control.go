// opcodes_control.go - NOP, HLT, EI, DI

package gtu8080

func initControlOps() {
	register(0x00, 1, 4, false, false, func(c *CPU) (uint32, error) {
		return 4, nil
	})

	// HLT parks PC at its own address rather than the generic
	// fetch-advanced position, so the interrupt controller's "advance PC
	// by one" step (spec.md §4.5 step 4) is the only place that moves PC
	// past it, whether delivery happens immediately or many idle Steps
	// later.
	register(0x76, 1, 7, false, false, func(c *CPU) (uint32, error) {
		c.Halted = true
		c.PC--
		return 7, nil
	})

	// IE takes effect after the instruction following EI has executed,
	// so an EI immediately before RET to an interrupt handler cannot
	// itself be interrupted.
	register(0xFB, 1, 4, false, false, func(c *CPU) (uint32, error) {
		c.ieDelay = 2
		return 4, nil
	})

	register(0xF3, 1, 4, false, false, func(c *CPU) (uint32, error) {
		c.IE = false
		c.ieDelay = 0
		return 4, nil
	})
}
