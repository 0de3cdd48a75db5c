// machine.go - Machine composes a CPU with its address space, interrupt
// controller and scheduler, and drives the fetch/execute/interrupt loop
// that spec.md §4.7 describes as one call to Step.

package gtu8080

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithQuantum overrides the scheduler's cycle budget per dispatch.
func WithQuantum(cycles uint32) Option {
	return func(m *Machine) { m.scheduler.quantum = cycles }
}

// WithSchedulerVector overrides the RST vector queued at quantum expiry.
func WithSchedulerVector(vector byte) Option {
	return func(m *Machine) { m.scheduler.vector = vector }
}

// WithTrapOpcode overrides the opcode that sets the host-visible
// syscall-pending flag (default 0xFF, RST 7). Only the eight RST opcodes
// (0xC7 | n<<3) check it; any other value never sets the flag.
func WithTrapOpcode(opcode byte) Option {
	return func(m *Machine) { m.CPU.TrapOpcode = opcode }
}

// WithStackFloor configures the lowest address a push may leave SP at;
// a push that would cross it fails with KindStackOverflow instead of
// silently wrapping. Unconfigured (the default) means no check.
func WithStackFloor(floor uint16) Option {
	return func(m *Machine) { m.CPU.StackFloor = floor }
}

// WithBanks replaces the default single-bank, full-address-space
// mapping with numBanks banks of bankSize bytes each, and installs a
// write-back cache of the given size in front of the bank controller.
func WithBanks(numBanks uint8, bankSize uint32, cacheSize uint32) Option {
	return func(m *Machine) {
		m.Banks = NewBankController(m.Memory, numBanks, bankSize)
		m.Cache = NewByteCache(m.Banks, cacheSize)
		m.CPU.mem = m.Cache
	}
}

// WithoutScheduler disables the quantum-driven preemption hook
// entirely; Step then only ever delivers interrupts queued explicitly
// via Interrupts.Queue.
func WithoutScheduler() Option {
	return func(m *Machine) { m.scheduler = nil }
}

// WithProfiler attaches a per-opcode execution profiler; Step records
// every completed instruction's cycle cost and any cache misses it
// caused into it.
func WithProfiler() Option {
	return func(m *Machine) { m.Profiler = NewProfiler() }
}

// Machine is the runnable unit: a CPU over an AddressSpace, an
// interrupt controller, and (unless disabled) a cooperative scheduler.
type Machine struct {
	CPU        *CPU
	Memory     *Memory
	Banks      *BankController
	Cache      *ByteCache
	Interrupts *InterruptController
	Profiler   *Profiler

	scheduler *scheduler

	instructionCount uint64
}

// NewMachine builds a Machine with one bank spanning the full guest
// address space and no cache, a default 80-cycle quantum dispatching
// RST 1 (0xCF) at priority 0, and trap opcode 0xFF (RST 7), per
// spec.md §3 and §5's defaults. Options apply in order, so
// WithBanks must precede anything that depends on the resulting
// Cache or Banks field.
func NewMachine(opts ...Option) *Machine {
	mem := NewMemory()
	banks := NewBankController(mem, 1, GuestAddressSpace)
	m := &Machine{
		Memory:     mem,
		Banks:      banks,
		Interrupts: NewInterruptController(),
		scheduler:  newScheduler(DefaultQuantum, DefaultSchedulerVector),
	}
	m.CPU = NewCPU(banks, 0xFF)
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Step runs exactly one dispatch cycle: if an interrupt is pending and
// the CPU's interrupt-enable flag is set, it is delivered; otherwise
// one instruction is fetched and executed. Either way cycles are
// credited to the scheduler, and a scheduler interrupt is queued when
// the quantum elapses. debug/sink forward to CPU.Execute unchanged.
func (m *Machine) Step(debug bool, sink DebugSink) (uint32, error) {
	var cycles uint32
	var err error

	var missesBefore uint64
	if m.Cache != nil {
		missesBefore = m.Cache.MissCount()
	}

	if m.Interrupts.Pending() && m.CPU.IE {
		cycles, err = m.deliverInterrupt()
	} else {
		cycles, err = m.CPU.Execute(debug, sink)
	}
	if err != nil {
		return cycles, err
	}

	if m.Profiler != nil {
		m.Profiler.Record(m.CPU.LastOpcode, cycles)
		if m.Cache != nil {
			m.Profiler.RecordCacheMisses(m.CPU.LastOpcode, m.Cache.MissCount()-missesBefore)
		}
	}

	m.instructionCount++
	if m.Cache != nil && m.instructionCount%DefaultCacheFlushInterval == 0 {
		m.Cache.Flush()
	}

	if m.scheduler != nil && m.scheduler.credit(cycles) {
		m.Interrupts.Queue(m.scheduler.vector, DefaultSchedulerPriority)
	}

	return cycles, nil
}

// deliverInterrupt implements spec.md §4.5's five-step acceptance
// protocol: pop the highest-priority request, clear IE so the handler
// runs uninterrupted until it re-enables, un-halt if parked, and
// execute the vector byte as a single opcode in place of a fetch.
func (m *Machine) deliverInterrupt() (uint32, error) {
	vector, err := m.Interrupts.Next()
	if err != nil {
		return 0, err
	}
	m.CPU.IE = false
	if m.CPU.Halted {
		m.CPU.Halted = false
		m.CPU.PC++
	}

	m.CPU.LastOpcode = vector
	cycles, err := opcodeTable[vector](m.CPU)
	m.CPU.finishInstruction()
	return cycles, err
}

// Run steps the machine until it halts with interrupts disabled (the
// spec's definition of program termination) or an error occurs.
func (m *Machine) Run(debug bool, sink DebugSink) error {
	for {
		if m.CPU.Halted && !m.CPU.IE && !m.Interrupts.Pending() {
			return nil
		}
		if _, err := m.Step(debug, sink); err != nil {
			return err
		}
	}
}
