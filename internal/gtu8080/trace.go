// trace.go - bounded instruction trace, observational only

package gtu8080

import (
	"fmt"
	"io"
)

// TraceEntry is one recorded instruction, captured pre-execution.
type TraceEntry struct {
	PC      uint16
	Opcode  byte
	A       byte
	B, C    byte
	D, E    byte
	H, L    byte
	Flags   Flags
	Cycle   uint64
}

// Tracer is a bounded ring buffer of TraceEntry that implements
// DebugSink, so it plugs directly into CPU.Execute/Machine.Step as the
// sink argument. Recording never influences execution.
type Tracer struct {
	entries []TraceEntry
	head    int
	count   int
	cycle   uint64
}

// NewTracer allocates a ring buffer holding the most recent capacity
// entries; once full, the oldest entry is overwritten.
func NewTracer(capacity int) *Tracer {
	if capacity <= 0 {
		capacity = 256
	}
	return &Tracer{entries: make([]TraceEntry, capacity)}
}

// OnDebugFrame implements DebugSink.
func (t *Tracer) OnDebugFrame(f DebugFrame) {
	t.entries[t.head] = TraceEntry{
		PC: f.PC, Opcode: f.Opcode,
		A: f.A, B: f.B, C: f.C, D: f.D, E: f.E, H: f.H, L: f.L,
		Flags: f.Flags, Cycle: t.cycle,
	}
	t.head = (t.head + 1) % len(t.entries)
	if t.count < len(t.entries) {
		t.count++
	}
	t.cycle++
}

// Entries returns recorded entries in chronological order, oldest first.
func (t *Tracer) Entries() []TraceEntry {
	out := make([]TraceEntry, t.count)
	start := (t.head - t.count + len(t.entries)) % len(t.entries)
	for i := 0; i < t.count; i++ {
		out[i] = t.entries[(start+i)%len(t.entries)]
	}
	return out
}

func flagChar(set bool, c byte) byte {
	if set {
		return c
	}
	return '.'
}

// DumpHuman renders the trace as a fixed-width table:
// PC | opcode | A B C D E H L | ZSPCA | cycle
func (t *Tracer) DumpHuman(w io.Writer) {
	fmt.Fprintln(w, "PC   | op | A  B  C  D  E  H  L  | ZSPCA | cycle")
	fmt.Fprintln(w, "-----+----+----------------------+-------+------")
	for _, e := range t.Entries() {
		flags := []byte{
			flagChar(e.Flags.Z, 'Z'),
			flagChar(e.Flags.S, 'S'),
			flagChar(e.Flags.P, 'P'),
			flagChar(e.Flags.CY, 'C'),
			flagChar(e.Flags.AC, 'A'),
		}
		fmt.Fprintf(w, "%04X | %02X | %02X %02X %02X %02X %02X %02X %02X | %s | %d\n",
			e.PC, e.Opcode, e.A, e.B, e.C, e.D, e.E, e.H, e.L, flags, e.Cycle)
	}
}
