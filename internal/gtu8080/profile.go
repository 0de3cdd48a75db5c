// profile.go - per-opcode execution profiler, observational only

package gtu8080

import (
	"fmt"
	"io"
)

type opStat struct {
	count       uint64
	totalCycles uint64
	maxCycles   uint32
	cacheMisses uint64
}

// Profiler accumulates per-opcode timing. Machine.Step calls Record once
// per completed instruction, whether it came from a normal fetch or an
// interrupt vector.
type Profiler struct {
	stats [256]opStat
}

func NewProfiler() *Profiler {
	return &Profiler{}
}

// Record attributes a completed instruction's cycle cost to its opcode.
func (p *Profiler) Record(opcode byte, cycles uint32) {
	s := &p.stats[opcode]
	s.count++
	s.totalCycles += uint64(cycles)
	if cycles > s.maxCycles {
		s.maxCycles = cycles
	}
}

// RecordCacheMisses attributes n cache misses to opcode.
func (p *Profiler) RecordCacheMisses(opcode byte, n uint64) {
	p.stats[opcode].cacheMisses += n
}

// Report writes one line per opcode that was actually executed, in
// opcode order; opcodes never seen are omitted.
func (p *Profiler) Report(w io.Writer) {
	fmt.Fprintln(w, "op | count | total_cycles | avg_cycles | max_cycles | cache_misses")
	for opcode, s := range p.stats {
		if s.count == 0 {
			continue
		}
		avg := float64(s.totalCycles) / float64(s.count)
		fmt.Fprintf(w, "%02X | %d | %d | %.2f | %d | %d\n",
			opcode, s.count, s.totalCycles, avg, s.maxCycles, s.cacheMisses)
	}
}
