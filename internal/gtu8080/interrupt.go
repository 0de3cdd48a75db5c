// interrupt.go - priority interrupt queue, FIFO within a priority level

package gtu8080

import "container/heap"

// request is one queued interrupt: a vector to execute as a single-byte
// opcode (per spec.md §4.5, normally an RST) and a priority where higher
// values run first.
type request struct {
	vector   byte
	priority int
	seq      int
}

type requestHeap []request

func (h requestHeap) Len() int { return len(h) }
func (h requestHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h requestHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *requestHeap) Push(x any)        { *h = append(*h, x.(request)) }
func (h *requestHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// InterruptController orders pending interrupts by priority and, within
// a priority level, by arrival order.
type InterruptController struct {
	heap requestHeap
	next int

	// bufferAddr is the guest address carried as int_buffer in the
	// original source (8080emuCPP.h); nothing in this package reads it,
	// it is just a configurable value the host can stash and retrieve
	// alongside the interrupt queue.
	bufferAddr uint16
}

// DefaultInterruptBufferAddress is int_buffer's initial value in the
// original source.
const DefaultInterruptBufferAddress = 256

func NewInterruptController() *InterruptController {
	return &InterruptController{bufferAddr: DefaultInterruptBufferAddress}
}

// Queue admits a new interrupt request. Higher priority values are
// serviced first; requests at the same priority are serviced in the
// order they were queued.
func (ic *InterruptController) Queue(vector byte, priority int) {
	heap.Push(&ic.heap, request{vector: vector, priority: priority, seq: ic.next})
	ic.next++
}

// InterruptBufferAddress returns the configured interrupt buffer
// address, default 256.
func (ic *InterruptController) InterruptBufferAddress() uint16 {
	return ic.bufferAddr
}

// SetInterruptBufferAddress reconfigures the interrupt buffer address.
func (ic *InterruptController) SetInterruptBufferAddress(addr uint16) {
	ic.bufferAddr = addr
}

// Pending reports whether any interrupt is waiting.
func (ic *InterruptController) Pending() bool {
	return len(ic.heap) > 0
}

// Next removes and returns the highest-priority pending request, the
// oldest one first among ties.
func (ic *InterruptController) Next() (byte, error) {
	if len(ic.heap) == 0 {
		return 0, newError(KindInvalidInterrupt, "no interrupt pending")
	}
	r := heap.Pop(&ic.heap).(request)
	return r.vector, nil
}
