// Package vm implements the provable VM's deterministic interpreter: state
// evolution, trace capture, and the canonical state encoding used for trace
// commitment.
package vm

import (
	"encoding/binary"
	"sort"

	"github.com/provablevm/provablevm/internal/provablevm/isa"
)

// ProvableState is a snapshot (pc, stack, heap, flags) captured once per
// trace entry. Stack is ordered with the top as the last element; heap maps
// address to value with unique keys; flags is carried for trace-schema
// stability but read by no opcode in this version.
type ProvableState struct {
	PC    int
	Stack []isa.Word
	Heap  map[isa.Word]isa.Word
	Flags byte
}

// zeroState returns the trace's mandatory initial element: pc=0, empty
// stack, empty heap, flags=0.
func zeroState() ProvableState {
	return ProvableState{PC: 0, Stack: nil, Heap: map[isa.Word]isa.Word{}, Flags: 0}
}

// clone deep-copies the state so later mutation of the live interpreter
// state cannot retroactively change an already-captured trace entry.
func (s ProvableState) clone() ProvableState {
	stack := make([]isa.Word, len(s.Stack))
	copy(stack, s.Stack)
	heap := make(map[isa.Word]isa.Word, len(s.Heap))
	for k, v := range s.Heap {
		heap[k] = v
	}
	return ProvableState{PC: s.PC, Stack: stack, Heap: heap, Flags: s.Flags}
}

// sortedHeapAddrs returns the state's heap addresses in ascending order, the
// deterministic view CanonicalEncode uses (§6). The circuit's witness layout
// does not range over the heap and does not use it.
func sortedHeapAddrs(heap map[isa.Word]isa.Word) []isa.Word {
	addrs := make([]isa.Word, 0, len(heap))
	for addr := range heap {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

// CanonicalEncode serializes a state per §6's canonical encoding: 4 bytes pc
// (LE), 4 bytes stack length (LE) then stack entries bottom-to-top (4 bytes
// LE each), 4 bytes heap entry count (LE) then address-ascending entries (4
// bytes address + 4 bytes value, both LE), 1 byte flags. No padding.
func (s ProvableState) CanonicalEncode() []byte {
	addrs := sortedHeapAddrs(s.Heap)

	size := 4 + 4 + 4*len(s.Stack) + 4 + 8*len(addrs) + 1
	buf := make([]byte, size)
	offset := 0

	binary.LittleEndian.PutUint32(buf[offset:], uint32(s.PC))
	offset += 4

	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(s.Stack)))
	offset += 4
	for _, v := range s.Stack {
		binary.LittleEndian.PutUint32(buf[offset:], v)
		offset += 4
	}

	binary.LittleEndian.PutUint32(buf[offset:], uint32(len(addrs)))
	offset += 4
	for _, addr := range addrs {
		binary.LittleEndian.PutUint32(buf[offset:], addr)
		offset += 4
		binary.LittleEndian.PutUint32(buf[offset:], s.Heap[addr])
		offset += 4
	}

	buf[offset] = s.Flags
	offset++

	return buf[:offset]
}

// Trace is the finite ordered sequence of states the interpreter captures:
// one entry before each executed instruction, plus one terminal entry.
type Trace struct {
	States []ProvableState
}

// Len returns the number of captured states.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.States)
}

// Final returns the trace's terminal state.
func (t *Trace) Final() ProvableState {
	return t.States[len(t.States)-1]
}
