package vm

import (
	"bytes"
	"testing"

	"github.com/provablevm/provablevm/internal/provablevm/isa"
)

func TestZeroStateCanonicalEncode(t *testing.T) {
	s := zeroState()
	buf := s.CanonicalEncode()
	// pc(4) + stack-len(4) + heap-count(4) + flags(1), no stack/heap entries
	want := []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(buf, want) {
		t.Errorf("CanonicalEncode() = %x, want %x", buf, want)
	}
}

func TestCanonicalEncodeStackAndHeap(t *testing.T) {
	s := ProvableState{
		PC:    2,
		Stack: []isa.Word{10, 20},
		Heap:  map[isa.Word]isa.Word{5: 50, 1: 10},
		Flags: 0,
	}
	buf := s.CanonicalEncode()

	// heap entries must appear address-ascending (1 before 5) regardless of
	// map iteration order.
	addr1Offset := 4 + 4 + 4*2 + 4
	addr5Offset := addr1Offset + 8
	if got := leUint32(buf[addr1Offset:]); got != 1 {
		t.Errorf("first heap address = %d, want 1", got)
	}
	if got := leUint32(buf[addr5Offset:]); got != 5 {
		t.Errorf("second heap address = %d, want 5", got)
	}
}

func TestCanonicalEncodeDeterministicAcrossHeapInsertionOrder(t *testing.T) {
	a := ProvableState{PC: 0, Stack: nil, Heap: map[isa.Word]isa.Word{}}
	b := ProvableState{PC: 0, Stack: nil, Heap: map[isa.Word]isa.Word{}}
	for _, addr := range []isa.Word{3, 1, 2} {
		a.Heap[addr] = addr * 10
	}
	for _, addr := range []isa.Word{2, 3, 1} {
		b.Heap[addr] = addr * 10
	}
	if !bytes.Equal(a.CanonicalEncode(), b.CanonicalEncode()) {
		t.Error("CanonicalEncode() depends on heap insertion order, want address-sorted determinism")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := ProvableState{PC: 1, Stack: []isa.Word{1}, Heap: map[isa.Word]isa.Word{0: 9}}
	c := s.clone()
	c.Stack[0] = 99
	c.Heap[0] = 100
	c.PC = 2
	if s.Stack[0] != 1 || s.Heap[0] != 9 || s.PC != 1 {
		t.Error("mutating a clone affected the original state")
	}
}

func TestSortedHeapAddrs(t *testing.T) {
	heap := map[isa.Word]isa.Word{5: 0, 1: 0, 3: 0}
	addrs := sortedHeapAddrs(heap)
	want := []isa.Word{1, 3, 5}
	if len(addrs) != len(want) {
		t.Fatalf("len = %d, want %d", len(addrs), len(want))
	}
	for i := range want {
		if addrs[i] != want[i] {
			t.Errorf("addrs[%d] = %d, want %d", i, addrs[i], want[i])
		}
	}
}

func TestTraceFinal(t *testing.T) {
	trace := &Trace{States: []ProvableState{zeroState(), {PC: 1}}}
	if trace.Final().PC != 1 {
		t.Errorf("Final().PC = %d, want 1", trace.Final().PC)
	}
	if trace.Len() != 2 {
		t.Errorf("Len() = %d, want 2", trace.Len())
	}
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
