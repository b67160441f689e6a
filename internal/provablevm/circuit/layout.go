// Package circuit arithmetizes the provable VM's execution semantics as a
// gnark R1CS circuit: given a program and its claimed initial/final states
// (baked into the circuit at construction time, fixing its shape), Define
// constrains a flat witness of per-instruction operand/result values to be
// consistent with that program's fixed opcode semantics, and constrains the
// trace commitment exposed as the sole public input.
package circuit

import "github.com/provablevm/provablevm/internal/provablevm/isa"

// witnessCount reports how many free witness slots an instruction consumes,
// per the constraint shapes of §4.4: PUSH needs its pushed value; ADD/SUB
// need their two operands and result; LOAD/STORE need the address and
// value. POP and HALT touch no stack value that isn't already accounted for
// elsewhere and need none.
func witnessCount(op isa.Opcode) int {
	switch op {
	case isa.PUSH:
		return 1
	case isa.ADD, isa.SUB:
		return 3
	case isa.LOAD, isa.STORE:
		return 2
	default:
		return 0
	}
}

// layout is the deterministic map from program instructions to witness
// slots. It is a pure function of the program's opcode sequence, computed
// by a single forward pass, and is recomputed identically by the circuit
// (to size its placeholder witness at compile time) and by the witness
// builder (to size and fill the real witness at proving time) — never by
// ranging over a Go map, so the resulting constraint shape never depends on
// iteration order.
type layout struct {
	offsets []int // offsets[i] = starting index into Witnesses for instruction i
	total   int
}

func computeLayout(program *isa.Program) layout {
	n := program.Len()
	l := layout{offsets: make([]int, n)}
	cursor := 0
	for i := 0; i < n; i++ {
		inst, _ := program.At(i)
		l.offsets[i] = cursor
		cursor += witnessCount(inst.Opcode)
	}
	l.total = cursor
	return l
}
