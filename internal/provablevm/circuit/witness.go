package circuit

import (
	"fmt"

	"github.com/provablevm/provablevm/internal/provablevm/isa"
	"github.com/provablevm/provablevm/internal/provablevm/vm"
)

// ValuesFromTrace derives the concrete witness values an already-captured
// trace implies for program's instructions, in the flat layout Define
// expects. The VM never branches, so instruction i's pre-state is always
// trace.States[i] and its post-state is trace.States[i+1]: every
// operand/result §4.4's gates need is already sitting in those two
// snapshots, and no independent re-simulation is required.
func ValuesFromTrace(program *isa.Program, trace *vm.Trace) ([]isa.Word, error) {
	l := computeLayout(program)
	values := make([]isa.Word, l.total)

	steps := trace.Len() - 1
	if steps < 0 {
		return nil, fmt.Errorf("circuit: trace has no states")
	}
	if steps > program.Len() {
		return nil, fmt.Errorf("circuit: trace has more steps (%d) than the program has instructions (%d)", steps, program.Len())
	}

	for i := 0; i < steps; i++ {
		inst, ok := program.At(i)
		if !ok {
			return nil, fmt.Errorf("circuit: trace step %d has no matching instruction", i)
		}
		pre := trace.States[i]
		post := trace.States[i+1]
		slot := l.offsets[i]

		switch inst.Opcode {
		case isa.PUSH:
			values[slot] = top(post.Stack)

		case isa.ADD, isa.SUB:
			if len(pre.Stack) < 2 {
				return nil, fmt.Errorf("circuit: trace step %d's pre-state has fewer than two stack entries for %s", i, inst.Opcode)
			}
			values[slot] = pre.Stack[len(pre.Stack)-1]
			values[slot+1] = pre.Stack[len(pre.Stack)-2]
			values[slot+2] = top(post.Stack)

		case isa.STORE:
			if inst.Operand == nil {
				return nil, fmt.Errorf("circuit: STORE at instruction %d has no address operand", i)
			}
			values[slot] = *inst.Operand
			values[slot+1] = top(pre.Stack)

		case isa.LOAD:
			if inst.Operand == nil {
				return nil, fmt.Errorf("circuit: LOAD at instruction %d has no address operand", i)
			}
			values[slot] = *inst.Operand
			values[slot+1] = top(post.Stack)
		}
	}

	return values, nil
}

// top returns the stack's top element, or 0 for an empty stack (only ever
// read on the post-state of PUSH/LOAD/ADD/SUB and the pre-state of STORE,
// none of which is empty in a successful run).
func top(stack []isa.Word) isa.Word {
	if len(stack) == 0 {
		return 0
	}
	return stack[len(stack)-1]
}
