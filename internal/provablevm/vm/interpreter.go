package vm

import (
	"fmt"

	"github.com/provablevm/provablevm/internal/provablevm/isa"
	"github.com/provablevm/provablevm/internal/provablevm/vmerr"
)

// DefaultMaxSteps is the suggested trace-length cap from §5: the
// interpreter refuses programs whose trace would exceed this many steps.
const DefaultMaxSteps = 1_000_000

// maxWord is the Word domain's exclusive upper bound, 2^32.
const maxWord = uint64(1) << 32

// Interpreter executes a program deterministically, capturing a trace.
type Interpreter struct {
	// MaxSteps caps the number of instructions executed before the
	// interpreter refuses to continue with a StepLimitExceeded error.
	// Zero means DefaultMaxSteps.
	MaxSteps int
}

// NewInterpreter returns an Interpreter configured with DefaultMaxSteps.
func NewInterpreter() *Interpreter {
	return &Interpreter{MaxSteps: DefaultMaxSteps}
}

func (in *Interpreter) maxSteps() int {
	if in.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return in.MaxSteps
}

// Run executes program starting at pc=0 until HALT or pc falls off the end,
// appending a state to the trace before each step and once more after the
// loop. It returns the completed trace on success; on failure it returns no
// trace, per §7's "no partial traces are returned" rule.
func (in *Interpreter) Run(program *isa.Program) (*Trace, error) {
	state := zeroState()
	trace := &Trace{States: make([]ProvableState, 0, program.Len()+1)}

	steps := 0
	for {
		inst, ok := program.At(state.PC)
		if !ok {
			break
		}

		trace.States = append(trace.States, state.clone())

		steps++
		if steps > in.maxSteps() {
			return nil, vmerr.New(vmerr.StepLimitExceeded,
				fmt.Sprintf("trace exceeded configured cap of %d steps", in.maxSteps()))
		}

		halted, err := in.step(&state, inst)
		if err != nil {
			return nil, err
		}
		if halted {
			break
		}
	}

	trace.States = append(trace.States, state.clone())
	return trace, nil
}

// step executes one instruction against state, mutating it in place, and
// reports whether execution should stop (HALT).
func (in *Interpreter) step(state *ProvableState, inst isa.Instruction) (halted bool, err error) {
	switch inst.Opcode {
	case isa.PUSH:
		if inst.Operand == nil {
			return false, vmerr.New(vmerr.MissingOperand, "PUSH requires an operand")
		}
		state.Stack = append(state.Stack, *inst.Operand)
		state.PC++

	case isa.POP:
		if len(state.Stack) < 1 {
			return false, vmerr.New(vmerr.StackUnderflow, "POP requires at least one element on the stack")
		}
		state.Stack = state.Stack[:len(state.Stack)-1]
		state.PC++

	case isa.ADD:
		if len(state.Stack) < 2 {
			return false, vmerr.New(vmerr.StackUnderflow, "ADD requires two elements on the stack")
		}
		a := state.Stack[len(state.Stack)-1]
		b := state.Stack[len(state.Stack)-2]
		state.Stack = state.Stack[:len(state.Stack)-2]
		sum := uint64(a) + uint64(b)
		if sum >= maxWord {
			return false, vmerr.New(vmerr.ArithmeticOverflow,
				fmt.Sprintf("ADD(%d, %d) overflows the 32-bit word domain", a, b))
		}
		state.Stack = append(state.Stack, isa.Word(sum))
		state.PC++

	case isa.SUB:
		if len(state.Stack) < 2 {
			return false, vmerr.New(vmerr.StackUnderflow, "SUB requires two elements on the stack")
		}
		a := state.Stack[len(state.Stack)-1]
		b := state.Stack[len(state.Stack)-2]
		state.Stack = state.Stack[:len(state.Stack)-2]
		if b < a {
			return false, vmerr.New(vmerr.ArithmeticUnderflow,
				fmt.Sprintf("SUB(%d, %d) underflows: b < a", b, a))
		}
		state.Stack = append(state.Stack, b-a)
		state.PC++

	case isa.LOAD:
		if inst.Operand == nil {
			return false, vmerr.New(vmerr.MissingOperand, "LOAD requires an address operand")
		}
		v, ok := state.Heap[*inst.Operand]
		if !ok {
			return false, vmerr.New(vmerr.HeapMiss, fmt.Sprintf("LOAD: address %d not found", *inst.Operand))
		}
		state.Stack = append(state.Stack, v)
		state.PC++

	case isa.STORE:
		if inst.Operand == nil {
			return false, vmerr.New(vmerr.MissingOperand, "STORE requires an address operand")
		}
		if len(state.Stack) < 1 {
			return false, vmerr.New(vmerr.StackUnderflow, "STORE requires a value on the stack")
		}
		v := state.Stack[len(state.Stack)-1]
		state.Stack = state.Stack[:len(state.Stack)-1]
		state.Heap[*inst.Operand] = v
		state.PC++

	case isa.JMP, isa.JZ:
		return false, vmerr.New(vmerr.UnsupportedOpcode,
			fmt.Sprintf("%s is reserved but unimplemented in this core version", inst.Opcode))

	case isa.HALT:
		return true, nil

	default:
		return false, vmerr.New(vmerr.UnsupportedOpcode, fmt.Sprintf("unrecognized opcode %s", inst.Opcode))
	}

	return false, nil
}
