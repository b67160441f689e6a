package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/provablevm/provablevm/internal/provablevm/isa"
	"github.com/provablevm/provablevm/internal/provablevm/vm"
)

func addProgram() *isa.Program {
	two := isa.Word(2)
	three := isa.Word(3)
	return &isa.Program{Instructions: []isa.Instruction{
		{Opcode: isa.PUSH, Operand: &two},
		{Opcode: isa.PUSH, Operand: &three},
		{Opcode: isa.ADD},
		{Opcode: isa.HALT},
	}}
}

func TestExecutionCircuit_IsSolved(t *testing.T) {
	program := addProgram()

	circuit := NewExecutionCircuit(*program, nil, []isa.Word{5})

	trace, err := vm.NewInterpreter().Run(program)
	require.NoError(t, err)
	values, err := ValuesFromTrace(program, trace)
	require.NoError(t, err)

	assignment, err := NewAssignment(*program, nil, []isa.Word{5}, values, frontend.Variable(7))
	require.NoError(t, err)

	require.NoError(t, test.IsSolved(circuit, assignment, ecc.BLS12_381.ScalarField()))
}

func TestExecutionCircuit_RejectsWrongResult(t *testing.T) {
	program := addProgram()
	circuit := NewExecutionCircuit(*program, nil, []isa.Word{5})

	// Tamper with the ADD result: 2+3 should be 5, not 6.
	values := []isa.Word{2, 3, 3, 2, 6}
	assignment, err := NewAssignment(*program, nil, []isa.Word{5}, values, frontend.Variable(7))
	require.NoError(t, err)

	require.Error(t, test.IsSolved(circuit, assignment, ecc.BLS12_381.ScalarField()))
}

func TestExecutionCircuit_ProverSucceeded(t *testing.T) {
	program := addProgram()
	assert := test.NewAssert(t)

	circuit := NewExecutionCircuit(*program, nil, []isa.Word{5})

	trace, err := vm.NewInterpreter().Run(program)
	require.NoError(t, err)
	values, err := ValuesFromTrace(program, trace)
	require.NoError(t, err)

	assignment, err := NewAssignment(*program, nil, []isa.Word{5}, values, frontend.Variable(7))
	require.NoError(t, err)

	assert.ProverSucceeded(circuit, assignment, test.WithCurves(ecc.BLS12_381))
}

func TestComputeLayout(t *testing.T) {
	program := addProgram()
	l := computeLayout(program)

	want := []int{0, 1, 2, 5}
	for i, off := range want {
		if l.offsets[i] != off {
			t.Errorf("offsets[%d] = %d, want %d", i, l.offsets[i], off)
		}
	}
	if l.total != 5 {
		t.Errorf("total = %d, want 5", l.total)
	}
}
