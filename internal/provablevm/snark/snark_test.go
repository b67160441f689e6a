package snark

import (
	"bytes"
	"testing"

	"github.com/consensys/gnark/frontend"
	"github.com/stretchr/testify/require"

	"github.com/provablevm/provablevm/internal/provablevm/circuit"
	"github.com/provablevm/provablevm/internal/provablevm/commit"
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

func TestEndToEndProveAndVerify(t *testing.T) {
	program := addProgram()

	trace, err := vm.NewInterpreter().Run(program)
	require.NoError(t, err)

	digest := commit.Commit(trace)
	fieldCommitment := CommitmentToFieldElement(digest)

	c := circuit.NewExecutionCircuit(*program, nil, []isa.Word{5})
	ccs, err := Compile(c)
	require.NoError(t, err)

	keys, err := Setup(ccs)
	require.NoError(t, err)

	values, err := circuit.ValuesFromTrace(program, trace)
	require.NoError(t, err)
	assignment, err := circuit.NewAssignment(*program, nil, []isa.Word{5}, values, frontend.Variable(fieldCommitment))
	require.NoError(t, err)

	proof, err := Prove(ccs, keys.ProvingKey, assignment)
	require.NoError(t, err)

	require.NoError(t, Verify(proof, keys.VerifyingKey, fieldCommitment))
}

func TestVerifyRejectsWrongCommitment(t *testing.T) {
	program := addProgram()

	trace, err := vm.NewInterpreter().Run(program)
	require.NoError(t, err)

	digest := commit.Commit(trace)
	fieldCommitment := CommitmentToFieldElement(digest)

	c := circuit.NewExecutionCircuit(*program, nil, []isa.Word{5})
	ccs, err := Compile(c)
	require.NoError(t, err)

	keys, err := Setup(ccs)
	require.NoError(t, err)

	values, err := circuit.ValuesFromTrace(program, trace)
	require.NoError(t, err)
	assignment, err := circuit.NewAssignment(*program, nil, []isa.Word{5}, values, frontend.Variable(fieldCommitment))
	require.NoError(t, err)

	proof, err := Prove(ccs, keys.ProvingKey, assignment)
	require.NoError(t, err)

	wrongCommitment := CommitmentToFieldElement([32]byte{0xff})
	require.Error(t, Verify(proof, keys.VerifyingKey, wrongCommitment))
}

func TestKeyAndProofRoundTrip(t *testing.T) {
	program := addProgram()
	c := circuit.NewExecutionCircuit(*program, nil, []isa.Word{5})
	ccs, err := Compile(c)
	require.NoError(t, err)

	keys, err := Setup(ccs)
	require.NoError(t, err)

	var pkBuf, vkBuf bytes.Buffer
	require.NoError(t, WriteProvingKey(&pkBuf, keys.ProvingKey))
	require.NoError(t, WriteVerifyingKey(&vkBuf, keys.VerifyingKey))

	pk, err := ReadProvingKey(&pkBuf)
	require.NoError(t, err)
	vk, err := ReadVerifyingKey(&vkBuf)
	require.NoError(t, err)

	trace, err := vm.NewInterpreter().Run(program)
	require.NoError(t, err)
	digest := commit.Commit(trace)
	fieldCommitment := CommitmentToFieldElement(digest)
	values, err := circuit.ValuesFromTrace(program, trace)
	require.NoError(t, err)
	assignment, err := circuit.NewAssignment(*program, nil, []isa.Word{5}, values, frontend.Variable(fieldCommitment))
	require.NoError(t, err)

	proof, err := Prove(ccs, pk, assignment)
	require.NoError(t, err)

	var proofBuf bytes.Buffer
	require.NoError(t, WriteProof(&proofBuf, proof))
	readProof, err := ReadProof(&proofBuf)
	require.NoError(t, err)

	require.NoError(t, Verify(readProof, vk, fieldCommitment))
}

func TestCommitmentToFieldElementReducesFullDigest(t *testing.T) {
	var digest [32]byte
	for i := range digest {
		digest[i] = 0xff
	}
	v := CommitmentToFieldElement(digest)
	if v.Sign() <= 0 {
		t.Fatal("expected a positive reduced field element")
	}
	if v.Cmp(Curve.ScalarField()) >= 0 {
		t.Fatal("reduced value must be strictly less than the scalar field order")
	}
}
