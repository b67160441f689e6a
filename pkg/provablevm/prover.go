package provablevm

import (
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"

	"github.com/provablevm/provablevm/internal/provablevm/circuit"
	"github.com/provablevm/provablevm/internal/provablevm/snark"
)

// Keys is a circuit-specific Groth16 proving/verifying key pair.
type Keys = snark.Keys

// Proof is a Groth16 proof over the execution circuit.
type Proof = groth16.Proof

// Prover produces Groth16 proofs for the execution circuit of the
// (program, initialStack, finalStack) tuple, with witness values taken from
// trace and the trace commitment as the public input. The circuit checks
// only the bottom element of finalStack, and does not recompute the
// commitment from the trace.
type Prover struct {
	program      Program
	initialStack []Word
	finalStack   []Word
	trace        *Trace
	ccs          constraint.ConstraintSystem
}

// NewProver returns a Prover for program's execution, with trace the
// interpreter's captured run from initialStack producing finalStack.
func NewProver(program *Program, initialStack, finalStack []Word, trace *Trace) *Prover {
	return &Prover{
		program:      *program,
		initialStack: initialStack,
		finalStack:   finalStack,
		trace:        trace,
	}
}

// Setup compiles the execution circuit and runs its circuit-specific
// trusted setup, producing a fresh key pair.
func (p *Prover) Setup() (*Keys, error) {
	ccs, err := p.compile()
	if err != nil {
		return nil, err
	}
	return snark.Setup(ccs)
}

// Prove builds the witness from the prover's trace and produces a Groth16
// proof against pk. commitment must be the same commitment that Setup's
// caller will hand the verifier.
func (p *Prover) Prove(pk groth16.ProvingKey, commitment Commitment) (Proof, error) {
	ccs, err := p.compile()
	if err != nil {
		return nil, err
	}

	values, err := circuit.ValuesFromTrace(&p.program, p.trace)
	if err != nil {
		return nil, err
	}

	fieldCommitment := snark.CommitmentToFieldElement(commitment)
	assignment, err := circuit.NewAssignment(p.program, p.initialStack, p.finalStack, values, frontend.Variable(fieldCommitment))
	if err != nil {
		return nil, err
	}

	return snark.Prove(ccs, pk, assignment)
}

func (p *Prover) compile() (constraint.ConstraintSystem, error) {
	if p.ccs != nil {
		return p.ccs, nil
	}
	c := circuit.NewExecutionCircuit(p.program, p.initialStack, p.finalStack)
	ccs, err := snark.Compile(c)
	if err != nil {
		return nil, err
	}
	p.ccs = ccs
	return ccs, nil
}
