// Package snark wraps gnark's Groth16 backend into the provable VM's
// three proof-system operations: circuit-specific trusted setup, proof
// generation, and verification, all fixed to the BLS12-381 curve.
package snark

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/provablevm/provablevm/internal/provablevm/circuit"
	"github.com/provablevm/provablevm/internal/provablevm/vmerr"
)

// Curve is the curve every provable VM proof is fixed to.
const Curve = ecc.BLS12_381

// Keys is a circuit-specific Groth16 key pair produced by Setup: a proving
// key and a verifying key, both bound to the exact (program, initial
// stack, final stack) tuple the circuit was built from.
type Keys struct {
	ProvingKey   groth16.ProvingKey
	VerifyingKey groth16.VerifyingKey
}

// Compile builds the R1CS constraint system for an execution circuit
// shaped by circuit.NewExecutionCircuit. The returned constraint system's
// shape — and therefore every key later derived from it — depends only on
// the program and the claimed initial/final stacks, never on any
// particular run's trace values.
func Compile(c *circuit.ExecutionCircuit) (constraint.ConstraintSystem, error) {
	ccs, err := frontend.Compile(Curve.ScalarField(), r1cs.NewBuilder, c)
	if err != nil {
		return nil, vmerr.Wrap(vmerr.SetupFailure, "compiling execution circuit", err)
	}
	return ccs, nil
}

// Setup runs the circuit-specific trusted setup over ccs, producing a
// fresh proving/verifying key pair bound to that constraint system's exact
// shape.
func Setup(ccs constraint.ConstraintSystem) (*Keys, error) {
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, vmerr.Wrap(vmerr.SetupFailure, "running circuit-specific trusted setup", err)
	}
	return &Keys{ProvingKey: pk, VerifyingKey: vk}, nil
}

// Prove builds a witness from assignment and produces a Groth16 proof
// against pk. assignment must be a *circuit.ExecutionCircuit built by
// circuit.NewAssignment, carrying real witness and public-input values.
func Prove(ccs constraint.ConstraintSystem, pk groth16.ProvingKey, assignment *circuit.ExecutionCircuit) (groth16.Proof, error) {
	w, err := frontend.NewWitness(assignment, Curve.ScalarField())
	if err != nil {
		return nil, vmerr.Wrap(vmerr.ProveFailure, "building witness", err)
	}
	proof, err := groth16.Prove(ccs, pk, w)
	if err != nil {
		return nil, vmerr.Wrap(vmerr.ProveFailure, "generating proof", err)
	}
	return proof, nil
}

// Verify checks proof against vk and the circuit's public input (the
// trace commitment, reduced into the scalar field by
// CommitmentToFieldElement).
func Verify(proof groth16.Proof, vk groth16.VerifyingKey, commitment *big.Int) error {
	public := &circuit.ExecutionCircuit{TraceCommitment: commitment}
	publicWitness, err := frontend.NewWitness(public, Curve.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return vmerr.Wrap(vmerr.ProveFailure, "building public witness", err)
	}
	if err := groth16.Verify(proof, vk, publicWitness); err != nil {
		return vmerr.Wrap(vmerr.ProofInvalid, "verifying proof", err)
	}
	return nil
}

// CommitmentToFieldElement reduces a 32-byte trace commitment into
// BLS12-381's scalar field by interpreting it, in full, as a little-endian
// integer and reducing modulo the field order — mirroring the reference
// implementation's Fr::from_le_bytes_mod_order, which consumes the whole
// digest rather than truncating it.
func CommitmentToFieldElement(digest [32]byte) *big.Int {
	le := make([]byte, len(digest))
	for i, b := range digest {
		le[len(digest)-1-i] = b
	}
	v := new(big.Int).SetBytes(le)
	return v.Mod(v, Curve.ScalarField())
}
