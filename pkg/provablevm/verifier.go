package provablevm

import (
	"github.com/consensys/gnark/backend/groth16"

	"github.com/provablevm/provablevm/internal/provablevm/snark"
)

// Verifier checks a Groth16 proof against a verifying key and a trace
// commitment. It records the claimed (program, initialStack, finalStack)
// tuple, but verification depends only on the verifying key, which Setup
// bound to that tuple's circuit.
type Verifier struct {
	program      Program
	initialStack []Word
	finalStack   []Word
}

// NewVerifier returns a Verifier for the given program and claimed
// endpoints. Verify does not read them: a tuple that differs from the one
// the keys were set up with is not detected by Verify itself.
func NewVerifier(program *Program, initialStack, finalStack []Word) *Verifier {
	return &Verifier{program: *program, initialStack: initialStack, finalStack: finalStack}
}

// Verify checks proof against vk and commitment.
func (v *Verifier) Verify(proof Proof, vk groth16.VerifyingKey, commitment Commitment) error {
	fieldCommitment := snark.CommitmentToFieldElement(commitment)
	return snark.Verify(proof, vk, fieldCommitment)
}
