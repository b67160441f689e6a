package provablevm

import (
	"io"

	"github.com/consensys/gnark/backend/groth16"

	"github.com/provablevm/provablevm/internal/provablevm/snark"
)

// WriteProvingKey serializes a proving key using gnark's native compressed
// encoding.
func WriteProvingKey(w io.Writer, pk groth16.ProvingKey) error {
	return snark.WriteProvingKey(w, pk)
}

// ReadProvingKey deserializes a proving key written by WriteProvingKey.
func ReadProvingKey(r io.Reader) (groth16.ProvingKey, error) {
	return snark.ReadProvingKey(r)
}

// WriteVerifyingKey serializes a verifying key using gnark's native
// compressed encoding.
func WriteVerifyingKey(w io.Writer, vk groth16.VerifyingKey) error {
	return snark.WriteVerifyingKey(w, vk)
}

// ReadVerifyingKey deserializes a verifying key written by
// WriteVerifyingKey.
func ReadVerifyingKey(r io.Reader) (groth16.VerifyingKey, error) {
	return snark.ReadVerifyingKey(r)
}

// WriteProof serializes a proof using gnark's native compressed encoding.
func WriteProof(w io.Writer, proof Proof) error {
	return snark.WriteProof(w, proof)
}

// ReadProof deserializes a proof written by WriteProof.
func ReadProof(r io.Reader) (Proof, error) {
	return snark.ReadProof(r)
}
