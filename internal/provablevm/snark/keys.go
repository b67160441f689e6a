package snark

import (
	"io"

	"github.com/consensys/gnark/backend/groth16"

	"github.com/provablevm/provablevm/internal/provablevm/vmerr"
)

// WriteProvingKey serializes pk using gnark's native compressed encoding.
func WriteProvingKey(w io.Writer, pk groth16.ProvingKey) error {
	if _, err := pk.WriteTo(w); err != nil {
		return vmerr.Wrap(vmerr.IoError, "writing proving key", err)
	}
	return nil
}

// ReadProvingKey deserializes a proving key written by WriteProvingKey.
func ReadProvingKey(r io.Reader) (groth16.ProvingKey, error) {
	pk := groth16.NewProvingKey(Curve)
	if _, err := pk.ReadFrom(r); err != nil {
		return nil, vmerr.Wrap(vmerr.IoError, "reading proving key", err)
	}
	return pk, nil
}

// WriteVerifyingKey serializes vk using gnark's native compressed encoding.
func WriteVerifyingKey(w io.Writer, vk groth16.VerifyingKey) error {
	if _, err := vk.WriteTo(w); err != nil {
		return vmerr.Wrap(vmerr.IoError, "writing verifying key", err)
	}
	return nil
}

// ReadVerifyingKey deserializes a verifying key written by
// WriteVerifyingKey.
func ReadVerifyingKey(r io.Reader) (groth16.VerifyingKey, error) {
	vk := groth16.NewVerifyingKey(Curve)
	if _, err := vk.ReadFrom(r); err != nil {
		return nil, vmerr.Wrap(vmerr.IoError, "reading verifying key", err)
	}
	return vk, nil
}

// WriteProof serializes a proof using gnark's native compressed encoding.
func WriteProof(w io.Writer, proof groth16.Proof) error {
	if _, err := proof.WriteTo(w); err != nil {
		return vmerr.Wrap(vmerr.IoError, "writing proof", err)
	}
	return nil
}

// ReadProof deserializes a proof written by WriteProof.
func ReadProof(r io.Reader) (groth16.Proof, error) {
	proof := groth16.NewProof(Curve)
	if _, err := proof.ReadFrom(r); err != nil {
		return nil, vmerr.Wrap(vmerr.IoError, "reading proof", err)
	}
	return proof, nil
}
