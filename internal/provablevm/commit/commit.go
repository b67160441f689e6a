// Package commit derives the trace commitment: a 32-byte SHA-256 digest
// over the canonical serialization of an ordered execution trace.
package commit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/provablevm/provablevm/internal/provablevm/vm"
	"github.com/provablevm/provablevm/internal/provablevm/vmerr"
)

// Commitment is a 32-byte SHA-256 digest over a trace's canonical encoding.
type Commitment [32]byte

// Commit hashes the ordered trace into its commitment. The result is a pure
// function of the trace's contents: two structurally identical traces,
// however captured, commit to the same digest.
func Commit(trace *vm.Trace) Commitment {
	h := sha256.New()
	for _, state := range trace.States {
		h.Write(state.CanonicalEncode())
	}
	var out Commitment
	copy(out[:], h.Sum(nil))
	return out
}

// Hex returns the lowercase hex encoding of the commitment.
func (c Commitment) Hex() string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, len(c)*2)
	for i, b := range c {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0x0f]
	}
	return string(out)
}

// WriteFile writes the trace-commitment file of §6: a single line holding
// the lowercase hex encoding of the digest, terminated by a newline.
func WriteFile(w io.Writer, c Commitment) error {
	_, err := fmt.Fprintln(w, c.Hex())
	if err != nil {
		return vmerr.Wrap(vmerr.IoError, "writing trace-commitment file", err)
	}
	return nil
}

// ReadFile reads a trace-commitment file written by WriteFile.
func ReadFile(r io.Reader) (Commitment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Commitment{}, vmerr.Wrap(vmerr.IoError, "reading trace-commitment file", err)
	}
	line := strings.TrimSpace(string(data))
	decoded, err := hex.DecodeString(line)
	if err != nil {
		return Commitment{}, vmerr.Wrap(vmerr.MalformedProgram, "trace-commitment file is not valid hex", err)
	}
	if len(decoded) != 32 {
		return Commitment{}, vmerr.New(vmerr.MalformedProgram,
			fmt.Sprintf("trace-commitment must be 32 bytes, got %d", len(decoded)))
	}
	var out Commitment
	copy(out[:], decoded)
	return out, nil
}
