package provablevm

import (
	"io"

	"github.com/provablevm/provablevm/internal/provablevm/commit"
	"github.com/provablevm/provablevm/internal/provablevm/isa"
	"github.com/provablevm/provablevm/internal/provablevm/loader"
	"github.com/provablevm/provablevm/internal/provablevm/vm"
)

// LoadProgram reads a program from r under the canonical binary program
// format.
func LoadProgram(r io.Reader) (*Program, error) {
	return loader.Load(r)
}

// EncodeProgram serializes a program under the canonical binary program
// format, the inverse of LoadProgram.
func EncodeProgram(p *Program) []byte {
	return isa.EncodeProgram(p)
}

// Run executes program deterministically from the zero state, returning
// its captured trace. cfg's MaxSteps caps the trace length; a zero Config
// (or nil) falls back to the interpreter's default cap.
func Run(program *Program, cfg *Config) (*Trace, error) {
	in := vm.NewInterpreter()
	if cfg != nil && cfg.MaxSteps > 0 {
		in.MaxSteps = cfg.MaxSteps
	}
	return in.Run(program)
}

// Commit derives a trace's commitment: a SHA-256 digest over its
// canonical encoding.
func Commit(trace *Trace) Commitment {
	return commit.Commit(trace)
}

// WriteCommitment writes the trace-commitment file format: a single line
// holding the lowercase hex encoding of the digest.
func WriteCommitment(w io.Writer, c Commitment) error {
	return commit.WriteFile(w, c)
}

// ReadCommitment reads a trace-commitment file written by WriteCommitment.
func ReadCommitment(r io.Reader) (Commitment, error) {
	return commit.ReadFile(r)
}
