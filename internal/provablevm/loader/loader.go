// Package loader reads the provable VM's length-prefixed program file
// format (§6) into an isa.Program.
package loader

import (
	"io"

	"github.com/provablevm/provablevm/internal/provablevm/isa"
	"github.com/provablevm/provablevm/internal/provablevm/vmerr"
)

// Load reads a whole program from r under the canonical encoding of §6: an
// 8-byte little-endian instruction count followed by each instruction's
// 4-byte opcode, 1-byte operand-present flag, and optional 4-byte operand.
func Load(r io.Reader) (*isa.Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, vmerr.Wrap(vmerr.IoError, "reading program file", err)
	}
	return isa.DecodeProgram(data)
}
