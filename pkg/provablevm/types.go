package provablevm

import (
	"github.com/provablevm/provablevm/internal/provablevm/commit"
	"github.com/provablevm/provablevm/internal/provablevm/config"
	"github.com/provablevm/provablevm/internal/provablevm/isa"
	"github.com/provablevm/provablevm/internal/provablevm/vm"
)

// Word is the VM's 32-bit unsigned unit of value.
type Word = isa.Word

// Opcode is one of the VM's nine closed-enumeration instruction tags.
type Opcode = isa.Opcode

// The provable VM's nine opcodes.
const (
	PUSH  = isa.PUSH
	POP   = isa.POP
	ADD   = isa.ADD
	SUB   = isa.SUB
	JMP   = isa.JMP
	JZ    = isa.JZ
	LOAD  = isa.LOAD
	STORE = isa.STORE
	HALT  = isa.HALT
)

// Instruction is a single (opcode, operand?) pair.
type Instruction = isa.Instruction

// Program is an ordered sequence of instructions.
type Program = isa.Program

// State is one captured snapshot of the VM: program counter, stack, heap,
// and flags.
type State = vm.ProvableState

// Trace is the finite ordered sequence of states one execution produces.
type Trace = vm.Trace

// Commitment is the 32-byte SHA-256 digest over a trace's canonical
// encoding.
type Commitment = commit.Commitment

// Config is the provable VM's run-time configuration.
type Config = config.Config

// DefaultConfig returns the provable VM's default configuration.
func DefaultConfig() *Config {
	return config.DefaultConfig()
}

// NewInstruction constructs an instruction, validating operand presence.
func NewInstruction(op Opcode, operand *Word) (Instruction, error) {
	return isa.NewInstruction(op, operand)
}
