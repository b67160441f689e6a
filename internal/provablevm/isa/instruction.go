package isa

import "fmt"

// Word is the 32-bit unsigned unit of VM value: stack entries, heap values,
// heap addresses, and instruction operands.
type Word = uint32

// Instruction is a pair (opcode, operand?). The operand is present exactly
// for the opcodes that require one (PUSH, JMP, JZ, LOAD, STORE); for the
// others it must be nil, though a present-but-unused operand is tolerated
// by NewInstruction and simply ignored, per the loader's leniency rule.
type Instruction struct {
	Opcode  Opcode
	Operand *Word
}

// NewInstruction constructs an instruction, validating operand presence
// for opcodes that require one. An operand given to an opcode that forbids
// one is accepted and kept as is.
func NewInstruction(op Opcode, operand *Word) (Instruction, error) {
	info, err := op.Info()
	if err != nil {
		return Instruction{}, err
	}
	if info.HasOperand && operand == nil {
		return Instruction{}, fmt.Errorf("isa: %s requires an operand", info.Name)
	}
	return Instruction{Opcode: op, Operand: operand}, nil
}

// Program is an ordered, zero-indexed sequence of instructions. The program
// counter is an index into it.
type Program struct {
	Instructions []Instruction
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Instructions)
}

// At returns the instruction at pc and whether pc is in range.
func (p *Program) At(pc int) (Instruction, bool) {
	if p == nil || pc < 0 || pc >= len(p.Instructions) {
		return Instruction{}, false
	}
	return p.Instructions[pc], true
}
