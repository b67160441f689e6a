package isa

import (
	"encoding/binary"
	"fmt"

	"github.com/provablevm/provablevm/internal/provablevm/vmerr"
)

// Wire-format field sizes: an instruction is opcodeHeaderSize bytes (4 bytes
// opcode + 1 byte flag), plus operandFieldSize bytes when an operand is
// present; a program starts with a programCountBytes instruction count.
const (
	opcodeHeaderSize  = 4 + 1 // opcode code + operand-present flag
	operandFieldSize  = 4
	programCountBytes = 8
)

// Encode serializes a single instruction under §6's canonical encoding: a
// 4-byte little-endian opcode code, a 1-byte operand-present flag, and, if
// present, a 4-byte little-endian operand.
func Encode(inst Instruction) []byte {
	hasOperand := inst.Operand != nil
	size := opcodeHeaderSize
	if hasOperand {
		size += operandFieldSize
	}
	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(inst.Opcode))
	if hasOperand {
		buf[4] = 1
		binary.LittleEndian.PutUint32(buf[5:9], *inst.Operand)
	} else {
		buf[4] = 0
	}
	return buf
}

// Decode parses a single instruction from buf starting at offset, returning
// the instruction and the number of bytes consumed. A malformed header or a
// truncated buffer yields a vmerr.MalformedProgram error.
func Decode(buf []byte, offset int) (Instruction, int, error) {
	if offset < 0 || offset+opcodeHeaderSize > len(buf) {
		return Instruction{}, 0, vmerr.New(vmerr.MalformedProgram, "truncated instruction header")
	}

	code := binary.LittleEndian.Uint32(buf[offset : offset+4])
	if code > 0xff {
		return Instruction{}, 0, vmerr.New(vmerr.MalformedProgram,
			fmt.Sprintf("unrecognized opcode code %d", code))
	}
	opcode := Opcode(code)
	flag := buf[offset+4]
	if flag != 0 && flag != 1 {
		return Instruction{}, 0, vmerr.New(vmerr.MalformedProgram,
			fmt.Sprintf("operand-present flag must be 0 or 1, got %d", flag))
	}

	info, err := opcode.Info()
	if err != nil {
		return Instruction{}, 0, vmerr.Wrap(vmerr.MalformedProgram, "unrecognized opcode", err)
	}

	consumed := opcodeHeaderSize
	var operand *Word
	if flag == 1 {
		if offset+opcodeHeaderSize+operandFieldSize > len(buf) {
			return Instruction{}, 0, vmerr.New(vmerr.MalformedProgram, "truncated operand")
		}
		v := binary.LittleEndian.Uint32(buf[offset+opcodeHeaderSize : offset+opcodeHeaderSize+operandFieldSize])
		operand = &v
		consumed += operandFieldSize
	}

	// §3: a present operand on an operand-forbidding opcode is tolerated
	// and ignored by the loader, not rejected.
	if !info.HasOperand {
		operand = nil
	}

	return Instruction{Opcode: opcode, Operand: operand}, consumed, nil
}

// EncodeProgram serializes a whole program under §6's framing: an 8-byte
// little-endian instruction count followed by each instruction's encoding.
func EncodeProgram(p *Program) []byte {
	var body [][]byte
	for _, inst := range p.Instructions {
		body = append(body, Encode(inst))
	}
	total := programCountBytes
	for _, b := range body {
		total += len(b)
	}
	buf := make([]byte, total)
	binary.LittleEndian.PutUint64(buf[0:programCountBytes], uint64(len(p.Instructions)))
	offset := programCountBytes
	for _, b := range body {
		copy(buf[offset:], b)
		offset += len(b)
	}
	return buf
}

// DecodeProgram parses a whole program under §6's framing.
func DecodeProgram(buf []byte) (*Program, error) {
	if len(buf) < programCountBytes {
		return nil, vmerr.New(vmerr.MalformedProgram, "truncated program count header")
	}
	count := binary.LittleEndian.Uint64(buf[0:programCountBytes])

	prog := &Program{Instructions: make([]Instruction, 0, count)}
	offset := programCountBytes
	for i := uint64(0); i < count; i++ {
		inst, consumed, err := Decode(buf, offset)
		if err != nil {
			return nil, vmerr.Wrap(vmerr.MalformedProgram,
				fmt.Sprintf("decoding instruction %d", i), err)
		}
		prog.Instructions = append(prog.Instructions, inst)
		offset += consumed
	}
	if offset != len(buf) {
		return nil, vmerr.New(vmerr.MalformedProgram,
			fmt.Sprintf("%d trailing bytes after the last instruction", len(buf)-offset))
	}
	return prog, nil
}
