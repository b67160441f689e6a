package loader

import (
	"bytes"
	"testing"

	"github.com/provablevm/provablevm/internal/provablevm/isa"
)

func TestLoadRoundTrip(t *testing.T) {
	v := isa.Word(4)
	program := &isa.Program{Instructions: []isa.Instruction{
		{Opcode: isa.PUSH, Operand: &v},
		{Opcode: isa.HALT},
	}}
	buf := isa.EncodeProgram(program)

	loaded, err := Load(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Len() != program.Len() {
		t.Fatalf("Len() = %d, want %d", loaded.Len(), program.Len())
	}
	inst, _ := loaded.At(0)
	if inst.Opcode != isa.PUSH || inst.Operand == nil || *inst.Operand != 4 {
		t.Errorf("instruction 0 = %+v, want PUSH(4)", inst)
	}
}

func TestLoadRejectsMalformedProgram(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte{0x01}))
	if err == nil {
		t.Error("expected an error for a truncated program file")
	}
}

func TestLoadRejectsTrailingGarbage(t *testing.T) {
	program := &isa.Program{Instructions: []isa.Instruction{{Opcode: isa.HALT}}}
	buf := append(isa.EncodeProgram(program), 0xff)
	if _, err := Load(bytes.NewReader(buf)); err == nil {
		t.Error("expected an error for a program file with trailing bytes")
	}
}
