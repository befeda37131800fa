package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCode_Decode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		code     Code
		operands int
		class    CodeClass
		op       int
		str      string
	}){
		{"ldi", 0b10000010, 2, OP_DATA, 0b0010, "data.LDI/2"},
		{"prn", 0b01000111, 1, OP_DATA, 0b0111, "data.PRN/1"},
		{"hlt", 0b00000001, 0, OP_DATA, 0b0001, "data.HLT/0"},
		{"push", 0b01000101, 1, OP_DATA, 0b0101, "data.PUSH/1"},
		{"pop", 0b01000110, 1, OP_DATA, 0b0110, "data.POP/1"},
		{"add", 0b10100000, 2, OP_ALU, 0b0000, "alu.ADD/2"},
		{"mul", 0b10100010, 2, OP_ALU, 0b0010, "alu.MUL/2"},
		{"cmp", 0b10100111, 2, OP_ALU, 0b0111, "alu.CMP/2"},
		{"call", 0b01010000, 1, OP_SPECIAL, 0b0000, "special.CALL/1"},
		{"ret", 0b00010001, 0, OP_SPECIAL, 0b0001, "special.RET/0"},
		{"jmp", 0b01010100, 1, OP_SPECIAL, 0b0100, "special.JMP/1"},
		{"jeq", 0b01010101, 1, OP_SPECIAL, 0b0101, "special.JEQ/1"},
		{"jne", 0b01010110, 1, OP_SPECIAL, 0b0110, "special.JNE/1"},
		{"jgt", 0b01010111, 1, OP_SPECIAL, 0b0111, "special.JGT/1"},
		{"jlt", 0b01011000, 1, OP_SPECIAL, 0b1000, "special.JLT/1"},
		{"jle", 0b01011001, 1, OP_SPECIAL, 0b1001, "special.JLE/1"},
		{"jge", 0b01011010, 1, OP_SPECIAL, 0b1010, "special.JGE/1"},
		{"both", 0b00110001, 0, OP_SPECIAL, 0b0001, "special.RET/0"},
		{"bad_alu", 0b10100001, 2, OP_ALU, 0b0001, "alu.CodeAluOp(1)/2"},
		{"bad_data", 0b00000000, 0, OP_DATA, 0b0000, "data.CodeDataOp(0)/0"},
	}

	for _, entry := range table {
		assert.Equal(entry.operands, entry.code.Operands(), entry.name)
		assert.Equal(uint8(1+entry.operands), entry.code.Width(), entry.name)
		assert.Equal(entry.class, entry.code.Class(), entry.name)
		assert.Equal(entry.op, entry.code.Op(), entry.name)
		assert.Equal(entry.str, entry.code.String(), entry.name)
	}
}

func TestCode_Make(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Code(0b10000010), MakeCodeData(DATA_OP_LDI))
	assert.Equal(Code(0b01000111), MakeCodeData(DATA_OP_PRN))
	assert.Equal(Code(0b00000001), MakeCodeData(DATA_OP_HLT))
	assert.Equal(Code(0b10100111), MakeCodeAlu(ALU_OP_CMP))
	assert.Equal(Code(0b00010001), MakeCodeSpecial(SPECIAL_OP_RET))
	assert.Equal(Code(0b01011010), MakeCodeSpecial(SPECIAL_OP_JGE))
}

// Every opcode in a category decodes back to itself, and no two
// operations of a category share a code.
func TestCode_Unique(t *testing.T) {
	assert := assert.New(t)

	seen := map[Code]string{}
	check := func(code Code, name string) {
		other, dup := seen[code]
		assert.False(dup, "%v duplicates %v", name, other)
		seen[code] = name
		assert.True(code.Valid(), name)
	}

	alu := []CodeAluOp{ALU_OP_ADD, ALU_OP_MUL, ALU_OP_CMP}
	for _, op := range alu {
		code := MakeCodeAlu(op)
		assert.Equal(op, code.AluDecode())
		check(code, op.String())
	}

	special := []CodeSpecialOp{
		SPECIAL_OP_CALL, SPECIAL_OP_RET, SPECIAL_OP_JMP,
		SPECIAL_OP_JEQ, SPECIAL_OP_JNE, SPECIAL_OP_JGT,
		SPECIAL_OP_JLT, SPECIAL_OP_JLE, SPECIAL_OP_JGE,
	}
	for _, op := range special {
		code := MakeCodeSpecial(op)
		assert.Equal(op, code.SpecialDecode())
		check(code, op.String())
	}

	data := []CodeDataOp{DATA_OP_HLT, DATA_OP_LDI, DATA_OP_PUSH, DATA_OP_POP, DATA_OP_PRN}
	for _, op := range data {
		code := MakeCodeData(op)
		assert.Equal(op, code.DataDecode())
		check(code, op.String())
	}

	// Count all valid codes over the whole byte range.
	valid := 0
	for n := range 256 {
		if Code(n).Valid() {
			valid++
		}
	}
	// Operand count bits and the ALU bit under special are free.
	assert.Equal(4*len(alu)+4*2*len(special)+4*len(data), valid)
}

func TestDecodeRegister(t *testing.T) {
	assert := assert.New(t)

	for n := range 8 {
		reg, ok := DecodeRegister(uint8(n))
		assert.True(ok)
		assert.Equal(CodeReg(n), reg)
	}

	for n := 8; n < 256; n++ {
		_, ok := DecodeRegister(uint8(n))
		assert.False(ok, "0b%08b", n)
	}

	assert.Equal("r7", REG_SP.String())
}
