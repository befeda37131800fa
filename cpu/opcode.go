package cpu

import (
	"fmt"
)

// CodeClass is the type of opcode class.
type CodeClass int

//go:generate go tool stringer -linecomment -type=CodeClass
const (
	OP_DATA    = CodeClass(0) // data
	OP_SPECIAL = CodeClass(1) // special
	OP_ALU     = CodeClass(2) // alu
)

// CodeAluOp is an ALU operation type.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_ADD = CodeAluOp(0b0000) // ADD
	ALU_OP_MUL = CodeAluOp(0b0010) // MUL
	ALU_OP_CMP = CodeAluOp(0b0111) // CMP
)

// CodeSpecialOp is a control flow operation type.
type CodeSpecialOp int

//go:generate go tool stringer -linecomment -type=CodeSpecialOp
const (
	SPECIAL_OP_CALL = CodeSpecialOp(0b0000) // CALL
	SPECIAL_OP_RET  = CodeSpecialOp(0b0001) // RET
	SPECIAL_OP_JMP  = CodeSpecialOp(0b0100) // JMP
	SPECIAL_OP_JEQ  = CodeSpecialOp(0b0101) // JEQ
	SPECIAL_OP_JNE  = CodeSpecialOp(0b0110) // JNE
	SPECIAL_OP_JGT  = CodeSpecialOp(0b0111) // JGT
	SPECIAL_OP_JLT  = CodeSpecialOp(0b1000) // JLT
	SPECIAL_OP_JLE  = CodeSpecialOp(0b1001) // JLE
	SPECIAL_OP_JGE  = CodeSpecialOp(0b1010) // JGE
)

// CodeDataOp is a data operation type.
type CodeDataOp int

//go:generate go tool stringer -linecomment -type=CodeDataOp
const (
	DATA_OP_HLT  = CodeDataOp(0b0001) // HLT
	DATA_OP_LDI  = CodeDataOp(0b0010) // LDI
	DATA_OP_PUSH = CodeDataOp(0b0101) // PUSH
	DATA_OP_POP  = CodeDataOp(0b0110) // POP
	DATA_OP_PRN  = CodeDataOp(0b0111) // PRN
)

// CodeReg is a register index.
type CodeReg int

//go:generate go tool stringer -linecomment -type=CodeReg
const (
	REG_R0 = CodeReg(0) // r0
	REG_R1 = CodeReg(1) // r1
	REG_R2 = CodeReg(2) // r2
	REG_R3 = CodeReg(3) // r3
	REG_R4 = CodeReg(4) // r4
	REG_R5 = CodeReg(5) // r5
	REG_R6 = CodeReg(6) // r6
	REG_R7 = CodeReg(7) // r7

	REG_SP = REG_R7
)

// Valid returns true if the operation is implemented by the ALU.
func (op CodeAluOp) Valid() bool {
	switch op {
	case ALU_OP_ADD, ALU_OP_MUL, ALU_OP_CMP:
		return true
	}
	return false
}

// Operands returns the number of operand bytes of the ALU operation.
func (op CodeAluOp) Operands() int {
	return 2
}

// Valid returns true if the operation is implemented by the special unit.
func (op CodeSpecialOp) Valid() bool {
	switch op {
	case SPECIAL_OP_CALL, SPECIAL_OP_RET, SPECIAL_OP_JMP,
		SPECIAL_OP_JEQ, SPECIAL_OP_JNE, SPECIAL_OP_JGT,
		SPECIAL_OP_JLT, SPECIAL_OP_JLE, SPECIAL_OP_JGE:
		return true
	}
	return false
}

// Operands returns the number of operand bytes of the special operation.
func (op CodeSpecialOp) Operands() int {
	if op == SPECIAL_OP_RET {
		return 0
	}
	return 1
}

// Valid returns true if the operation is a known data operation.
func (op CodeDataOp) Valid() bool {
	switch op {
	case DATA_OP_HLT, DATA_OP_LDI, DATA_OP_PUSH, DATA_OP_POP, DATA_OP_PRN:
		return true
	}
	return false
}

// Operands returns the number of operand bytes of the data operation.
func (op CodeDataOp) Operands() int {
	switch op {
	case DATA_OP_HLT:
		return 0
	case DATA_OP_LDI:
		return 2
	}
	return 1
}

// Code is a single instruction byte.
type Code uint8

func makeCode(operands int, class CodeClass, op int) Code {
	word := uint8(operands&0x3)<<6 | uint8(op&0xf)
	switch class {
	case OP_ALU:
		word |= 1 << 5
	case OP_SPECIAL:
		word |= 1 << 4
	}
	return Code(word)
}

// MakeCodeAlu creates an ALU operation instruction.
func MakeCodeAlu(op CodeAluOp) Code {
	return makeCode(op.Operands(), OP_ALU, int(op))
}

// MakeCodeSpecial creates a control flow operation instruction.
func MakeCodeSpecial(op CodeSpecialOp) Code {
	return makeCode(op.Operands(), OP_SPECIAL, int(op))
}

// MakeCodeData creates a data operation instruction.
func MakeCodeData(op CodeDataOp) Code {
	return makeCode(op.Operands(), OP_DATA, int(op))
}

// Operands returns the count of operand bytes following the instruction.
func (code Code) Operands() int {
	return int(code>>6) & 0x3
}

// Width returns the size of the instruction, in bytes, including operands.
func (code Code) Width() uint8 {
	return 1 + uint8(code.Operands())
}

// IsAlu returns true if the ALU category bit is set.
func (code Code) IsAlu() bool {
	return (code>>5)&1 == 1
}

// IsSpecial returns true if the special category bit is set.
func (code Code) IsSpecial() bool {
	return (code>>4)&1 == 1
}

// Op returns the 4-bit opcode field.
func (code Code) Op() int {
	return int(code & 0xf)
}

// Class returns the dispatch category. The special bit takes precedence
// over the ALU bit.
func (code Code) Class() CodeClass {
	switch {
	case code.IsSpecial():
		return OP_SPECIAL
	case code.IsAlu():
		return OP_ALU
	}
	return OP_DATA
}

// AluDecode returns the ALU operation of the instruction.
func (code Code) AluDecode() CodeAluOp {
	return CodeAluOp(code.Op())
}

// SpecialDecode returns the control flow operation of the instruction.
func (code Code) SpecialDecode() CodeSpecialOp {
	return CodeSpecialOp(code.Op())
}

// DataDecode returns the data operation of the instruction.
func (code Code) DataDecode() CodeDataOp {
	return CodeDataOp(code.Op())
}

// Valid returns true if the opcode is known to its category's dispatch table.
func (code Code) Valid() bool {
	switch code.Class() {
	case OP_SPECIAL:
		return code.SpecialDecode().Valid()
	case OP_ALU:
		return code.AluDecode().Valid()
	}
	return code.DataDecode().Valid()
}

// DecodeRegister decodes a register operand byte. The upper five bits are
// reserved and must be zero.
func DecodeRegister(value uint8) (reg CodeReg, ok bool) {
	if value>>3 != 0 {
		return
	}
	return CodeReg(value & 0x7), true
}

// String returns the mnemonic of this instruction.
func (code Code) String() (out string) {
	var str string

	switch code.Class() {
	case OP_SPECIAL:
		str = code.SpecialDecode().String()
	case OP_ALU:
		str = code.AluDecode().String()
	default:
		str = code.DataDecode().String()
	}

	out = fmt.Sprintf("%v.%v/%d", code.Class().String(), str, code.Operands())

	return
}
