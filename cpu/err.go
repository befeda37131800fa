package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted  = errors.New(f("cpu halted"))
	ErrFaulted = errors.New(f("cpu faulted"))
	ErrOutput  = errors.New(f("output failed"))

	// Instruction decode errors
	ErrRegisterInvalid    = errors.New(f("register reference invalid"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrAluUnsupported     = errors.New(f("alu operation unsupported"))
	ErrSystemFault        = errors.New(f("system fault"))

	// Loader errors
	ErrProgramNotFound = errors.New(f("program not found"))
	ErrProgramTooLarge = errors.New(f("program too large"))
	ErrOpcodeExtraArgs = errors.New(f("excessive arguments"))
)

// ErrOpcode is an instruction that matches no operation of its category.
type ErrOpcode struct {
	Code Code
	Pc   uint8
}

func (eo ErrOpcode) Error() string {
	return f("invalid instruction 0b%08b (%v) at 0x%02x", uint8(eo.Code), eo.Code.String(), eo.Pc)
}

func (eo ErrOpcode) Unwrap() error {
	return ErrInstructionInvalid
}

// ErrRegister is a register operand byte with reserved bits set.
type ErrRegister struct {
	Value uint8
	Pc    uint8
}

func (er ErrRegister) Error() string {
	return f("invalid register 0b%08b at 0x%02x", er.Value, er.Pc)
}

func (er ErrRegister) Unwrap() error {
	return ErrRegisterInvalid
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a binary byte", string(err))
}
