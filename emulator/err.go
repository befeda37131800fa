package emulator

import (
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Pc     uint8
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d pc 0x%02x %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrProgram indicates the program file that failed to load.
type ErrProgram struct {
	Path string
	Err  error
}

func (err *ErrProgram) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrProgram) Unwrap() error {
	return err.Err
}

// ErrTraceFilter is a trace filter expression that did not compile, or did
// not evaluate to a value.
type ErrTraceFilter struct {
	Expr string
	Err  error
}

func (err *ErrTraceFilter) Error() string {
	return f("trace filter '%v' %v", err.Expr, err.Err)
}

func (err *ErrTraceFilter) Unwrap() error {
	return err.Err
}
