package emulator

import (
	"errors"
	"iter"
	"maps"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ls8/cpu"
)

var ErrTraceValue = errors.New(f("no value"))

// Names bound to the machine state for each evaluation.
var _trace_names = []string{"pc", "ir", "fl", "sp", "r", "mem", "ticks"}

// TraceFilter is a Starlark expression, evaluated against the machine state
// before each instruction, that selects which instructions are traced.
//
// The expression may use:
//
//	pc     program counter
//	ir     instruction byte at pc
//	fl     flags register
//	sp     stack pointer (r[SP])
//	r      tuple of the eight registers
//	mem    tuple of the 256 memory bytes
//	ticks  instructions executed since reset
//
// and every integer define of the emulator, such as STACK_TOP, FL_EQ, or
// the instruction mnemonics (ir == CALL).
type TraceFilter struct {
	Expr string

	program     *starlark.Program
	predeclared starlark.StringDict
}

// NewTraceFilter compiles the expression, with the integer defines
// predeclared.
func NewTraceFilter(expr string, defines iter.Seq2[string, string]) (filter *TraceFilter, err error) {
	defer func() {
		if err != nil {
			err = &ErrTraceFilter{Expr: expr, Err: err}
		}
	}()

	pred := starlark.StringDict{}
	for key, str := range defines {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer defines.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}

	isPredeclared := func(name string) bool {
		_, ok := pred[name]
		if ok {
			return true
		}
		for _, tn := range _trace_names {
			if tn == name {
				return true
			}
		}
		return false
	}

	opts := syntax.FileOptions{}
	src := "rc = (" + expr + ")\n"
	_, prog, err := starlark.SourceProgramOptions(&opts, "trace", src, isPredeclared)
	if err != nil {
		return
	}

	filter = &TraceFilter{
		Expr:        expr,
		program:     prog,
		predeclared: pred,
	}

	return
}

// Match evaluates the filter against the current machine state.
func (filter *TraceFilter) Match(c *cpu.Cpu) (match bool, err error) {
	pred := maps.Clone(filter.predeclared)

	regs := make(starlark.Tuple, len(c.Register))
	for n, val := range c.Register {
		regs[n] = starlark.MakeInt(int(val))
	}

	mem := make(starlark.Tuple, len(c.Memory))
	for n, val := range c.Memory {
		mem[n] = starlark.MakeInt(int(val))
	}

	pred["pc"] = starlark.MakeInt(int(c.Pc))
	pred["ir"] = starlark.MakeInt(int(c.FetchCode()))
	pred["fl"] = starlark.MakeInt(int(c.Flags))
	pred["sp"] = starlark.MakeInt(int(c.Register[cpu.REG_SP]))
	pred["r"] = regs
	pred["mem"] = mem
	pred["ticks"] = starlark.MakeInt(c.Ticks)

	thread := &starlark.Thread{Name: "trace"}
	globals, err := filter.program.Init(thread, pred)
	if err != nil {
		err = &ErrTraceFilter{Expr: filter.Expr, Err: err}
		return
	}

	rc, ok := globals["rc"]
	if !ok {
		err = &ErrTraceFilter{Expr: filter.Expr, Err: ErrTraceValue}
		return
	}

	match = bool(rc.Truth())

	return
}
