// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"log/slog"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
)

// Mnemonic defines, so trace filters can test the instruction at the PC.
var _emulator_defines = map[string]string{}

func init() {
	define := func(name string, code cpu.Code) {
		_emulator_defines[name] = fmt.Sprintf("0b%08b", uint8(code))
	}

	for _, op := range []cpu.CodeAluOp{cpu.ALU_OP_ADD, cpu.ALU_OP_MUL, cpu.ALU_OP_CMP} {
		define(op.String(), cpu.MakeCodeAlu(op))
	}
	for _, op := range []cpu.CodeSpecialOp{
		cpu.SPECIAL_OP_CALL, cpu.SPECIAL_OP_RET, cpu.SPECIAL_OP_JMP,
		cpu.SPECIAL_OP_JEQ, cpu.SPECIAL_OP_JNE, cpu.SPECIAL_OP_JGT,
		cpu.SPECIAL_OP_JLT, cpu.SPECIAL_OP_JLE, cpu.SPECIAL_OP_JGE,
	} {
		define(op.String(), cpu.MakeCodeSpecial(op))
	}
	for _, op := range []cpu.CodeDataOp{
		cpu.DATA_OP_HLT, cpu.DATA_OP_LDI, cpu.DATA_OP_PUSH, cpu.DATA_OP_POP, cpu.DATA_OP_PRN,
	} {
		define(op.String(), cpu.MakeCodeData(op))
	}
}

// Emulator state. CPU + loaded program + tracing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	Logger   *slog.Logger // Destination of verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Trace       io.Writer    // If set, a trace line is written before each instruction.
	TraceFilter *TraceFilter // If set, only trace when the filter matches.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Logger:  slog.Default(),
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		internal.IterSorted(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// LoadFile parses a program listing from a file, and makes it the current
// program. A missing file is an ErrProgramNotFound.
func (emu *Emulator) LoadFile(path string) (err error) {
	defer func() {
		if err != nil {
			err = &ErrProgram{Path: path, Err: err}
		}
	}()

	inf, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = cpu.ErrProgramNotFound
		}
		return
	}
	defer inf.Close()

	prog, err := cpu.ParseProgram(inf)
	if err != nil {
		return
	}

	emu.Program = prog

	if emu.Verbose {
		emu.Logger.Debug("emulator: loaded", "path", path, "bytes", len(prog.Opcodes))
	}

	return
}

// Reset the CPU, and load the current program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Logger = emu.Logger

	emu.Cpu.Reset()

	err = emu.Cpu.Load(emu.Program.Binary())

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Pc)
}

// LineNo returns the listing line number of the byte at the PC, or 0 if the
// PC is outside of the loaded program.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// trace writes the trace line for the current instruction.
func (emu *Emulator) trace() (err error) {
	if emu.Trace == nil {
		return
	}

	if emu.TraceFilter != nil {
		var match bool
		match, err = emu.TraceFilter.Match(emu.Cpu)
		if err != nil || !match {
			return
		}
	}

	_, err = fmt.Fprintln(emu.Trace, emu.Cpu.Trace())

	return
}

// Tick performs a single tick of the emulator. done is set once the CPU
// has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Pc: pc, Err: err}
		}
	}()

	if emu.Cpu.State == cpu.STATE_HALTED {
		done = true
		return
	}

	err = emu.trace()
	if err != nil {
		return
	}

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.State == cpu.STATE_HALTED

	return
}

// Run ticks the emulator until the program halts or faults.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		emu.Logger.Debug("emulator: halted", "pc", emu.Pc(), "ticks", emu.Ticks())
	}

	return
}
