package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/ezrec/ls8/internal"
)

// State is the run state of the instruction cycle.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

// Outcome is how an executed instruction updates the program counter.
type Outcome int

//go:generate go tool stringer -linecomment -type=Outcome
const (
	OUTCOME_ADVANCE = Outcome(0) // advance
	OUTCOME_JUMP    = Outcome(1) // jump
	OUTCOME_HALT    = Outcome(2) // halt
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("0x%x", STACK_TOP),
	"SP":          fmt.Sprintf("%d", int(REG_SP)),
	"FL_EQ":       fmt.Sprintf("0b%03b", uint8(FLAG_EQ)),
	"FL_GT":       fmt.Sprintf("0b%03b", uint8(FLAG_GT)),
	"FL_LT":       fmt.Sprintf("0b%03b", uint8(FLAG_LT)),
}

// Cpu is the simulation context for the LS-8 machine.
type Cpu struct {
	Verbose bool         // Set to enable verbose logging.
	Logger  *slog.Logger // Destination of verbose logging.
	Output  io.Writer    // Destination of PRN.

	Pc       uint8                 // Current program counter.
	Register [REGISTER_COUNT]uint8 // Register bank. r7 is the stack pointer.
	Flags    Flags                 // Flags from the last CMP.
	Memory   Memory                // Main memory.
	State    State                 // Run state.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU in its reset state, printing to stdout.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Logger: slog.Default(),
		Output: os.Stdout,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.IterSorted(_cpu_defines)
}

func (cpu *Cpu) logger() *slog.Logger {
	if cpu.Logger == nil {
		return slog.Default()
	}
	return cpu.Logger
}

// Reset the CPU state.
// - Clears the registers, flags and memory.
// - Sets the stack pointer to STACK_TOP.
// - Sets the PC to 0, in the running state.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		cpu.logger().Debug("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Register[REG_SP] = STACK_TOP
	cpu.Pc = 0
	cpu.Flags = 0
	cpu.Memory.Reset()
	cpu.State = STATE_RUNNING
	cpu.Ticks = 0
}

// Load a program image into memory at address 0.
func (cpu *Cpu) Load(program []uint8) (err error) {
	err = cpu.Memory.Load(program)
	if err != nil {
		return
	}

	if cpu.Verbose {
		cpu.logger().Debug("cpu: load", "bytes", len(program))
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	code := cpu.FetchCode()
	text += fmt.Sprintf("% 5s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %02X %v\n", "ir", uint8(code), code.String())
	text += fmt.Sprintf("% 5s: %v\n", "fl", cpu.Flags.String())
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %02X\n", CodeReg(n).String(), val)
	}
	text += fmt.Sprintf("% 5s: %v\n", "state", cpu.State.String())

	return
}

// Trace returns a single line with the PC, the next three bytes of memory,
// and every register.
func (cpu *Cpu) Trace() (text string) {
	text = fmt.Sprintf("TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.Memory.Read(cpu.Pc),
		cpu.Memory.Read(cpu.Pc+1),
		cpu.Memory.Read(cpu.Pc+2),
	)

	for _, val := range cpu.Register {
		text += fmt.Sprintf(" %02X", val)
	}

	return
}

// FetchCode fetches the instruction at the PC.
func (cpu *Cpu) FetchCode() (code Code) {
	return Code(cpu.Memory.Read(cpu.Pc))
}

// Tick executes a single CPU instruction cycle.
//
// A HLT moves the CPU to STATE_HALTED and returns nil. Any execution error
// moves the CPU to STATE_FAULTED with the PC left at the faulting
// instruction. Ticking a stopped CPU returns ErrHalted or ErrFaulted.
func (cpu *Cpu) Tick() (err error) {
	switch cpu.State {
	case STATE_HALTED:
		err = ErrHalted
		return
	case STATE_FAULTED:
		err = ErrFaulted
		return
	}

	code := cpu.FetchCode()

	outcome, err := cpu.Execute(code)
	if err != nil {
		cpu.State = STATE_FAULTED
		return
	}

	cpu.Ticks++

	if outcome == OUTCOME_HALT {
		cpu.State = STATE_HALTED
		if cpu.Verbose {
			cpu.logger().Debug("cpu: halt", "pc", cpu.Pc, "ticks", cpu.Ticks)
		}
	}

	return
}

// Run ticks the CPU until it halts or faults.
func (cpu *Cpu) Run() (err error) {
	for cpu.State == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction at the PC.
//
// On success the PC is advanced past the instruction, or set to the jump
// target, or left in place on HLT. On error no further state is modified
// and the PC is not advanced.
func (cpu *Cpu) Execute(code Code) (outcome Outcome, err error) {
	if cpu.Verbose {
		cpu.logger().Debug("cpu: execute", "pc", cpu.Pc, "code", code.String())
	}

	var target uint8

	switch code.Class() {
	case OP_SPECIAL:
		op := code.SpecialDecode()
		if !op.Valid() {
			err = errors.Join(ErrOpcode{Code: code, Pc: cpu.Pc}, ErrSystemFault)
			return
		}
		var reg CodeReg
		if op.Operands() > 0 {
			reg, err = cpu.getRegister(1)
			if err != nil {
				return
			}
		}
		outcome, target, err = cpu.doSpecial(op, reg)
	case OP_ALU:
		op := code.AluDecode()
		if !op.Valid() {
			err = errors.Join(ErrOpcode{Code: code, Pc: cpu.Pc}, ErrAluUnsupported)
			return
		}
		var reg_a, reg_b CodeReg
		reg_a, err = cpu.getRegister(1)
		if err != nil {
			return
		}
		reg_b, err = cpu.getRegister(2)
		if err != nil {
			return
		}
		var output uint8
		var flags Flags
		output, flags, err = doAlu(op, cpu.Register[reg_a], cpu.Register[reg_b], cpu.Flags)
		if err != nil {
			err = errors.Join(ErrOpcode{Code: code, Pc: cpu.Pc}, err)
			return
		}
		cpu.Register[reg_a] = output
		cpu.Flags = flags
		outcome = OUTCOME_ADVANCE
	default:
		op := code.DataDecode()
		if !op.Valid() {
			err = ErrOpcode{Code: code, Pc: cpu.Pc}
			return
		}
		outcome, err = cpu.doData(op)
	}

	if err != nil {
		return
	}

	switch outcome {
	case OUTCOME_ADVANCE:
		cpu.Pc += code.Width()
	case OUTCOME_JUMP:
		cpu.Pc = target
	case OUTCOME_HALT:
		// PC stays on the HLT.
	}

	return
}

// getRegister decodes the register operand at PC+offset.
func (cpu *Cpu) getRegister(offset uint8) (reg CodeReg, err error) {
	value := cpu.Memory.Read(cpu.Pc + offset)
	reg, ok := DecodeRegister(value)
	if !ok {
		err = ErrRegister{Value: value, Pc: cpu.Pc}
		return
	}

	return
}

// doAlu performs the requested ALU action on two register values, and
// returns the value for the first register and the new flags.
func doAlu(op CodeAluOp, a uint8, b uint8, fl Flags) (output uint8, flags Flags, err error) {
	output = a
	flags = fl

	switch op {
	case ALU_OP_ADD:
		output = a + b
	case ALU_OP_MUL:
		output = a * b
	case ALU_OP_CMP:
		flags = Compare(a, b)
	default:
		err = ErrAluUnsupported
	}

	return
}

// condition returns true if the conditional jump is taken for the flags.
func condition(op CodeSpecialOp, fl Flags) (taken bool) {
	switch op {
	case SPECIAL_OP_JMP:
		taken = true
	case SPECIAL_OP_JEQ:
		taken = fl.Equal()
	case SPECIAL_OP_JNE:
		taken = fl&FLAG_EQ == 0
	case SPECIAL_OP_JGE:
		taken = fl&(FLAG_GT|FLAG_EQ) != 0
	case SPECIAL_OP_JGT:
		taken = fl.Greater()
	case SPECIAL_OP_JLE:
		taken = fl&(FLAG_LT|FLAG_EQ) != 0
	case SPECIAL_OP_JLT:
		taken = fl.Less()
	}

	return
}

// doSpecial performs a control flow operation. A jump outcome carries the
// new PC in target.
func (cpu *Cpu) doSpecial(op CodeSpecialOp, reg CodeReg) (outcome Outcome, target uint8, err error) {
	outcome = OUTCOME_ADVANCE

	switch op {
	case SPECIAL_OP_CALL:
		cpu.Push(cpu.Pc + 2)
		target = cpu.Register[reg]
		outcome = OUTCOME_JUMP
	case SPECIAL_OP_RET:
		target = cpu.Pop()
		outcome = OUTCOME_JUMP
	case SPECIAL_OP_JMP, SPECIAL_OP_JEQ, SPECIAL_OP_JNE, SPECIAL_OP_JGE,
		SPECIAL_OP_JGT, SPECIAL_OP_JLE, SPECIAL_OP_JLT:
		if condition(op, cpu.Flags) {
			target = cpu.Register[reg]
			outcome = OUTCOME_JUMP
		}
	default:
		err = ErrSystemFault
	}

	return
}

// doData performs a data operation.
func (cpu *Cpu) doData(op CodeDataOp) (outcome Outcome, err error) {
	outcome = OUTCOME_ADVANCE

	if op == DATA_OP_HLT {
		outcome = OUTCOME_HALT
		return
	}

	reg, err := cpu.getRegister(1)
	if err != nil {
		return
	}

	switch op {
	case DATA_OP_LDI:
		cpu.Register[reg] = cpu.Memory.Read(cpu.Pc + 2)
	case DATA_OP_PRN:
		out := cpu.Output
		if out == nil {
			out = io.Discard
		}
		_, err = fmt.Fprintf(out, "%d\n", cpu.Register[reg])
		if err != nil {
			err = errors.Join(ErrOutput, err)
			return
		}
	case DATA_OP_PUSH:
		// The stack pointer moves before the register is read.
		cpu.Register[REG_SP]--
		cpu.Memory.Write(cpu.Register[REG_SP], cpu.Register[reg])
	case DATA_OP_POP:
		// The register is written before the stack pointer moves.
		cpu.Register[reg] = cpu.Peek()
		cpu.Register[REG_SP]++
	default:
		err = ErrOpcode{Code: MakeCodeData(op), Pc: cpu.Pc}
	}

	return
}
