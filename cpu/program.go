package cpu

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Opcode is one line of a program listing, holding a single byte.
type Opcode struct {
	LineNo int
	Ip     int
	Words  []string
	Value  uint8
}

// Code returns the byte as an instruction word.
func (op Opcode) Code() Code {
	return Code(op.Value)
}

// Program is a loaded program listing.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
}

// Debug returns the listing entry loaded at address ip. The Opcode is nil
// when nothing was loaded there.
func (prog *Program) Debug(ip uint8) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(ip) == op.Ip {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
			}
			break
		}
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []uint8) {
	for _, code := range prog.Codes() {
		bins = append(bins, uint8(code))
	}

	return
}

// Codes iterates over each address and its loaded byte.
func (prog *Program) Codes() iter.Seq2[uint8, Code] {
	return func(yield func(ip uint8, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(uint8(op.Ip), op.Code()) {
				return
			}
		}
	}
}

// parseByte parses a base-2 byte. An optional '+' sign, 0b prefix and '_'
// digit separators are accepted.
func parseByte(word string) (value uint8, err error) {
	lower := strings.ToLower(strings.TrimPrefix(word, "+"))
	if !strings.HasPrefix(lower, "0b") {
		lower = "0b" + lower
	}

	v64, err := strconv.ParseUint(lower, 0, 8)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(v64)

	return
}

// ParseProgram reads a program listing: one binary byte per line. Text
// after a '#' is a comment, and empty lines are skipped. Bytes are placed
// at successive addresses starting at 0.
func ParseProgram(r io.Reader) (prog *Program, err error) {
	prog = &Program{}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		text, _, _ := strings.Cut(line, "#")
		words := strings.Fields(text)
		if len(words) == 0 {
			continue
		}

		if len(words) > 1 {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrOpcodeExtraArgs}
			return
		}

		if len(prog.Opcodes) >= MEMORY_SIZE {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrProgramTooLarge}
			return
		}

		var value uint8
		value, err = parseByte(words[0])
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		prog.Opcodes = append(prog.Opcodes, Opcode{
			LineNo: lineno,
			Ip:     len(prog.Opcodes),
			Words:  words,
			Value:  value,
		})
	}

	err = scanner.Err()

	return
}
