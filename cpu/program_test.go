package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const printListing = `# print8.ls8
10000010 # LDI R0,8
00000000
00001000

01000111 # PRN R0
00000000
00000001 # HLT
`

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgram(strings.NewReader(printListing))
	assert.NoError(err)
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, prog.Binary())

	assert.Equal(2, prog.Opcodes[0].LineNo)
	assert.Equal(0, prog.Opcodes[0].Ip)
	assert.Equal([]string{"10000010"}, prog.Opcodes[0].Words)
	assert.Equal(6, prog.Opcodes[3].LineNo)
	assert.Equal(MakeCodeData(DATA_OP_PRN), prog.Opcodes[3].Code())
}

func TestParseProgram_Forms(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		line  string
		value uint8
	}){
		{"plain", "10000010", 0x82},
		{"short", "1", 1},
		{"prefix", "0b0101", 5},
		{"upper", "0B11", 3},
		{"underscore", "1000_0010", 0x82},
		{"prefix_underscore", "0b_1111_1111", 0xff},
		{"indent", "\t  0110  # spaced", 6},
		{"sign", "+101", 5},
		{"sign_prefix", "+0b1_01", 5},
	}

	for _, entry := range table {
		prog, err := ParseProgram(strings.NewReader(entry.line))
		assert.NoError(err, entry.name)
		assert.Equal([]uint8{entry.value}, prog.Binary(), entry.name)
	}
}

func TestParseProgram_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		text   string
		lineno int
		err    error
	}){
		{"decimal", "\n12\n", 2, ErrParseNumber("12")},
		{"range", "100000000", 1, ErrParseNumber("100000000")},
		{"extra", "0001\n0001 0001", 2, ErrOpcodeExtraArgs},
		{"hex", "0x10", 1, ErrParseNumber("0x10")},
		{"negative", "-1", 1, ErrParseNumber("-1")},
		{"double_sign", "++1", 1, ErrParseNumber("++1")},
	}

	for _, entry := range table {
		_, err := ParseProgram(strings.NewReader(entry.text))
		assert.ErrorIs(err, entry.err, entry.name)
		var es ErrSyntax
		if assert.ErrorAs(err, &es, entry.name) {
			assert.Equal(entry.lineno, es.LineNo, entry.name)
		}
	}
}

func TestParseProgram_TooLarge(t *testing.T) {
	assert := assert.New(t)

	text := strings.Repeat("00000001\n", MEMORY_SIZE)
	prog, err := ParseProgram(strings.NewReader(text))
	assert.NoError(err)
	assert.Len(prog.Opcodes, MEMORY_SIZE)

	_, err = ParseProgram(strings.NewReader(text + "# comment\n\n00000001\n"))
	assert.ErrorIs(err, ErrProgramTooLarge)
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgram(strings.NewReader(printListing))
	assert.NoError(err)

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.LineNo)

	dbg = prog.Debug(5)
	assert.NotNil(dbg.Opcode)
	assert.Equal(8, dbg.LineNo)

	dbg = prog.Debug(6)
	assert.Nil(dbg.Opcode)
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgram(strings.NewReader(printListing))
	assert.NoError(err)

	var ips []uint8
	for ip, code := range prog.Codes() {
		ips = append(ips, ip)
		if ip == 5 {
			assert.Equal(MakeCodeData(DATA_OP_HLT), code)
			break
		}
	}
	assert.Equal([]uint8{0, 1, 2, 3, 4, 5}, ips)
}
