package emulator

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/ls8/cpu"
)

func TestTraceFilter_Match(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	c := emu.Cpu
	c.Memory[0] = uint8(cpu.MakeCodeSpecial(cpu.SPECIAL_OP_CALL))
	c.Register[2] = 0x42
	c.Flags = cpu.FLAG_GT

	table := [](struct {
		expr  string
		match bool
	}){
		{"True", true},
		{"pc == 0", true},
		{"pc != 0", false},
		{"ir == CALL", true},
		{"ir == RET", false},
		{"r[2] == 0x42", true},
		{"sp == STACK_TOP", true},
		{"r[SP] == sp", true},
		{"fl & FL_GT", true},
		{"fl == FL_EQ", false},
		{"mem[pc] >> 4 & 1", true},
		{"ticks", false},
		{"[x for x in r if x]", true},
	}

	for _, entry := range table {
		filter, err := NewTraceFilter(entry.expr, emu.Defines())
		require.NoError(t, err, entry.expr)
		match, err := filter.Match(c)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.match, match, entry.expr)
	}
}

func TestTraceFilter_Invalid(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	for _, expr := range []string{
		"pc ==",
		"unknown_name > 1",
		")",
	} {
		_, err := NewTraceFilter(expr, emu.Defines())
		var etf *ErrTraceFilter
		if assert.ErrorAs(err, &etf, expr) {
			assert.Equal(expr, etf.Expr)
		}
	}
}

func TestTraceFilter_RuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	filter, err := NewTraceFilter("1 // pc", emu.Defines())
	assert.NoError(err)

	_, err = filter.Match(emu.Cpu)
	var etf *ErrTraceFilter
	assert.ErrorAs(err, &etf)
}

func TestEmulatorTraceFilter(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Output = &bytes.Buffer{}
	trace := &bytes.Buffer{}
	emu.Trace = trace

	filter, err := NewTraceFilter("ir == CALL or ir == RET", emu.Defines())
	assert.NoError(err)
	emu.TraceFilter = filter

	assert.NoError(emu.LoadFile(filepath.Join("testdata", "call.ls8")))
	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())

	lines := strings.Split(strings.TrimSpace(trace.String()), "\n")
	assert.Len(lines, 8)
	assert.True(strings.HasPrefix(lines[0], "TRACE: 06 | 50 01 82 |"), lines[0])
	assert.True(strings.HasPrefix(lines[1], "TRACE: 1D | 11 "), lines[1])
}
