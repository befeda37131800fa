// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

const (
	EXIT_OK        = 0
	EXIT_FAULT     = 1
	EXIT_NOT_FOUND = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line, and returns the process exit status.
func run(args []string, stdout io.Writer, stderr io.Writer) (status int) {
	var dir string
	var verbose bool
	var trace bool
	var traceIf string
	var journal bool

	cmd := &cobra.Command{
		Use:           "ls8 [flags] program.ls8",
		Short:         "Run an LS-8 program",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			logger := newLogger(stderr, verbose, journal)

			emu := emulator.NewEmulator()
			emu.Verbose = verbose
			emu.Logger = logger
			emu.Output = stdout

			if trace || len(traceIf) != 0 {
				emu.Trace = stderr
			}

			if len(traceIf) != 0 {
				emu.TraceFilter, err = emulator.NewTraceFilter(traceIf, emu.Defines())
				if err != nil {
					return
				}
			}

			path := args[0]
			if len(dir) != 0 && !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}

			err = emu.LoadFile(path)
			if err != nil {
				return
			}

			err = emu.Reset()
			if err != nil {
				return
			}

			err = emu.Run()
			if err != nil {
				logger.Error("fault",
					"pc", fmt.Sprintf("0x%02x", emu.Pc()),
					"line", emu.LineNo(),
					"ticks", emu.Ticks(),
					"error", err)
				if verbose {
					logger.Debug("state\n" + emu.Cpu.String())
				}
				return
			}

			logger.Debug("halt", "ticks", emu.Ticks())

			return
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Directory of relative program names")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "Trace each instruction to stderr")
	cmd.Flags().StringVar(&traceIf, "trace-if", "", "Only trace when the Starlark expression is true")
	cmd.Flags().BoolVar(&journal, "journal", false, "Also log to the systemd journal")

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		status = EXIT_OK
	case errors.Is(err, cpu.ErrProgramNotFound):
		fmt.Fprintf(stderr, "ls8: %v\n", err)
		status = EXIT_NOT_FOUND
	default:
		// Runtime faults were already logged with the machine state.
		var er *emulator.ErrRuntime
		if !errors.As(err, &er) {
			fmt.Fprintf(stderr, "ls8: %v\n", err)
		}
		status = EXIT_FAULT
	}

	return
}
