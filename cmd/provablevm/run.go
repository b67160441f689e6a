package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/provablevm/provablevm/pkg/provablevm"
)

func runCmd(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	programPath := fs.String("program", "", "path to the program file (required)")
	commitmentPath := fs.String("commitment", "", "path to write the trace-commitment file (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *programPath == "" {
		return fmt.Errorf("run: -program is required")
	}

	program, err := loadProgramFile(*programPath)
	if err != nil {
		return err
	}

	logStderr(fmt.Sprintf("executing program with %d instructions", program.Len()))
	trace, err := provablevm.Run(program, provablevm.DefaultConfig())
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	final := trace.Final()
	logStderr(fmt.Sprintf("halted at pc=%d, final stack=%v", final.PC, final.Stack))

	if *commitmentPath != "" {
		commitment := provablevm.Commit(trace)
		if err := writeCommitmentFile(*commitmentPath, commitment); err != nil {
			return err
		}
		logStderr(fmt.Sprintf("trace commitment written to %s", *commitmentPath))
	}

	return nil
}

func loadProgramFile(path string) (*provablevm.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening program file: %w", err)
	}
	defer f.Close()

	program, err := provablevm.LoadProgram(f)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	return program, nil
}

func writeCommitmentFile(path string, c provablevm.Commitment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating commitment file: %w", err)
	}
	defer f.Close()

	if err := provablevm.WriteCommitment(f, c); err != nil {
		return fmt.Errorf("writing commitment file: %w", err)
	}
	return nil
}
