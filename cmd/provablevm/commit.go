package main

import (
	"flag"
	"fmt"

	"github.com/provablevm/provablevm/pkg/provablevm"
)

func commitCmd(args []string) error {
	fs := flag.NewFlagSet("commit", flag.ExitOnError)
	programPath := fs.String("program", "", "path to the program file (required)")
	commitmentPath := fs.String("commitment", "", "path to write the trace-commitment file (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *programPath == "" || *commitmentPath == "" {
		return fmt.Errorf("commit: -program and -commitment are required")
	}

	program, err := loadProgramFile(*programPath)
	if err != nil {
		return err
	}

	trace, err := provablevm.Run(program, provablevm.DefaultConfig())
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	commitment := provablevm.Commit(trace)
	if err := writeCommitmentFile(*commitmentPath, commitment); err != nil {
		return err
	}
	logStderr(fmt.Sprintf("trace commitment %s written to %s", commitment.Hex(), *commitmentPath))
	return nil
}
