package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/provablevm/provablevm/pkg/provablevm"
)

func setupCmd(args []string) error {
	fs := flag.NewFlagSet("setup", flag.ExitOnError)
	programPath := fs.String("program", "", "path to the program file (required)")
	initial := fs.String("initial", "", "comma-separated initial stack, bottom first")
	final := fs.String("final", "", "comma-separated claimed final stack, bottom first")
	pkPath := fs.String("pk", "provablevm.pk", "path to write the proving key")
	vkPath := fs.String("vk", "provablevm.vk", "path to write the verifying key")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *programPath == "" {
		return fmt.Errorf("setup: -program is required")
	}

	program, err := loadProgramFile(*programPath)
	if err != nil {
		return err
	}
	initialStack, err := parseWords(*initial)
	if err != nil {
		return fmt.Errorf("setup: -initial: %w", err)
	}
	finalStack, err := parseWords(*final)
	if err != nil {
		return fmt.Errorf("setup: -final: %w", err)
	}

	logStderr("compiling execution circuit and running trusted setup")
	prover := provablevm.NewProver(program, initialStack, finalStack, nil)
	keys, err := prover.Setup()
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	if err := writeKeyFile(*pkPath, func(f *os.File) error { return provablevm.WriteProvingKey(f, keys.ProvingKey) }); err != nil {
		return err
	}
	if err := writeKeyFile(*vkPath, func(f *os.File) error { return provablevm.WriteVerifyingKey(f, keys.VerifyingKey) }); err != nil {
		return err
	}

	logStderr(fmt.Sprintf("proving key written to %s, verifying key written to %s", *pkPath, *vkPath))
	return nil
}

func writeKeyFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating key file %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return fmt.Errorf("writing key file %s: %w", path, err)
	}
	return nil
}
