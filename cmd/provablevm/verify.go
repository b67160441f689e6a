package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/provablevm/provablevm/pkg/provablevm"
)

func verifyCmd(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	programPath := fs.String("program", "", "path to the program file (required)")
	initial := fs.String("initial", "", "comma-separated initial stack, bottom first")
	final := fs.String("final", "", "comma-separated claimed final stack, bottom first")
	vkPath := fs.String("vk", "provablevm.vk", "path to the verifying key")
	commitmentPath := fs.String("commitment", "", "path to the trace-commitment file (required)")
	proofPath := fs.String("proof", "provablevm.proof", "path to the proof")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *programPath == "" || *vkPath == "" || *commitmentPath == "" || *proofPath == "" {
		return fmt.Errorf("verify: -program, -vk, -commitment, and -proof are required")
	}

	program, err := loadProgramFile(*programPath)
	if err != nil {
		return err
	}
	initialStack, err := parseWords(*initial)
	if err != nil {
		return fmt.Errorf("verify: -initial: %w", err)
	}
	finalStack, err := parseWords(*final)
	if err != nil {
		return fmt.Errorf("verify: -final: %w", err)
	}

	commitment, err := readCommitmentFile(*commitmentPath)
	if err != nil {
		return err
	}
	vk, err := readKeyFile(*vkPath, provablevm.ReadVerifyingKey)
	if err != nil {
		return err
	}

	f, err := os.Open(*proofPath)
	if err != nil {
		return fmt.Errorf("opening proof file: %w", err)
	}
	defer f.Close()
	proof, err := provablevm.ReadProof(f)
	if err != nil {
		return fmt.Errorf("reading proof file: %w", err)
	}

	verifier := provablevm.NewVerifier(program, initialStack, finalStack)
	if err := verifier.Verify(proof, vk, commitment); err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	logStderr("proof verified successfully")
	return nil
}
