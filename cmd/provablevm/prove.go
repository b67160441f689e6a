package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/provablevm/provablevm/pkg/provablevm"
)

func proveCmd(args []string) error {
	fs := flag.NewFlagSet("prove", flag.ExitOnError)
	programPath := fs.String("program", "", "path to the program file (required)")
	initial := fs.String("initial", "", "comma-separated initial stack, bottom first")
	final := fs.String("final", "", "comma-separated claimed final stack, bottom first")
	pkPath := fs.String("pk", "provablevm.pk", "path to the proving key")
	commitmentPath := fs.String("commitment", "", "path to the trace-commitment file (required)")
	proofPath := fs.String("proof", "provablevm.proof", "path to write the proof")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *programPath == "" || *pkPath == "" || *commitmentPath == "" {
		return fmt.Errorf("prove: -program, -pk, and -commitment are required")
	}

	program, err := loadProgramFile(*programPath)
	if err != nil {
		return err
	}
	initialStack, err := parseWords(*initial)
	if err != nil {
		return fmt.Errorf("prove: -initial: %w", err)
	}
	finalStack, err := parseWords(*final)
	if err != nil {
		return fmt.Errorf("prove: -final: %w", err)
	}

	logStderr("re-executing program to recover its trace")
	trace, err := provablevm.Run(program, provablevm.DefaultConfig())
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}

	commitment, err := readCommitmentFile(*commitmentPath)
	if err != nil {
		return err
	}

	pk, err := readKeyFile(*pkPath, provablevm.ReadProvingKey)
	if err != nil {
		return err
	}

	logStderr("building witness and generating proof")
	prover := provablevm.NewProver(program, initialStack, finalStack, trace)
	proof, err := prover.Prove(pk, commitment)
	if err != nil {
		return fmt.Errorf("prove: %w", err)
	}

	f, err := os.Create(*proofPath)
	if err != nil {
		return fmt.Errorf("creating proof file: %w", err)
	}
	defer f.Close()
	if err := provablevm.WriteProof(f, proof); err != nil {
		return fmt.Errorf("writing proof file: %w", err)
	}

	logStderr(fmt.Sprintf("proof written to %s", *proofPath))
	return nil
}

func readCommitmentFile(path string) (provablevm.Commitment, error) {
	f, err := os.Open(path)
	if err != nil {
		return provablevm.Commitment{}, fmt.Errorf("opening commitment file: %w", err)
	}
	defer f.Close()
	c, err := provablevm.ReadCommitment(f)
	if err != nil {
		return provablevm.Commitment{}, fmt.Errorf("reading commitment file: %w", err)
	}
	return c, nil
}

func readKeyFile[K any](path string, read func(r io.Reader) (K, error)) (K, error) {
	var zero K
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("opening key file %s: %w", path, err)
	}
	defer f.Close()
	k, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("reading key file %s: %w", path, err)
	}
	return k, nil
}
