// Package provablevm provides a deterministic stack-and-heap virtual
// machine whose executions can be committed to and proven correct with a
// Groth16 zk-SNARK over BLS12-381.
//
// # Features
//
// - A nine-opcode stack machine with a 32-bit word domain
// - Deterministic execution traces and SHA-256 trace commitment
// - A Groth16 execution circuit mirroring the interpreter's semantics
// - Circuit-specific trusted setup, proving, and verification
//
// # Quick Start
//
// Running a program and committing to its trace:
//
//	program, err := provablevm.LoadProgram(r)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	trace, err := provablevm.Run(program, provablevm.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	commitment := provablevm.Commit(trace)
//
// Proving and verifying that execution:
//
//	finalStack := trace.Final().Stack
//	prover := provablevm.NewProver(program, nil, finalStack, trace)
//	keys, err := prover.Setup()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	proof, err := prover.Prove(keys.ProvingKey, commitment)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	verifier := provablevm.NewVerifier(program, nil, finalStack)
//	if err := verifier.Verify(proof, keys.VerifyingKey, commitment); err != nil {
//		log.Fatal(err)
//	}
//
// # Architecture
//
// provablevm uses a hybrid public/private layout:
//
// - pkg/provablevm/: public API (this package)
// - internal/provablevm/: private implementation (not importable)
//
// The public API provides stable types and entry points for running
// programs, committing to traces, and proving/verifying their execution;
// implementation details in internal/ can change without breaking it.
package provablevm
