package provablevm

import "github.com/provablevm/provablevm/internal/provablevm/vmerr"

// ErrorCode identifies the category of a provablevm error.
type ErrorCode = vmerr.Code

// The provable VM's closed set of error codes.
const (
	ErrUnknown             = vmerr.Unknown
	ErrMalformedProgram    = vmerr.MalformedProgram
	ErrMissingOperand      = vmerr.MissingOperand
	ErrUnexpectedOperand   = vmerr.UnexpectedOperand
	ErrStackUnderflow      = vmerr.StackUnderflow
	ErrArithmeticUnderflow = vmerr.ArithmeticUnderflow
	ErrArithmeticOverflow  = vmerr.ArithmeticOverflow
	ErrHeapMiss            = vmerr.HeapMiss
	ErrUnsupportedOpcode   = vmerr.UnsupportedOpcode
	ErrStepLimitExceeded   = vmerr.StepLimitExceeded
	ErrIoError             = vmerr.IoError
	ErrCommitmentMismatch  = vmerr.CommitmentMismatch
	ErrProofInvalid        = vmerr.ProofInvalid
	ErrSetupFailure        = vmerr.SetupFailure
	ErrProveFailure        = vmerr.ProveFailure
)

// Error is a provablevm error: a closed Code plus a human-readable
// message and an optional wrapped cause.
type Error = vmerr.Error
