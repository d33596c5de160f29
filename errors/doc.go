// Package errors provides structured error types for the contract-abi codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: value path, Go/ABI type
// names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
//		Path("arg[2]", "[0]").
//		AbiType("bool").
//		Detail("boolean word is 0x02, want 0 or 1").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseDecode, path, 96, 32, 64)
//	err := errors.TypeMismatch(errors.PhaseEncode, path, "string", "uint256")
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so decode failures can be classified without
// string inspection:
//
//	errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds})
package errors
