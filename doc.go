// Package contractabi implements the contract ABI: the canonical byte layout
// used to pass typed argument lists across contract call boundaries.
//
// The codec encodes value trees against immutable type trees into the
// 32-byte-word head/tail wire format, and decodes untrusted byte buffers back
// into typed values under one of two validation policies (strict or legacy).
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	contractabi/         Root package with Word and Address primitives
//	├── codec/           Encoder, Decoder, Policy, and the public Type surface
//	├── sig/             Signature and type-string parsing, 4-byte selectors
//	├── errors/          Structured error types for debugging
//	└── cmd/abidump/     CLI calldata inspector
//
// # Quick Start
//
// Encode and decode a call's arguments:
//
//	method, err := sig.ParseMethod("transfer(address,uint256)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := method.EncodeCall(codec.NewEncoder(), []any{to, amount})
//
//	args, err := method.DecodeCall(codec.NewDecoder(), data, codec.Strict())
//
// # Validation Policies
//
// Decoding takes an explicit Policy value per call. The strict policy rejects
// any structural or value violation (bad padding, boolean other than 0/1,
// enum out of range, misplaced tail offsets, trailing bytes). The legacy
// policy reproduces historical lenient behavior: values are masked to their
// logical width and structural slack is tolerated. Out-of-bounds reads and
// resource-limit violations are rejected under both policies.
//
// # Thread Safety
//
// Type trees are immutable after construction and safe for concurrent use.
// Encoder and Decoder hold no per-call state and may be shared; every call
// owns its own buffers and region bookkeeping.
package contractabi
