// Package word provides word-level utilities for the codec.
//
// This package contains overflow-checked index arithmetic, 32-byte word
// interpretation on top of uint256, logical-width narrowing (masking and
// sign extension) for the legacy policy, and coercion from Go integer kinds
// to canonical word values for the encoder.
//
// # Contents
//
//   - word.go: safe arithmetic, word packing, width predicates
//   - coerce.go: coercion from Go values to 256-bit word values
//
// This package is internal to the codec.
package word
