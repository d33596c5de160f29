// Package codec encodes and decodes contract ABI argument lists.
//
// The wire format is the canonical head/tail layout over fixed 32-byte
// words:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│ typed values ←→ [Encoder/Decoder] ←→ head/tail byte layout  │
//	└──────────────────────────────────────────────────────────────┘
//
// # Head and Tail
//
// Each nesting level reserves one head slot per item. Static items live
// directly in their slots; dynamic items leave a one-word offset pointing
// into the tail region appended after the head:
//
//	Type            Head contribution        Tail
//	─────────────────────────────────────────────────────────────
//	uintN/intN      1 word, right-aligned    —
//	bool            1 word (0 or 1)          —
//	address         1 word, low 20 bytes     —
//	bytesN          1 word, left-aligned     —
//	enum            1 word (member index)    —
//	T[k] static     k × head(T) inline       —
//	tuple static    sum of field heads       —
//	bytes/string    1 offset word            length word + padded payload
//	T[]             1 offset word            length word + element region
//	T[k] dynamic    1 offset word            element region
//	tuple dynamic   1 offset word            field region
//
// Offsets are byte distances from the start of the immediately enclosing
// dynamic region's payload, never absolute buffer positions.
//
// # Key Types
//
//	Encoder           - Writes value trees to wire bytes
//	Decoder           - Reads wire bytes into value trees
//	Policy            - Per-call validation rule set (strict or legacy)
//	Type              - Immutable type descriptor node
//	LayoutCalculator  - Static head-width and dynamic-size queries
//
// # Decoded Value Mapping
//
//	uintN  N ≤ 64 → uint64, else *uint256.Int
//	intN   N ≤ 64 → int64, else *uint256.Int (two's-complement word)
//	bool → bool, address → contractabi.Address, bytesN → []byte
//	enum → uint8, bytes → []byte, string → string
//	arrays and tuples → []any
//
// The encoder accepts the same shapes plus any Go integer kind via the
// coercion rules in internal/word.
//
// # Policies
//
// Policy is an explicit parameter to every decode call. Strict decoding
// rejects dirty padding, non-canonical booleans, out-of-range enums, and
// tails that do not sit exactly where the canonical encoder places them.
// Legacy decoding masks values to their logical width and tolerates
// structural slack. Out-of-bounds reads and resource-limit violations are
// rejected under both policies; Policy.Limits bounds nesting depth, claimed
// lengths, and total decoded elements before any allocation happens.
//
// # Thread Safety
//
// Type trees, Encoder, and Decoder are all safe for concurrent use: a call
// owns its own buffers and region bookkeeping, and types never mutate after
// construction.
package codec
