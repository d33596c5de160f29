// Package sig parses canonical ABI type strings and function signatures
// into type descriptor trees, and derives 4-byte dispatch selectors from
// them.
//
//	t, err := sig.ParseType("(address,uint256)[]")
//
//	m, err := sig.ParseMethod("transfer(address,uint256)")
//	sel := m.Selector() // 0xa9059cbb
//
// Methods also carry selector-aware calldata helpers, EncodeCall and
// DecodeCall, which wrap the codec package's argument-tuple operations.
//
// Parsing is a single-pass recursive descent over the source string; all
// failures are structured parse errors, never panics, since signatures
// arrive as untrusted text.
package sig
