package sig

import (
	"golang.org/x/crypto/sha3"

	contractabi "github.com/wippyai/contract-abi"
)

// Selector returns the method's 4-byte dispatch selector: the leading bytes
// of the legacy Keccak-256 digest of the canonical signature.
func (m Method) Selector() [contractabi.SelectorLength]byte {
	return SelectorOf(m.Signature())
}

// SelectorOf hashes an already-canonical signature string. Callers with a
// loose signature should go through ParseMethod first so aliases such as
// "uint" normalize before hashing.
func SelectorOf(signature string) [contractabi.SelectorLength]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	var sel [contractabi.SelectorLength]byte
	copy(sel[:], h.Sum(nil))
	return sel
}
