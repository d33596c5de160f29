package contractabi

import "encoding/hex"

// WordSize is the fixed 32-byte unit of alignment for all head slots,
// offsets, and length fields in the encoded byte stream.
const WordSize = 32

// AddressLength is the number of significant bytes in an address value.
// Addresses occupy a full word on the wire, right-aligned and zero-extended.
const AddressLength = 20

// SelectorLength is the number of bytes in a function selector prefix.
const SelectorLength = 4

// Word is one 32-byte slot of the encoded head or tail region.
type Word [WordSize]byte

// Address is a contract or account reference value.
type Address [AddressLength]byte

// BytesToAddress returns the address formed by the last 20 bytes of b.
// Shorter input is zero-extended on the left.
func BytesToAddress(b []byte) Address {
	var a Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
	return a
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (w Word) String() string {
	return "0x" + hex.EncodeToString(w[:])
}
