package word

import (
	"math"

	"github.com/holiman/uint256"
)

// Size is the byte width of one word on the wire.
const Size = 32

// MaxInt mirrors the largest offset or length the decoder will consider.
// Anything above it cannot index a real buffer and is rejected up front.
const MaxInt = math.MaxInt

func SafeAdd(a, b int) (int, bool) {
	if a < 0 || b < 0 || a > MaxInt-b {
		return 0, false
	}
	return a + b, true
}

func SafeMul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if b != 0 && a > MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// AlignUp rounds n up to the next word boundary.
func AlignUp(n int) (int, bool) {
	if n < 0 || n > MaxInt-(Size-1) {
		return 0, false
	}
	return (n + Size - 1) &^ (Size - 1), true
}

// U256 interprets a 32-byte big-endian word as an unsigned 256-bit integer.
func U256(w []byte) *uint256.Int {
	return new(uint256.Int).SetBytes(w)
}

// ToInt narrows an offset or length word to a host int. Words that do not
// fit are unusable as buffer indices regardless of policy.
func ToInt(u *uint256.Int) (int, bool) {
	if !u.IsUint64() {
		return 0, false
	}
	v := u.Uint64()
	if v > uint64(math.MaxInt) {
		return 0, false
	}
	return int(v), true
}

// PutU256 writes u as a 32-byte big-endian word into dst[:32].
func PutU256(dst []byte, u *uint256.Int) {
	b := u.Bytes32()
	copy(dst, b[:])
}

// UintFits reports whether u is representable in an unsigned integer of the
// given bit width.
func UintFits(u *uint256.Int, bits int) bool {
	return u.BitLen() <= bits
}

// IntFits reports whether the 256-bit two's-complement value u is
// representable in a signed integer of the given bit width, i.e. whether u
// is already its own sign extension from that width.
func IntFits(u *uint256.Int, bits int) bool {
	ext := SignExtend(u, bits)
	return ext.Eq(u)
}

// MaskUint truncates u to its low bits, discarding any residue above the
// logical width. Legacy-policy narrowing for unsigned values.
func MaskUint(u *uint256.Int, bits int) *uint256.Int {
	if bits >= 256 {
		return new(uint256.Int).Set(u)
	}
	mask := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits))
	mask.SubUint64(mask, 1)
	return new(uint256.Int).And(u, mask)
}

// SignExtend keeps the low bits of u and propagates their sign bit through
// the full word. Legacy-policy narrowing for signed values.
func SignExtend(u *uint256.Int, bits int) *uint256.Int {
	byteNum := uint256.NewInt(uint64(bits/8 - 1))
	return new(uint256.Int).ExtendSign(u, byteNum)
}

// IsZero reports whether every byte of b is zero.
func IsZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
