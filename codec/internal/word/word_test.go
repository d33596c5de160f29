package word

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
)

func TestSafeAdd(t *testing.T) {
	tests := []struct {
		a, b   int
		result int
		ok     bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{math.MaxInt, 0, math.MaxInt, true},
		{math.MaxInt, 1, 0, false},
		{math.MaxInt - 31, 32, 0, false},
		{-1, 1, 0, false},
		{1, -1, 0, false},
	}

	for _, tc := range tests {
		result, ok := SafeAdd(tc.a, tc.b)
		if ok != tc.ok {
			t.Errorf("SafeAdd(%d, %d): got ok=%v, want %v", tc.a, tc.b, ok, tc.ok)
		}
		if ok && result != tc.result {
			t.Errorf("SafeAdd(%d, %d): got %d, want %d", tc.a, tc.b, result, tc.result)
		}
	}
}

func TestSafeMul(t *testing.T) {
	tests := []struct {
		a, b   int
		result int
		ok     bool
	}{
		{0, 0, 0, true},
		{1, 0, 0, true},
		{100, 100, 10000, true},
		{math.MaxInt, 1, math.MaxInt, true},
		{math.MaxInt, 2, 0, false},
		{math.MaxInt/32 + 1, 32, 0, false},
		{-1, 32, 0, false},
	}

	for _, tc := range tests {
		result, ok := SafeMul(tc.a, tc.b)
		if ok != tc.ok {
			t.Errorf("SafeMul(%d, %d): got ok=%v, want %v", tc.a, tc.b, ok, tc.ok)
		}
		if ok && result != tc.result {
			t.Errorf("SafeMul(%d, %d): got %d, want %d", tc.a, tc.b, result, tc.result)
		}
	}
}

func TestAlignUp(t *testing.T) {
	tests := []struct {
		n      int
		result int
		ok     bool
	}{
		{0, 0, true},
		{1, 32, true},
		{31, 32, true},
		{32, 32, true},
		{33, 64, true},
		{math.MaxInt - 30, 0, false},
		{-1, 0, false},
	}

	for _, tc := range tests {
		result, ok := AlignUp(tc.n)
		if ok != tc.ok {
			t.Errorf("AlignUp(%d): got ok=%v, want %v", tc.n, ok, tc.ok)
		}
		if ok && result != tc.result {
			t.Errorf("AlignUp(%d): got %d, want %d", tc.n, result, tc.result)
		}
	}
}

func TestU256RoundTrip(t *testing.T) {
	buf := make([]byte, Size)
	u := uint256.NewInt(0xDEADBEEF)
	PutU256(buf, u)

	if buf[Size-1] != 0xEF || buf[Size-4] != 0xDE {
		t.Errorf("PutU256 not big-endian right-aligned: % x", buf)
	}
	if got := U256(buf); !got.Eq(u) {
		t.Errorf("U256(PutU256(x)) = %v, want %v", got, u)
	}
}

func TestToInt(t *testing.T) {
	if v, ok := ToInt(uint256.NewInt(1234)); !ok || v != 1234 {
		t.Errorf("ToInt(1234) = %d, %v", v, ok)
	}

	huge := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	if _, ok := ToInt(huge); ok {
		t.Error("ToInt should reject values above 2^64")
	}

	over := new(uint256.Int).SetUint64(math.MaxUint64)
	if _, ok := ToInt(over); ok {
		t.Error("ToInt should reject values above MaxInt")
	}
}

func TestUintFits(t *testing.T) {
	if !UintFits(uint256.NewInt(255), 8) {
		t.Error("255 should fit uint8")
	}
	if UintFits(uint256.NewInt(256), 8) {
		t.Error("256 should not fit uint8")
	}
	max := new(uint256.Int).Lsh(uint256.NewInt(1), 256)
	max.SubUint64(max, 1)
	if !UintFits(max, 256) {
		t.Error("2^256-1 should fit uint256")
	}
}

func TestIntFits(t *testing.T) {
	// -1 as a full 256-bit word
	minusOne := signed64(-1)
	if !IntFits(minusOne, 8) {
		t.Error("-1 should fit int8")
	}

	if !IntFits(uint256.NewInt(127), 8) {
		t.Error("127 should fit int8")
	}
	if IntFits(uint256.NewInt(128), 8) {
		t.Error("128 should not fit int8")
	}

	minusOneTwoEight := signed64(-128)
	if !IntFits(minusOneTwoEight, 8) {
		t.Error("-128 should fit int8")
	}
	if !IntFits(signed64(-129), 16) || IntFits(signed64(-129), 8) {
		t.Error("-129 fits int16 but not int8")
	}
}

func TestMaskUint(t *testing.T) {
	dirty := uint256.NewInt(0x1FFFF)
	if got := MaskUint(dirty, 16); got.Uint64() != 0xFFFF {
		t.Errorf("MaskUint(0x1FFFF, 16) = %#x", got.Uint64())
	}
	full := new(uint256.Int).Lsh(uint256.NewInt(1), 255)
	if got := MaskUint(full, 256); !got.Eq(full) {
		t.Error("MaskUint with 256 bits should be identity")
	}
}

func TestSignExtend(t *testing.T) {
	// Word holding 0xFF in the low byte with zero residue above: as int8
	// this is -1, so the extension fills the word with 0xFF.
	got := SignExtend(uint256.NewInt(0xFF), 8)
	if !got.Eq(signed64(-1)) {
		t.Errorf("SignExtend(0xFF, 8) = %v, want -1 word", got)
	}

	// Positive low byte with dirty residue above: residue is discarded.
	got = SignExtend(uint256.NewInt(0x17F), 8)
	if got.Uint64() != 0x7F {
		t.Errorf("SignExtend(0x17F, 8) = %#x, want 0x7f", got.Uint64())
	}
}

func TestCoerceUint(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  uint64
		ok    bool
	}{
		{"uint64", uint64(42), 42, true},
		{"int", int(7), 7, true},
		{"uint8", uint8(255), 255, true},
		{"negative int", int(-1), 0, false},
		{"negative int64", int64(-5), 0, false},
		{"string", "42", 0, false},
		{"nil", nil, 0, false},
		{"uint256", uint256.NewInt(99), 99, true},
		{"nil uint256", (*uint256.Int)(nil), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, ok := CoerceUint(tc.value)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && u.Uint64() != tc.want {
				t.Errorf("got %d, want %d", u.Uint64(), tc.want)
			}
		})
	}
}

func TestCoerceUintCopies(t *testing.T) {
	orig := uint256.NewInt(5)
	u, ok := CoerceUint(orig)
	if !ok {
		t.Fatal("coerce failed")
	}
	u.SetUint64(7)
	if orig.Uint64() != 5 {
		t.Error("CoerceUint must not alias the caller's value")
	}
}

func TestCoerceInt(t *testing.T) {
	u, ok := CoerceInt(int64(-1))
	if !ok {
		t.Fatal("coerce failed")
	}
	b := u.Bytes32()
	for i, c := range b {
		if c != 0xFF {
			t.Fatalf("byte %d of -1 word = %#x, want 0xff", i, c)
		}
	}

	u, ok = CoerceInt(int32(1000))
	if !ok || u.Uint64() != 1000 {
		t.Errorf("CoerceInt(1000) = %v, %v", u, ok)
	}

	if _, ok := CoerceInt("x"); ok {
		t.Error("CoerceInt should reject strings")
	}
}

func TestIsZero(t *testing.T) {
	if !IsZero(nil) || !IsZero(make([]byte, 31)) {
		t.Error("all-zero slices should be zero")
	}
	if IsZero([]byte{0, 0, 1}) {
		t.Error("nonzero byte not detected")
	}
}
