package word

import (
	"reflect"

	"github.com/holiman/uint256"
)

// TypeName returns "nil" for nil values, avoiding reflect.TypeOf(nil) panic.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}

// CoerceUint converts any non-negative Go integer, or a *uint256.Int, to a
// 256-bit word value. Range checking against a narrower declared width is
// the caller's concern.
func CoerceUint(value any) (*uint256.Int, bool) {
	switch v := value.(type) {
	case *uint256.Int:
		if v == nil {
			return nil, false
		}
		return new(uint256.Int).Set(v), true
	case uint64:
		return uint256.NewInt(v), true
	case uint:
		return uint256.NewInt(uint64(v)), true
	case uint8:
		return uint256.NewInt(uint64(v)), true
	case uint16:
		return uint256.NewInt(uint64(v)), true
	case uint32:
		return uint256.NewInt(uint64(v)), true
	case int:
		if v < 0 {
			return nil, false
		}
		return uint256.NewInt(uint64(v)), true
	case int8:
		if v < 0 {
			return nil, false
		}
		return uint256.NewInt(uint64(v)), true
	case int16:
		if v < 0 {
			return nil, false
		}
		return uint256.NewInt(uint64(v)), true
	case int32:
		if v < 0 {
			return nil, false
		}
		return uint256.NewInt(uint64(v)), true
	case int64:
		if v < 0 {
			return nil, false
		}
		return uint256.NewInt(uint64(v)), true
	}
	return nil, false
}

// CoerceInt converts any Go integer, or a *uint256.Int already holding a
// two's-complement word, to the canonical 256-bit two's-complement form.
func CoerceInt(value any) (*uint256.Int, bool) {
	switch v := value.(type) {
	case *uint256.Int:
		if v == nil {
			return nil, false
		}
		return new(uint256.Int).Set(v), true
	case int:
		return signed64(int64(v)), true
	case int8:
		return signed64(int64(v)), true
	case int16:
		return signed64(int64(v)), true
	case int32:
		return signed64(int64(v)), true
	case int64:
		return signed64(v), true
	case uint8:
		return uint256.NewInt(uint64(v)), true
	case uint16:
		return uint256.NewInt(uint64(v)), true
	case uint32:
		return uint256.NewInt(uint64(v)), true
	case uint64:
		u := uint256.NewInt(v)
		return u, true
	case uint:
		return uint256.NewInt(uint64(v)), true
	}
	return nil, false
}

func signed64(v int64) *uint256.Int {
	u := uint256.NewInt(uint64(v))
	if v < 0 {
		// Low 64 bits already hold the two's complement; extend the sign
		// through the upper words.
		u.ExtendSign(u, uint256.NewInt(7))
	}
	return u
}
