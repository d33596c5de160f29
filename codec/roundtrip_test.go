package codec

import (
	"bytes"
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/holiman/uint256"

	contractabi "github.com/wippyai/contract-abi"
	"github.com/wippyai/contract-abi/errors"
)

// TestRoundTrip encodes a value, decodes it under both policies, and expects
// the decoded shape back unchanged. Values are written in the decoder's
// output shapes so the comparison is exact.
func TestRoundTrip(t *testing.T) {
	e := NewEncoder()
	d := NewDecoder()

	tests := []struct {
		name  string
		typ   *Type
		value any
	}{
		{"uint8 max", Uint(8), uint64(255)},
		{"uint64 max", Uint(64), uint64(1<<63 + (1<<63 - 1))},
		{"uint256 high bit", Uint(256), new(uint256.Int).Lsh(uint256.NewInt(1), 255)},
		{"int16 negative", Int(16), int64(-300)},
		{"int64 min", Int(64), int64(-1 << 63)},
		{"int256 negative", Int(256), new(uint256.Int).Neg(uint256.NewInt(12345))},
		{"bool", Bool(), true},
		{"address", Address(), contractabi.BytesToAddress(mustHexStr("00000000000000000000000000000000deadbeef"))},
		{"bytes32", FixedBytes(32), bytes.Repeat([]byte{0xA5}, 32)},
		{"enum", Enum(5), uint8(4)},
		{"bytes", Bytes(), bytes.Repeat([]byte{0xCC}, 100)},
		{"empty bytes", Bytes(), []byte{}},
		{"string", String(), "héllo, wörld"},
		{"empty string", String(), ""},
		{"uint16 slice", Array(Uint(16)), []any{uint64(1), uint64(2), uint64(3)}},
		{"empty array", Array(Uint(256)), []any{}},
		{"fixed int8 array", FixedArray(Int(8), 2), []any{int64(-1), int64(7)}},
		{"bytes array", Array(Bytes()), []any{[]byte{0xAA}, []byte{}, []byte{0xBB, 0xCC}}},
		{"nested arrays", Array(Array(Uint(16))), []any{
			[]any{uint64(1)},
			[]any{uint64(2), uint64(3)},
		}},
		{"static tuple", TupleOf(Uint(32), Bool(), Address()), []any{
			uint64(9), false, contractabi.Address{},
		}},
		{"dynamic tuple", Tuple(
			Field{Name: "flag", Type: Bool()},
			Field{Name: "blob", Type: Bytes()},
		), []any{true, []byte("payload")}},
		{"array of tuples", Array(TupleOf(Uint(8), String())), []any{
			[]any{uint64(1), "one"},
			[]any{uint64(2), "two"},
		}},
		{"fixed array of dynamic", FixedArray(String(), 2), []any{"a", "bc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := e.Encode(tt.typ, tt.value)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}

			strict := Strict()
			strict.ExactLength = true
			for _, pol := range []Policy{strict, Legacy()} {
				got, err := d.Decode(tt.typ, data, pol)
				if err != nil {
					t.Fatalf("%s decode failed: %v", pol.Mode, err)
				}
				if !reflect.DeepEqual(got, tt.value) {
					t.Errorf("%s: got %#v, want %#v", pol.Mode, got, tt.value)
				}
			}
		})
	}
}

func TestRoundTrip_Args(t *testing.T) {
	e := NewEncoder()
	d := NewDecoder()

	ts := []*Type{Address(), Uint(256), Array(Bytes()), Bool()}
	args := []any{
		contractabi.BytesToAddress(mustHexStr("1111111111111111111111111111111111111111")),
		uint256.NewInt(1_000_000),
		[]any{[]byte{0x01}, []byte{0x02, 0x03}},
		true,
	}

	data, err := e.EncodeArgs(ts, args)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	pol := Strict()
	pol.ExactLength = true
	got, err := d.DecodeArgs(ts, data, pol)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !reflect.DeepEqual(got, args) {
		t.Errorf("got %#v, want %#v", got, args)
	}
}

// FuzzDecodeArgs hammers the decoder with mutated buffers. Any outcome is
// fine except a panic, an unstructured error, or a strict decode that does
// not re-encode to the identical bytes: canonical form is unique, so a
// buffer the exhaustive policy accepts must be its own re-encoding.
func FuzzDecodeArgs(f *testing.F) {
	ts := []*Type{Uint(64), Bytes(), Array(Uint(16)), TupleOf(Bool(), String())}

	enc := NewEncoder()
	seed, err := enc.EncodeArgs(ts, []any{
		uint64(7),
		[]byte("seed payload"),
		[]any{uint64(1), uint64(2)},
		[]any{true, "hi"},
	})
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed)
	f.Add([]byte{})
	f.Add(bytes.Repeat([]byte{0xFF}, 4*32))

	strict := Strict()
	strict.ExactLength = true

	f.Fuzz(func(t *testing.T, data []byte) {
		dec := NewDecoder()

		vals, err := dec.DecodeArgs(ts, data, strict)
		if err == nil {
			out, err := enc.EncodeArgs(ts, vals)
			if err != nil {
				t.Fatalf("accepted values failed to re-encode: %v", err)
			}
			if !bytes.Equal(out, data) {
				t.Fatalf("re-encoding diverged:\nin  %x\nout %x", data, out)
			}
		} else {
			var abiErr *errors.Error
			if !stderrors.As(err, &abiErr) {
				t.Fatalf("unstructured strict error: %v", err)
			}
		}

		if _, err := dec.DecodeArgs(ts, data, Legacy()); err != nil {
			var abiErr *errors.Error
			if !stderrors.As(err, &abiErr) {
				t.Fatalf("unstructured legacy error: %v", err)
			}
		}
	})
}
