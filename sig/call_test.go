package sig

import (
	"bytes"
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/holiman/uint256"

	contractabi "github.com/wippyai/contract-abi"
	"github.com/wippyai/contract-abi/codec"
	"github.com/wippyai/contract-abi/errors"
)

func TestCallRoundTrip(t *testing.T) {
	m, err := ParseMethod("transfer(address,uint256)")
	if err != nil {
		t.Fatal(err)
	}

	var to contractabi.Address
	to[19] = 0x42
	args := []any{to, uint256.NewInt(1_000_000)}

	data, err := m.EncodeCall(codec.NewEncoder(), args)
	if err != nil {
		t.Fatalf("EncodeCall failed: %v", err)
	}

	sel := m.Selector()
	if !bytes.Equal(data[:4], sel[:]) {
		t.Fatalf("calldata does not open with the selector: %x", data[:4])
	}
	if len(data) != 4+2*32 {
		t.Fatalf("calldata length %d, want %d", len(data), 4+2*32)
	}

	pol := codec.Strict()
	pol.ExactLength = true
	got, err := m.DecodeCall(codec.NewDecoder(), data, pol)
	if err != nil {
		t.Fatalf("DecodeCall failed: %v", err)
	}
	if !reflect.DeepEqual(got, args) {
		t.Errorf("got %#v, want %#v", got, args)
	}
}

func TestDecodeCall_SelectorMismatch(t *testing.T) {
	m, err := ParseMethod("transfer(address,uint256)")
	if err != nil {
		t.Fatal(err)
	}

	data := make([]byte, 4+2*32)
	data[0] = 0xDE // not transfer's selector

	_, err = m.DecodeCall(codec.NewDecoder(), data, codec.Strict())
	var abiErr *errors.Error
	if !stderrors.As(err, &abiErr) || abiErr.Kind != errors.KindInvalidInput {
		t.Fatalf("got %v, want invalid_input", err)
	}
}

func TestDecodeCall_ShortCalldata(t *testing.T) {
	m, err := ParseMethod("noArgs()")
	if err != nil {
		t.Fatal(err)
	}

	_, err = m.DecodeCall(codec.NewDecoder(), []byte{0x01, 0x02}, codec.Strict())
	var abiErr *errors.Error
	if !stderrors.As(err, &abiErr) || abiErr.Kind != errors.KindOutOfBounds {
		t.Fatalf("got %v, want out_of_bounds", err)
	}
}
