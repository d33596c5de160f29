package sig

import (
	"bytes"
	"encoding/hex"

	contractabi "github.com/wippyai/contract-abi"
	"github.com/wippyai/contract-abi/codec"
	"github.com/wippyai/contract-abi/errors"
)

// EncodeCall produces selector-prefixed calldata for the method: the 4-byte
// selector followed by the encoded argument tuple.
func (m Method) EncodeCall(enc *codec.Encoder, args []any) ([]byte, error) {
	body, err := enc.EncodeArgs(m.Inputs, args)
	if err != nil {
		return nil, err
	}
	sel := m.Selector()
	out := make([]byte, 0, len(sel)+len(body))
	out = append(out, sel[:]...)
	return append(out, body...), nil
}

// DecodeCall checks the calldata's selector against the method and decodes
// the argument tuple that follows it.
func (m Method) DecodeCall(dec *codec.Decoder, data []byte, pol codec.Policy) ([]any, error) {
	if len(data) < contractabi.SelectorLength {
		return nil, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Detail("calldata holds %d bytes, shorter than a selector", len(data)).
			Build()
	}
	sel := m.Selector()
	if !bytes.Equal(data[:contractabi.SelectorLength], sel[:]) {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidInput).
			Detail("selector %s does not match %s (%s)",
				hex.EncodeToString(data[:contractabi.SelectorLength]),
				hex.EncodeToString(sel[:]), m.Signature()).
			Build()
	}
	return dec.DecodeArgs(m.Inputs, data[contractabi.SelectorLength:], pol)
}
