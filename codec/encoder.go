package codec

import (
	"reflect"
	"strconv"

	"github.com/holiman/uint256"

	contractabi "github.com/wippyai/contract-abi"
	"github.com/wippyai/contract-abi/codec/internal/layout"
	"github.com/wippyai/contract-abi/codec/internal/word"
	"github.com/wippyai/contract-abi/errors"
)

// Encoder walks a value tree against its type tree and emits the canonical
// head/tail byte layout. Encoders hold no per-call state and are safe for
// concurrent use.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode encodes a single typed value as a one-argument call would carry it.
func (e *Encoder) Encode(t *Type, value any) ([]byte, error) {
	return e.EncodeArgs([]*Type{t}, []any{value})
}

// EncodeArgs encodes an argument list as the implicit top-level tuple: the
// head region for all arguments followed by their concatenated tails.
func (e *Encoder) EncodeArgs(ts []*Type, values []any) ([]byte, error) {
	if len(ts) != len(values) {
		return nil, errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
			Detail("argument count mismatch: %d types, %d values", len(ts), len(values)).
			Build()
	}
	return e.encodeSequence(ts, values, nil, "arg")
}

// encodeSequence lays out one nesting level: a head slot per item, static
// content in place, dynamic content appended to the tail with its offset
// (relative to this level's own region start) written into the head slot.
func (e *Encoder) encodeSequence(ts []*Type, values []any, path []string, label string) ([]byte, error) {
	info, ok := layout.Sequence(ts)
	if !ok {
		return nil, errors.ResourceLimit(errors.PhaseEncode, path, "head width", len(ts), word.MaxInt/word.Size)
	}

	head := make([]byte, info.Bytes())
	var tail []byte
	cursor := 0

	for i, t := range ts {
		p := appendPath(path, label+"["+strconv.Itoa(i)+"]")

		if !t.Dynamic() {
			if err := e.encodeStatic(t, values[i], head[cursor:cursor+t.HeadBytes()], p); err != nil {
				return nil, err
			}
		} else {
			offset := len(head) + len(tail)
			word.PutU256(head[cursor:cursor+word.Size], uint256.NewInt(uint64(offset)))

			tb, err := e.encodeTail(t, values[i], p)
			if err != nil {
				return nil, err
			}
			tail = append(tail, tb...)
		}

		cursor += t.HeadBytes()
	}

	return append(head, tail...), nil
}

// encodeStatic writes a static item directly into its head slot(s).
// dst is exactly t.HeadBytes() long.
func (e *Encoder) encodeStatic(t *Type, value any, dst []byte, path []string) error {
	switch t.Kind {
	case KindUint:
		u, ok := word.CoerceUint(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), t.String())
		}
		if !word.UintFits(u, t.Bits) {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				AbiType(t.String()).
				Value(value).
				Detail("value does not fit %d bits", t.Bits).
				Build()
		}
		word.PutU256(dst, u)
		return nil

	case KindInt:
		u, ok := word.CoerceInt(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), t.String())
		}
		if !word.IntFits(u, t.Bits) {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				AbiType(t.String()).
				Value(value).
				Detail("value does not fit signed %d bits", t.Bits).
				Build()
		}
		word.PutU256(dst, u)
		return nil

	case KindBool:
		b, ok := value.(bool)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), "bool")
		}
		if b {
			dst[word.Size-1] = 1
		}
		return nil

	case KindAddress:
		a, ok := toAddress(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), "address")
		}
		copy(dst[word.Size-contractabi.AddressLength:], a[:])
		return nil

	case KindFixedBytes:
		b, ok := toFixedBytes(value, t.Size)
		if !ok {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				GoType(word.TypeName(value)).
				AbiType(t.String()).
				Detail("want %d bytes", t.Size).
				Build()
		}
		copy(dst, b)
		return nil

	case KindEnum:
		u, ok := word.CoerceUint(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), t.String())
		}
		if !u.IsUint64() || u.Uint64() >= uint64(t.Members) {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				AbiType(t.String()).
				Value(value).
				Detail("enum value out of range [0,%d)", t.Members).
				Build()
		}
		word.PutU256(dst, u)
		return nil

	case KindFixedArray:
		elems, ok := toSlice(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), t.String())
		}
		if len(elems) != t.Size {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				AbiType(t.String()).
				Detail("fixed array wants %d elements, got %d", t.Size, len(elems)).
				Build()
		}
		w := t.Elem.HeadBytes()
		for i, elem := range elems {
			p := appendPath(path, "["+strconv.Itoa(i)+"]")
			if err := e.encodeStatic(t.Elem, elem, dst[i*w:(i+1)*w], p); err != nil {
				return err
			}
		}
		return nil

	case KindTuple:
		vals, ok := toSlice(value)
		if !ok {
			return errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), t.String())
		}
		if len(vals) != len(t.Fields) {
			return errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				AbiType(t.String()).
				Detail("tuple wants %d fields, got %d", len(t.Fields), len(vals)).
				Build()
		}
		cursor := 0
		for i, f := range t.Fields {
			p := appendPath(path, fieldName(f, i))
			w := f.Type.HeadBytes()
			if err := e.encodeStatic(f.Type, vals[i], dst[cursor:cursor+w], p); err != nil {
				return err
			}
			cursor += w
		}
		return nil

	default:
		// Dynamic kinds never reach here; encodeSequence routes them to
		// encodeTail.
		return errors.Unsupported(errors.PhaseEncode, "static encoding of "+t.Kind.String())
	}
}

// encodeTail emits a dynamic item's payload: the length-prefixed content
// for arrays and byte strings, the inner head/tail region for aggregates.
func (e *Encoder) encodeTail(t *Type, value any, path []string) ([]byte, error) {
	switch t.Kind {
	case KindBytes, KindString:
		b, ok := toBytes(value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), t.String())
		}
		padded, ok := word.AlignUp(len(b))
		if !ok {
			return nil, errors.ResourceLimit(errors.PhaseEncode, path, "byte length", len(b), word.MaxInt)
		}
		out := make([]byte, word.Size+padded)
		word.PutU256(out, uint256.NewInt(uint64(len(b))))
		copy(out[word.Size:], b)
		return out, nil

	case KindArray:
		elems, ok := toSlice(value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), t.String())
		}
		body, err := e.encodeSequence(repeatType(t.Elem, len(elems)), elems, path, "")
		if err != nil {
			return nil, err
		}
		out := make([]byte, word.Size, word.Size+len(body))
		word.PutU256(out, uint256.NewInt(uint64(len(elems))))
		return append(out, body...), nil

	case KindFixedArray:
		elems, ok := toSlice(value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), t.String())
		}
		if len(elems) != t.Size {
			return nil, errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				AbiType(t.String()).
				Detail("fixed array wants %d elements, got %d", t.Size, len(elems)).
				Build()
		}
		return e.encodeSequence(repeatType(t.Elem, t.Size), elems, path, "")

	case KindTuple:
		vals, ok := toSlice(value)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseEncode, path, word.TypeName(value), t.String())
		}
		if len(vals) != len(t.Fields) {
			return nil, errors.New(errors.PhaseEncode, errors.KindTypeMismatch).
				Path(path...).
				AbiType(t.String()).
				Detail("tuple wants %d fields, got %d", len(t.Fields), len(vals)).
				Build()
		}
		fts := make([]*Type, len(t.Fields))
		for i, f := range t.Fields {
			fts[i] = f.Type
		}
		return e.encodeSequence(fts, vals, path, "")

	default:
		return nil, errors.Unsupported(errors.PhaseEncode, "tail encoding of "+t.Kind.String())
	}
}

// Input shape helpers. The encoder accepts the shapes the decoder produces
// plus the common Go spellings of them.

func toAddress(value any) (contractabi.Address, bool) {
	switch v := value.(type) {
	case contractabi.Address:
		return v, true
	case []byte:
		if len(v) == contractabi.AddressLength {
			return contractabi.BytesToAddress(v), true
		}
	}
	return contractabi.Address{}, false
}

func toFixedBytes(value any, size int) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		if len(v) == size {
			return v, true
		}
		return nil, false
	case contractabi.Word:
		if size == contractabi.WordSize {
			return v[:], true
		}
		return nil, false
	}
	// [N]byte arrays of any length via reflection.
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Array && rv.Type().Elem().Kind() == reflect.Uint8 && rv.Len() == size {
		b := make([]byte, size)
		reflect.Copy(reflect.ValueOf(b), rv)
		return b, true
	}
	return nil, false
}

func toBytes(value any) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	}
	return nil, false
}

func toSlice(value any) ([]any, bool) {
	if v, ok := value.([]any); ok {
		return v, true
	}
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		// Byte blobs are values, not element lists.
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func repeatType(elem *Type, n int) []*Type {
	ts := make([]*Type, n)
	for i := range ts {
		ts[i] = elem
	}
	return ts
}

func fieldName(f Field, i int) string {
	if f.Name != "" {
		return f.Name
	}
	return "[" + strconv.Itoa(i) + "]"
}

func appendPath(path []string, name string) []string {
	return append(append([]string{}, path...), name)
}
