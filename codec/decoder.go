package codec

import (
	"strconv"

	contractabi "github.com/wippyai/contract-abi"
	"github.com/wippyai/contract-abi/codec/internal/layout"
	"github.com/wippyai/contract-abi/codec/internal/word"
	"github.com/wippyai/contract-abi/errors"
)

// Decoder reconstructs value trees from untrusted byte buffers. Every read
// is bounds-checked against the active region, every derived offset and
// length is overflow-checked, and claimed lengths are validated against the
// remaining region before any allocation. Decoders hold no per-call state
// and are safe for concurrent use; each call owns its own region values.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// region is a half-open byte window over the buffer. start is the payload
// origin of the immediately enclosing dynamic region: all offsets read
// inside it are relative to start. Regions are passed by value and only
// ever narrowed, so bounds stay locally checkable at every step.
type region struct {
	start int
	end   int
}

func (r region) size() int { return r.end - r.start }

// decodeState carries the per-call buffer, policy, and element budget.
type decodeState struct {
	data  []byte
	pol   Policy
	elems int
}

func (st *decodeState) take(path []string) *errors.Error {
	st.elems++
	if st.elems > st.pol.Limits.MaxTotalElements {
		return errors.ResourceLimit(errors.PhaseDecode, path, "total element count", st.elems, st.pol.Limits.MaxTotalElements)
	}
	return nil
}

func (st *decodeState) checkDepth(depth int, path []string) *errors.Error {
	if depth > st.pol.Limits.MaxDepth {
		return errors.ResourceLimit(errors.PhaseDecode, path, "nesting depth", depth, st.pol.Limits.MaxDepth)
	}
	return nil
}

// Decode decodes a single typed value from a one-argument buffer.
func (d *Decoder) Decode(t *Type, data []byte, pol Policy) (any, error) {
	vals, err := d.DecodeArgs([]*Type{t}, data, pol)
	if err != nil {
		return nil, err
	}
	return vals[0], nil
}

// DecodeArgs decodes an argument list from the buffer's implicit top-level
// tuple. Under the strict policy with ExactLength set, undeclared bytes
// beyond the last consumed tail fail with an invalid-encoding error.
func (d *Decoder) DecodeArgs(ts []*Type, data []byte, pol Policy) ([]any, error) {
	st := &decodeState{data: data, pol: pol}
	vals, consumed, err := d.decodeSequence(st, ts, nil, region{start: 0, end: len(data)}, 0, nil, "arg")
	if err != nil {
		return nil, err
	}
	if pol.strict() && pol.ExactLength && consumed != len(data) {
		return nil, errors.InvalidEncoding(errors.PhaseDecode, nil,
			"buffer holds "+strconv.Itoa(len(data))+" bytes but encoding consumed "+strconv.Itoa(consumed))
	}
	return vals, nil
}

// decodeSequence reads one nesting level: each item's head slot(s) in
// declaration order, recursing into tails for dynamic items. It returns the
// level's values and the number of region bytes the encoding accounts for
// (head plus the high-water mark of consumed tails).
func (d *Decoder) decodeSequence(st *decodeState, ts []*Type, names []string, r region, depth int, path []string, label string) ([]any, int, error) {
	if err := st.checkDepth(depth, path); err != nil {
		return nil, 0, err
	}

	info, ok := layout.Sequence(ts)
	if !ok {
		return nil, 0, errors.ResourceLimit(errors.PhaseDecode, path, "head width", len(ts), word.MaxInt/word.Size)
	}
	headBytes := info.Bytes()

	headEnd, ok := word.SafeAdd(r.start, headBytes)
	if !ok || headEnd > r.end {
		return nil, 0, errors.OutOfBounds(errors.PhaseDecode, path, r.start, headBytes, r.end)
	}

	vals := make([]any, len(ts))
	cursor := r.start
	expectedTail := headBytes // strict: where the next tail must begin, relative to r.start
	consumed := headBytes     // high-water mark of accounted bytes, relative to r.start

	for i, t := range ts {
		p := appendPath(path, seqItemName(names, i, label))
		if err := st.take(p); err != nil {
			return nil, 0, err
		}

		if !t.Dynamic() {
			v, err := d.decodeStatic(st, t, cursor, depth, p)
			if err != nil {
				return nil, 0, err
			}
			vals[i] = v
			cursor += t.HeadBytes()
			continue
		}

		// Dynamic item: the head slot holds an offset from r.start to the
		// item's tail data.
		offWord := st.data[cursor : cursor+word.Size]
		offset, ok := word.ToInt(word.U256(offWord))
		if !ok {
			return nil, 0, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
				Path(p...).
				AbiType(t.String()).
				Detail("offset word does not fit an addressable range").
				Build()
		}

		tailStart, ok := word.SafeAdd(r.start, offset)
		if !ok || tailStart > r.end {
			return nil, 0, errors.OutOfBounds(errors.PhaseDecode, p, offset, 0, r.size())
		}

		if st.pol.strict() && offset != expectedTail {
			debugf("decode: tail offset %d, canonical position %d", offset, expectedTail)
			return nil, 0, errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
				Path(p...).
				AbiType(t.String()).
				Detail("tail offset %d does not match canonical position %d", offset, expectedTail).
				Build()
		}

		v, tailConsumed, err := d.decodeTail(st, t, region{start: tailStart, end: r.end}, depth+1, p)
		if err != nil {
			return nil, 0, err
		}
		vals[i] = v

		tailEnd, ok := word.SafeAdd(offset, tailConsumed)
		if !ok {
			return nil, 0, errors.OutOfBounds(errors.PhaseDecode, p, offset, tailConsumed, r.size())
		}
		expectedTail = tailEnd
		if tailEnd > consumed {
			consumed = tailEnd
		}
		cursor += word.Size
	}

	return vals, consumed, nil
}

// decodeStatic interprets a static item at an absolute buffer position.
// The caller has already bounds-checked the item's full head width.
func (d *Decoder) decodeStatic(st *decodeState, t *Type, at int, depth int, path []string) (any, error) {
	if err := st.checkDepth(depth, path); err != nil {
		return nil, err
	}

	switch t.Kind {
	case KindUint, KindInt, KindBool, KindAddress, KindFixedBytes, KindEnum:
		return d.decodeValueWord(st, t, st.data[at:at+word.Size], path)

	case KindFixedArray:
		vals := make([]any, t.Size)
		w := t.Elem.HeadBytes()
		for i := range vals {
			p := appendPath(path, "["+strconv.Itoa(i)+"]")
			if err := st.take(p); err != nil {
				return nil, err
			}
			v, err := d.decodeStatic(st, t.Elem, at+i*w, depth+1, p)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return vals, nil

	case KindTuple:
		vals := make([]any, len(t.Fields))
		cursor := at
		for i, f := range t.Fields {
			p := appendPath(path, fieldName(f, i))
			if err := st.take(p); err != nil {
				return nil, err
			}
			v, err := d.decodeStatic(st, f.Type, cursor, depth+1, p)
			if err != nil {
				return nil, err
			}
			vals[i] = v
			cursor += f.Type.HeadBytes()
		}
		return vals, nil

	default:
		return nil, errors.Unsupported(errors.PhaseDecode, "static decoding of "+t.Kind.String())
	}
}

// decodeValueWord interprets one word per its value kind. The strict policy
// demands canonical extension bits; the legacy policy masks to the logical
// width and ignores the residue.
func (d *Decoder) decodeValueWord(st *decodeState, t *Type, w []byte, path []string) (any, error) {
	strict := st.pol.strict()

	switch t.Kind {
	case KindUint:
		u := word.U256(w)
		if strict && !word.UintFits(u, t.Bits) {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
				Path(path...).
				AbiType(t.String()).
				Detail("nonzero bits above %d-bit width", t.Bits).
				Build()
		}
		if !strict {
			u = word.MaskUint(u, t.Bits)
		}
		if t.Bits <= 64 {
			return u.Uint64(), nil
		}
		return u, nil

	case KindInt:
		u := word.U256(w)
		if strict && !word.IntFits(u, t.Bits) {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
				Path(path...).
				AbiType(t.String()).
				Detail("bits above %d-bit width are not a sign extension", t.Bits).
				Build()
		}
		if !strict {
			u = word.SignExtend(u, t.Bits)
		}
		if t.Bits <= 64 {
			return int64(u.Uint64()), nil
		}
		return u, nil

	case KindBool:
		if strict {
			if !word.IsZero(w[:word.Size-1]) || w[word.Size-1] > 1 {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
					Path(path...).
					AbiType("bool").
					Detail("boolean word is not 0 or 1").
					Build()
			}
			return w[word.Size-1] == 1, nil
		}
		return !word.IsZero(w), nil

	case KindAddress:
		if strict && !word.IsZero(w[:word.Size-contractabi.AddressLength]) {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
				Path(path...).
				AbiType("address").
				Detail("nonzero bits above the address width").
				Build()
		}
		return contractabi.BytesToAddress(w[word.Size-contractabi.AddressLength:]), nil

	case KindFixedBytes:
		if strict && !word.IsZero(w[t.Size:]) {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
				Path(path...).
				AbiType(t.String()).
				Detail("nonzero padding after %d content bytes", t.Size).
				Build()
		}
		out := make([]byte, t.Size)
		copy(out, w[:t.Size])
		return out, nil

	case KindEnum:
		u := word.U256(w)
		if strict {
			if !word.UintFits(u, 8) {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
					Path(path...).
					AbiType(t.String()).
					Detail("nonzero bits above the enum width").
					Build()
			}
			if u.Uint64() >= uint64(t.Members) {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
					Path(path...).
					AbiType(t.String()).
					Value(u.Uint64()).
					Detail("enum value %d out of range [0,%d)", u.Uint64(), t.Members).
					Build()
			}
		}
		return uint8(w[word.Size-1]), nil

	default:
		return nil, errors.Unsupported(errors.PhaseDecode, "value decoding of "+t.Kind.String())
	}
}

// decodeTail reads a dynamic item's payload at the start of r and returns
// the value plus the bytes it accounts for within r.
func (d *Decoder) decodeTail(st *decodeState, t *Type, r region, depth int, path []string) (any, int, error) {
	if err := st.checkDepth(depth, path); err != nil {
		return nil, 0, err
	}

	switch t.Kind {
	case KindBytes, KindString:
		length, err := d.readLength(st, r, st.pol.Limits.MaxBytesLength, "byte length", path)
		if err != nil {
			return nil, 0, err
		}
		padded, ok := word.AlignUp(length)
		if !ok {
			return nil, 0, errors.ResourceLimit(errors.PhaseDecode, path, "byte length", length, word.MaxInt)
		}
		payload := r.start + word.Size
		end, ok := word.SafeAdd(payload, padded)
		if !ok || end > r.end {
			return nil, 0, errors.OutOfBounds(errors.PhaseDecode, path, payload, padded, r.end)
		}
		if st.pol.strict() && !word.IsZero(st.data[payload+length:end]) {
			return nil, 0, errors.New(errors.PhaseDecode, errors.KindInvalidEncoding).
				Path(path...).
				AbiType(t.String()).
				Detail("nonzero padding after %d payload bytes", length).
				Build()
		}
		out := make([]byte, length)
		copy(out, st.data[payload:payload+length])
		if t.Kind == KindString {
			return string(out), word.Size + padded, nil
		}
		return out, word.Size + padded, nil

	case KindArray:
		length, err := d.readLength(st, r, st.pol.Limits.MaxArrayLength, "array length", path)
		if err != nil {
			return nil, 0, err
		}

		// The claimed count must be encodable in the remaining bytes before
		// any element allocation: each element occupies at least its head.
		info, ok := layout.Repeat(t.Elem, length)
		if !ok {
			return nil, 0, errors.ResourceLimit(errors.PhaseDecode, path, "array length", length, st.pol.Limits.MaxArrayLength)
		}
		payload := r.start + word.Size
		minEnd, ok := word.SafeAdd(payload, info.Bytes())
		if !ok || minEnd > r.end {
			return nil, 0, errors.OutOfBounds(errors.PhaseDecode, path, payload, info.Bytes(), r.end)
		}

		elemRegion := region{start: payload, end: r.end}
		if !t.Elem.Dynamic() {
			// Static elements have a fully determined payload; narrow the
			// region to exactly that many words.
			elemRegion.end = minEnd
		}
		vals, consumed, err := d.decodeSequence(st, repeatType(t.Elem, length), nil, elemRegion, depth+1, path, "")
		if err != nil {
			return nil, 0, err
		}
		return vals, word.Size + consumed, nil

	case KindFixedArray:
		// Dynamic fixed array: no length word, the region opens directly
		// with the per-element offset slots.
		vals, consumed, err := d.decodeSequence(st, repeatType(t.Elem, t.Size), nil, r, depth+1, path, "")
		if err != nil {
			return nil, 0, err
		}
		return vals, consumed, nil

	case KindTuple:
		fts := make([]*Type, len(t.Fields))
		names := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			fts[i] = f.Type
			names[i] = fieldName(f, i)
		}
		vals, consumed, err := d.decodeSequence(st, fts, names, r, depth+1, path, "")
		if err != nil {
			return nil, 0, err
		}
		return vals, consumed, nil

	default:
		return nil, 0, errors.Unsupported(errors.PhaseDecode, "tail decoding of "+t.Kind.String())
	}
}

// readLength reads and vets the length word at the start of a tail region.
// Lengths that cannot possibly be encoded in the remaining bytes, or that
// exceed the configured ceiling, are rejected before any allocation.
func (d *Decoder) readLength(st *decodeState, r region, limit int, what string, path []string) (int, error) {
	lenEnd, ok := word.SafeAdd(r.start, word.Size)
	if !ok || lenEnd > r.end {
		return 0, errors.OutOfBounds(errors.PhaseDecode, path, r.start, word.Size, r.end)
	}
	u := word.U256(st.data[r.start:lenEnd])
	length, ok := word.ToInt(u)
	if !ok {
		debugf("decode: %s word %s is not addressable", what, u.Hex())
		return 0, errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Path(path...).
			Detail("%s word does not fit an addressable range", what).
			Build()
	}
	if length > limit {
		return 0, errors.ResourceLimit(errors.PhaseDecode, path, what, length, limit)
	}
	// Cheap impossibility check before the per-kind sizing math: even one
	// byte per claimed item cannot fit.
	if length > r.size() {
		return 0, errors.OutOfBounds(errors.PhaseDecode, path, r.start+word.Size, length, r.end)
	}
	return length, nil
}

func seqItemName(names []string, i int, label string) string {
	if i < len(names) && names[i] != "" {
		return names[i]
	}
	return label + "[" + strconv.Itoa(i) + "]"
}
