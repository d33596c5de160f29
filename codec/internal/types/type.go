package types

import (
	"fmt"
	"strconv"
	"strings"
)

// WordSize is the byte width of one head/tail slot.
const WordSize = 32

// Type is an immutable node in a type descriptor tree. Layout properties
// (dynamic, head width) are computed at construction and never change, so
// trees are safe to share across concurrent encode/decode calls.
type Type struct {
	Elem    *Type
	Fields  []Field
	Kind    Kind
	Bits    int // uint/int logical width in bits
	Size    int // fixed-bytes byte width, or fixed-array length
	Members int // enum member count

	dynamic   bool
	headWords int
}

// Field is one named slot of a tuple. The name is carried for display and
// error paths only; it does not affect the wire layout.
type Field struct {
	Type *Type
	Name string
}

// Dynamic reports whether the encoded size depends on runtime content.
func (t *Type) Dynamic() bool { return t.dynamic }

// HeadWords returns the number of words this type contributes to the head
// of its enclosing region: 1 for value types and for any dynamic type (an
// offset slot), the full inline width for static aggregates.
func (t *Type) HeadWords() int { return t.headWords }

// HeadBytes returns HeadWords in bytes.
func (t *Type) HeadBytes() int { return t.headWords * WordSize }

// Constructors validate their arguments and panic on malformed shapes:
// a bad type tree is a construction-time defect in the caller, not a
// runtime condition the codec can recover from.

func Uint(bits int) *Type {
	checkBits(bits)
	return value(&Type{Kind: KindUint, Bits: bits})
}

func Int(bits int) *Type {
	checkBits(bits)
	return value(&Type{Kind: KindInt, Bits: bits})
}

func Bool() *Type {
	return value(&Type{Kind: KindBool, Bits: 8})
}

func Address() *Type {
	return value(&Type{Kind: KindAddress, Bits: 160})
}

func FixedBytes(size int) *Type {
	if size < 1 || size > WordSize {
		panic(fmt.Sprintf("types: fixed-bytes width %d out of range [1,%d]", size, WordSize))
	}
	return value(&Type{Kind: KindFixedBytes, Size: size})
}

func Enum(members int) *Type {
	if members < 1 || members > 256 {
		panic(fmt.Sprintf("types: enum member count %d out of range [1,256]", members))
	}
	return value(&Type{Kind: KindEnum, Bits: 8, Members: members})
}

func Bytes() *Type {
	return &Type{Kind: KindBytes, dynamic: true, headWords: 1}
}

func String() *Type {
	return &Type{Kind: KindString, dynamic: true, headWords: 1}
}

func Array(elem *Type) *Type {
	if elem == nil {
		panic("types: nil array element type")
	}
	return &Type{Kind: KindArray, Elem: elem, dynamic: true, headWords: 1}
}

func FixedArray(elem *Type, length int) *Type {
	if elem == nil {
		panic("types: nil array element type")
	}
	if length < 0 {
		panic(fmt.Sprintf("types: negative fixed-array length %d", length))
	}
	t := &Type{Kind: KindFixedArray, Elem: elem, Size: length}
	if elem.dynamic {
		t.dynamic = true
		t.headWords = 1
	} else {
		t.headWords = length * elem.headWords
	}
	return t
}

func Tuple(fields ...Field) *Type {
	t := &Type{Kind: KindTuple, Fields: fields}
	for _, f := range fields {
		if f.Type == nil {
			panic("types: nil tuple field type")
		}
		if f.Type.dynamic {
			t.dynamic = true
		}
	}
	if t.dynamic {
		t.headWords = 1
	} else {
		for _, f := range fields {
			t.headWords += f.Type.headWords
		}
	}
	return t
}

// TupleOf builds an unnamed tuple from an ordered field type list.
func TupleOf(fieldTypes ...*Type) *Type {
	fields := make([]Field, len(fieldTypes))
	for i, ft := range fieldTypes {
		fields[i] = Field{Type: ft}
	}
	return Tuple(fields...)
}

func value(t *Type) *Type {
	t.headWords = 1
	return t
}

func checkBits(bits int) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("types: integer width %d not a multiple of 8 in [8,256]", bits))
	}
}

// String renders the canonical ABI notation for the type. Enums render as
// uint8, the representation contracts expose at the call boundary.
func (t *Type) String() string {
	switch t.Kind {
	case KindUint:
		return "uint" + strconv.Itoa(t.Bits)
	case KindInt:
		return "int" + strconv.Itoa(t.Bits)
	case KindBool:
		return "bool"
	case KindAddress:
		return "address"
	case KindFixedBytes:
		return "bytes" + strconv.Itoa(t.Size)
	case KindEnum:
		return "uint8"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindFixedArray:
		return t.Elem.String() + "[" + strconv.Itoa(t.Size) + "]"
	case KindArray:
		return t.Elem.String() + "[]"
	case KindTuple:
		var b strings.Builder
		b.WriteByte('(')
		for i, f := range t.Fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(f.Type.String())
		}
		b.WriteByte(')')
		return b.String()
	default:
		return "unknown"
	}
}
