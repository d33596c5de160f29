package codec

import (
	"github.com/wippyai/contract-abi/codec/internal/types"
)

type Kind = types.Kind

const (
	KindUint       = types.KindUint
	KindInt        = types.KindInt
	KindBool       = types.KindBool
	KindAddress    = types.KindAddress
	KindFixedBytes = types.KindFixedBytes
	KindEnum       = types.KindEnum
	KindBytes      = types.KindBytes
	KindString     = types.KindString
	KindFixedArray = types.KindFixedArray
	KindArray      = types.KindArray
	KindTuple      = types.KindTuple
)

type Type = types.Type
type Field = types.Field

// Constructors for type descriptor trees. Trees are immutable and safe to
// share; constructors panic on malformed shapes (see internal/types).

func Uint(bits int) *Type { return types.Uint(bits) }
func Int(bits int) *Type { return types.Int(bits) }
func Bool() *Type { return types.Bool() }
func Address() *Type { return types.Address() }
func FixedBytes(size int) *Type { return types.FixedBytes(size) }
func Enum(members int) *Type { return types.Enum(members) }
func Bytes() *Type { return types.Bytes() }
func String() *Type { return types.String() }
func Array(elem *Type) *Type { return types.Array(elem) }
func FixedArray(e *Type, n int) *Type { return types.FixedArray(e, n) }
func Tuple(fields ...Field) *Type { return types.Tuple(fields...) }
func TupleOf(fts ...*Type) *Type { return types.TupleOf(fts...) }
