package types

type Kind uint8

const (
	KindUint Kind = iota
	KindInt
	KindBool
	KindAddress
	KindFixedBytes
	KindEnum
	KindBytes
	KindString
	KindFixedArray
	KindArray
	KindTuple
)

var kindNames = [...]string{
	KindUint:       "uint",
	KindInt:        "int",
	KindBool:       "bool",
	KindAddress:    "address",
	KindFixedBytes: "fixed-bytes",
	KindEnum:       "enum",
	KindBytes:      "bytes",
	KindString:     "string",
	KindFixedArray: "fixed-array",
	KindArray:      "array",
	KindTuple:      "tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsValue reports whether the kind occupies exactly one word with no
// element structure.
func (k Kind) IsValue() bool {
	return k <= KindEnum
}
