package layout

import (
	"github.com/wippyai/contract-abi/codec/internal/types"
	"github.com/wippyai/contract-abi/codec/internal/word"
)

// Info describes the head-region footprint of a type or type sequence.
type Info struct {
	Words   int
	Dynamic bool
}

// Bytes returns the head footprint in bytes.
func (i Info) Bytes() int { return i.Words * word.Size }

// Of returns the head footprint of a single type: one word for value types
// and for dynamic types (an offset slot), the full inline width for static
// aggregates.
func Of(t *types.Type) Info {
	return Info{Words: t.HeadWords(), Dynamic: t.Dynamic()}
}

// Sequence folds a type list into the head footprint of the region that
// holds them side by side (an argument list, a tuple's fields, an array's
// elements). ok is false if the width overflows the host int.
func Sequence(ts []*types.Type) (Info, bool) {
	var info Info
	for _, t := range ts {
		w, ok := word.SafeAdd(info.Words, t.HeadWords())
		if !ok {
			return Info{}, false
		}
		info.Words = w
		if t.Dynamic() {
			info.Dynamic = true
		}
	}
	if _, ok := word.SafeMul(info.Words, word.Size); !ok {
		return Info{}, false
	}
	return info, true
}

// Repeat returns the head footprint of n consecutive elements of one type,
// the shape of a decoded array's element region. ok is false on overflow.
func Repeat(elem *types.Type, n int) (Info, bool) {
	w, ok := word.SafeMul(elem.HeadWords(), n)
	if !ok {
		return Info{}, false
	}
	if _, ok := word.SafeMul(w, word.Size); !ok {
		return Info{}, false
	}
	return Info{Words: w, Dynamic: elem.Dynamic()}, true
}
