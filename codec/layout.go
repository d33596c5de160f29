package codec

import (
	"github.com/wippyai/contract-abi/codec/internal/layout"
)

type LayoutInfo = layout.Info

// LayoutCalculator answers the two static layout questions the encoder and
// decoder ask of every type: is it dynamic-size, and how many head words
// does it occupy.
type LayoutCalculator struct{}

func NewLayoutCalculator() *LayoutCalculator {
	return &LayoutCalculator{}
}

func (lc *LayoutCalculator) Calculate(t *Type) LayoutInfo {
	return layout.Of(t)
}

// Sequence returns the combined head footprint of a type list laid out side
// by side, the shape of an argument list or tuple field region.
func (lc *LayoutCalculator) Sequence(ts []*Type) (LayoutInfo, bool) {
	return layout.Sequence(ts)
}
