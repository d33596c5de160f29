package codec

// Mode selects the validation rule set a decode call enforces.
type Mode uint8

const (
	// ModeLegacy reproduces historical lenient behavior: values are masked
	// to their logical width, structural slack is tolerated, and nothing
	// that is structurally decodable is rejected.
	ModeLegacy Mode = iota

	// ModeStrict rejects any value or structural violation: dirty padding,
	// booleans other than 0/1, enum values out of range, tail offsets that
	// do not land exactly where the canonical encoder would put them.
	ModeStrict
)

var modeNames = [...]string{
	ModeLegacy: "legacy",
	ModeStrict: "strict",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// Limits are safety ceilings enforced before any allocation is attempted.
// They bound adversarial inputs under both modes; exceeding one is a
// resource-limit error, never silently tolerated.
type Limits struct {
	MaxDepth         int // nesting depth of dynamic regions and aggregates
	MaxArrayLength   int // claimed element count of a single array
	MaxBytesLength   int // claimed byte count of a single bytes/string value
	MaxTotalElements int // decoded items across one whole call
}

// DefaultLimits returns ceilings comfortably above anything a real call
// encodes while keeping a crafted buffer from driving unbounded work.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:         64,
		MaxArrayLength:   1 << 20,
		MaxBytesLength:   1 << 26,
		MaxTotalElements: 1 << 22,
	}
}

// Policy is the validation rule set for one decode call. It is a plain
// value threaded through the call, never shared mutable state: both
// policies can run side by side in the same process and call sequence.
type Policy struct {
	Mode Mode

	// ExactLength rejects undeclared bytes beyond the last consumed tail
	// region. Enforced under ModeStrict only.
	ExactLength bool

	Limits Limits
}

// Strict returns the strict policy with default limits.
func Strict() Policy {
	return Policy{Mode: ModeStrict, Limits: DefaultLimits()}
}

// Legacy returns the legacy lenient policy with default limits.
func Legacy() Policy {
	return Policy{Mode: ModeLegacy, Limits: DefaultLimits()}
}

func (p Policy) strict() bool { return p.Mode == ModeStrict }
