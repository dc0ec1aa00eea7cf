package bounded

// Policy determines how an out-of-range value is mapped back into range.
type Policy int

const (
	// Wrap reduces out-of-range values modulo the range width, producing
	// integer overflow semantics.
	Wrap Policy = iota
	// Clamp pins out-of-range values to the nearest range boundary,
	// producing saturating semantics.
	Clamp
)

func (p Policy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	default:
		return "unknown"
	}
}
