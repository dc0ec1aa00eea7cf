package bounded

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Range is the inclusive [Lo, Hi] interval a bounded value is constrained
// to. Bounds are big.Int values because the 64-bit widths fall outside
// every host integer type: UnsignedRange(64) ends at 2^64-1 and
// SignedRange(64) at 2^63.
type Range struct {
	Lo *big.Int
	Hi *big.Int
}

// UnsignedRange returns the range [0, 2^bits-1].
func UnsignedRange(bits uint) Range {
	return Range{Lo: big.NewInt(0), Hi: maxForBits(bits)}
}

// SignedRange returns the range [-floor(r/2), ceil(r/2)] where r = 2^bits-1.
// The range width is r rather than 2^bits, so the bounds are asymmetric:
// SignedRange(8) is [-127, 128], not the two's-complement [-128, 127].
func SignedRange(bits uint) Range {
	r := maxForBits(bits)
	half := new(big.Int).Rsh(r, 1)
	return Range{
		Lo: new(big.Int).Neg(half),
		Hi: new(big.Int).Sub(r, half),
	}
}

// maxForBits returns 2^bits - 1.
func maxForBits(bits uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), bits)
	return m.Sub(m, big.NewInt(1))
}

// Width returns Hi - Lo, the modulus used by the wrap policy.
func (r Range) Width() *big.Int {
	return new(big.Int).Sub(r.Hi, r.Lo)
}

// Validate rejects ranges the wrap policy is undefined for: missing bounds
// and ranges whose width is not positive.
func (r Range) Validate() error {
	if r.Lo == nil || r.Hi == nil {
		return errors.New("range bounds must not be nil")
	}
	if r.Width().Sign() <= 0 {
		return errors.Errorf("range %s must have a positive width", r)
	}
	return nil
}

// Contains reports whether v lies within [Lo, Hi].
func (r Range) Contains(v *big.Int) bool {
	return v.Cmp(r.Lo) >= 0 && v.Cmp(r.Hi) <= 0
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", r.Lo, r.Hi)
}
