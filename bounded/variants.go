package bounded

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/typedint/typedint/safeconvert"
)

// Variant is the declarative configuration of one bounded integer kind:
// a bit width, a signedness flag, a boundary policy and a display tag.
// Variants carry no behavior of their own beyond deriving their range
// and constructing Integer values.
type Variant struct {
	Bits   uint
	Signed bool
	Policy Policy
	Tag    string
}

// The sixteen stock variants: four sizes, signed and unsigned, each in a
// wrapping and a clamping flavor.
var (
	Uint8  = Variant{Bits: 8, Policy: Wrap, Tag: "Uint8"}
	Uint16 = Variant{Bits: 16, Policy: Wrap, Tag: "Uint16"}
	Uint32 = Variant{Bits: 32, Policy: Wrap, Tag: "Uint32"}
	Uint64 = Variant{Bits: 64, Policy: Wrap, Tag: "Uint64"}

	Uint8Clamped  = Variant{Bits: 8, Policy: Clamp, Tag: "Uint8Clamped"}
	Uint16Clamped = Variant{Bits: 16, Policy: Clamp, Tag: "Uint16Clamped"}
	Uint32Clamped = Variant{Bits: 32, Policy: Clamp, Tag: "Uint32Clamped"}
	Uint64Clamped = Variant{Bits: 64, Policy: Clamp, Tag: "Uint64Clamped"}

	Int8  = Variant{Bits: 8, Signed: true, Policy: Wrap, Tag: "Int8"}
	Int16 = Variant{Bits: 16, Signed: true, Policy: Wrap, Tag: "Int16"}
	Int32 = Variant{Bits: 32, Signed: true, Policy: Wrap, Tag: "Int32"}
	Int64 = Variant{Bits: 64, Signed: true, Policy: Wrap, Tag: "Int64"}

	Int8Clamped  = Variant{Bits: 8, Signed: true, Policy: Clamp, Tag: "Int8Clamped"}
	Int16Clamped = Variant{Bits: 16, Signed: true, Policy: Clamp, Tag: "Int16Clamped"}
	Int32Clamped = Variant{Bits: 32, Signed: true, Policy: Clamp, Tag: "Int32Clamped"}
	Int64Clamped = Variant{Bits: 64, Signed: true, Policy: Clamp, Tag: "Int64Clamped"}
)

// Variants returns the stock variant catalog.
func Variants() []Variant {
	return []Variant{
		Uint8, Uint16, Uint32, Uint64,
		Uint8Clamped, Uint16Clamped, Uint32Clamped, Uint64Clamped,
		Int8, Int16, Int32, Int64,
		Int8Clamped, Int16Clamped, Int32Clamped, Int64Clamped,
	}
}

var variantsByTag = func() map[string]Variant {
	m := make(map[string]Variant)
	for _, v := range Variants() {
		m[v.Tag] = v
	}
	return m
}()

// VariantByTag looks a stock variant up by its display tag.
func VariantByTag(tag string) (Variant, bool) {
	v, ok := variantsByTag[tag]
	return v, ok
}

// NewVariant builds a custom-width variant. The bit width must be
// positive so the wrap modulus is nonzero; widths above 64 are allowed.
func NewVariant(bits uint, signed bool, p Policy, tag string) (Variant, error) {
	if bits == 0 {
		return Variant{}, errors.New("variant bit width must be positive")
	}
	return Variant{Bits: bits, Signed: signed, Policy: p, Tag: tag}, nil
}

// Range derives the variant's value range from its width and signedness.
func (v Variant) Range() Range {
	if v.Signed {
		return SignedRange(v.Bits)
	}
	return UnsignedRange(v.Bits)
}

// New returns a new Integer holding the bounded form of zero, the default
// value of every variant.
func (v Variant) New() *Integer {
	return v.NewBig(zero)
}

// NewInt returns a new Integer holding the bounded form of initial.
func (v Variant) NewInt(initial int64) *Integer {
	return v.NewBig(big.NewInt(initial))
}

// NewBig returns a new Integer holding the bounded form of initial.
// initial is copied, not retained.
func (v Variant) NewBig(initial *big.Int) *Integer {
	i := &Integer{rng: v.Range(), variant: v}
	i.Set(initial)
	return i
}

// NewFloat returns a new Integer holding the bounded form of the integer
// part of initial. NaN and infinities are rejected.
func (v Variant) NewFloat(initial float64) (*Integer, error) {
	b, err := safeconvert.Float64ToBigInt(initial)
	if err != nil {
		return nil, err
	}
	return v.NewBig(b), nil
}
