// Package bounded implements fixed-bit-width integer values (signed and
// unsigned, 8 to 64 bits and beyond) backed by a wide numeric container.
// Out-of-range values are mapped back into range either by modular
// wraparound (Wrap) or by a saturating clamp (Clamp).
package bounded

import (
	"fmt"
	"math/big"

	"github.com/typedint/typedint/safeconvert"
)

// Integer is a single bounded integer value. It owns its current value
// plus the immutable range, policy and tag of the variant it was built
// from; every read and write re-normalizes, so the observable value is
// always in range.
//
// Integer has plain value semantics and no internal locking. Callers
// sharing an instance across goroutines must synchronize access
// themselves. Construct instances through a Variant; the zero Integer has
// no range and is not usable.
type Integer struct {
	raw     *big.Int
	rng     Range
	variant Variant
}

// Value normalizes the stored value, keeps the result as the new stored
// value and returns a copy of it.
func (i *Integer) Value() *big.Int {
	i.raw = Normalize(i.raw, i.rng, i.variant.Policy)
	return new(big.Int).Set(i.raw)
}

// Set replaces the stored value with the bounded form of v. v is copied,
// not retained.
func (i *Integer) Set(v *big.Int) {
	i.raw = Normalize(v, i.rng, i.variant.Policy)
}

// SetInt64 replaces the stored value with the bounded form of v.
func (i *Integer) SetInt64(v int64) {
	i.Set(big.NewInt(v))
}

// SetFloat64 replaces the stored value with the bounded form of the
// integer part of v. NaN and infinities are rejected.
func (i *Integer) SetFloat64(v float64) error {
	b, err := safeconvert.Float64ToBigInt(v)
	if err != nil {
		return err
	}
	i.Set(b)
	return nil
}

// Big returns the bounded value. It is the widest of the numeric
// accessors and the only one that can represent every variant in full.
func (i *Integer) Big() *big.Int {
	return i.Value()
}

// Int64 returns the bounded value, checking that it fits in an int64.
func (i *Integer) Int64() (int64, error) {
	return safeconvert.BigIntToInt64(i.Value())
}

// Uint64 returns the bounded value, checking that it fits in a uint64.
func (i *Integer) Uint64() (uint64, error) {
	return safeconvert.BigIntToUint64(i.Value())
}

// Float64 returns the bounded value as the nearest float64. Values above
// 2^53 in magnitude lose precision.
func (i *Integer) Float64() float64 {
	return safeconvert.BigIntToFloat64(i.Value())
}

// Variant returns the variant this integer was constructed from.
func (i *Integer) Variant() Variant {
	return i.variant
}

// Range returns the integer's value range. The returned bounds are shared
// and must not be modified.
func (i *Integer) Range() Range {
	return i.rng
}

// Policy returns the integer's boundary policy.
func (i *Integer) Policy() Policy {
	return i.variant.Policy
}

// String formats the value as "<Tag>(<value>)", e.g. "Uint16(42)".
func (i *Integer) String() string {
	return fmt.Sprintf("%s(%s)", i.variant.Tag, i.Value())
}
