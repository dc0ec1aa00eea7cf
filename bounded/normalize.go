package bounded

import "math/big"

var zero = big.NewInt(0)

// Normalize maps raw into r under policy p and returns the bounded result.
// It is total over all integers and never mutates raw. The range must
// satisfy r.Validate; ranges the Variant constructors produce always do.
func Normalize(raw *big.Int, r Range, p Policy) *big.Int {
	if p == Clamp {
		return clamp(raw, r)
	}
	return wrap(raw, r)
}

// clamp pins raw to the nearest boundary. For a range starting at zero the
// result is max(0, min(Hi, raw)). For any other range the clamped quantity
// is raw itself, taken as an offset into [0, width] and shifted by Lo; an
// in-range value below zero therefore lands on Lo, not on itself.
func clamp(raw *big.Int, r Range) *big.Int {
	if r.Lo.Sign() == 0 {
		return new(big.Int).Set(bigMax(zero, bigMin(r.Hi, raw)))
	}
	off := bigMax(zero, bigMin(r.Width(), raw))
	return new(big.Int).Add(r.Lo, off)
}

// wrap reduces raw modulo the range width. The modulus is Hi-Lo, not
// Hi-Lo+1, so Hi itself wraps around to Lo and is unreachable.
func wrap(raw *big.Int, r Range) *big.Int {
	if r.Lo.Sign() == 0 {
		m := new(big.Int).Rem(raw, r.Hi)
		if m.Sign() < 0 {
			m.Add(m, r.Hi)
		}
		return m
	}
	width := r.Width()
	m := new(big.Int).Sub(raw, r.Lo)
	m.Rem(m, width)
	if m.Sign() < 0 {
		m.Add(m, width)
	}
	return m.Add(m, r.Lo)
}

func bigMin(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func bigMax(a, b *big.Int) *big.Int {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
