package safeconvert

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

var (
	minInt64  = big.NewInt(math.MinInt64)
	maxInt64  = big.NewInt(math.MaxInt64)
	maxUint64 = new(big.Int).SetUint64(math.MaxUint64)
)

// Float64ToBigInt converts a float64 to a big.Int, truncating toward zero.
// NaN and infinities are rejected.
func Float64ToBigInt(f float64) (*big.Int, error) {
	if math.IsNaN(f) {
		return nil, errors.New("cannot convert NaN to an integer")
	}
	if math.IsInf(f, 0) {
		return nil, errors.New("cannot convert an infinity to an integer")
	}
	i, _ := big.NewFloat(math.Trunc(f)).Int(nil)
	return i, nil
}

// BigIntToInt64 converts a big.Int to int64 safely, checking for overflow.
func BigIntToInt64(i *big.Int) (int64, error) {
	if i.Cmp(minInt64) < 0 || i.Cmp(maxInt64) > 0 {
		return 0, errors.Errorf("integer overflow: %s exceeds the int64 range", i)
	}
	return i.Int64(), nil
}

// BigIntToUint64 converts a big.Int to uint64 safely, checking for
// negative values and overflow.
func BigIntToUint64(i *big.Int) (uint64, error) {
	if i.Sign() < 0 {
		return 0, errors.Errorf("cannot convert negative value %s to uint64", i)
	}
	if i.Cmp(maxUint64) > 0 {
		return 0, errors.Errorf("integer overflow: %s exceeds the max uint64 value", i)
	}
	return i.Uint64(), nil
}

// BigIntToFloat64 returns the float64 nearest to i. Values above 2^53 in
// magnitude lose precision.
func BigIntToFloat64(i *big.Int) float64 {
	f, _ := new(big.Float).SetInt(i).Float64()
	return f
}
