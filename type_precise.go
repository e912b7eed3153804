package bperf

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Precise is an exact fixed-point number: an integer magnitude counted in
// units of 10^-precision.
//
//	Precise{3, 2} <=> 0.03
type Precise struct {
	value     int64
	precision int32
}

// NewPrecise returns value at precision decimal places. It fails with
// ErrInvalidPrecision if precision is lower than one.
func NewPrecise(value int64, precision int) (Precise, error) {
	if precision < 1 {
		return Precise{}, fmt.Errorf("cannot instantiate Precise: %w", ErrInvalidPrecision)
	}
	return Precise{value: value, precision: int32(precision)}, nil
}

// FloatToInt converts value, up to precision decimal places, to its integer
// equivalent. Extra digits are rounded half to even.
//
//	FloatToInt(0.010, 4) <=> 10
//
// The conversion works on the shortest decimal representation of value, so
// that 0.115 at precision 2 is a tie.
func FloatToInt(value float64, precision int) (int64, error) {
	if !isFinite(value) {
		return 0, fmt.Errorf("cannot convert %v: %w", value, ErrNotFinite)
	}
	if precision < 1 {
		return 0, fmt.Errorf("cannot convert %v: %w", value, ErrInvalidPrecision)
	}
	return decimalToInt(decimal.NewFromFloat(value), int32(precision))
}

// decimalToInt shifts d by precision and rounds it half to even into the
// magnitude type.
func decimalToInt(d decimal.Decimal, precision int32) (int64, error) {
	rounded := d.Shift(precision).RoundBank(0)
	if !rounded.BigInt().IsInt64() {
		return 0, fmt.Errorf("cannot round %v at precision %d: %w", d, precision, ErrRoundingFailure)
	}
	return rounded.IntPart(), nil
}

// Value returns the integer magnitude.
func (p Precise) Value() int64 { return p.value }

// Precision returns the number of decimal places.
func (p Precise) Precision() int { return int(p.precision) }

// Decimal returns the exact decimal value.
func (p Precise) Decimal() decimal.Decimal { return decimal.New(p.value, -p.precision) }

// Float64 returns the float64 nearest to the exact value.
func (p Precise) Float64() float64 { return p.Decimal().InexactFloat64() }

// String returns the fixed decimal form, e.g. "15.23" for Precise{1523, 2}.
func (p Precise) String() string { return p.Decimal().StringFixed(p.precision) }

// Equal reports whether both magnitude and precision are the same.
func (p Precise) Equal(q Precise) bool { return p == q }

// addInt64 adds a and b, reporting false on overflow of the magnitude type.
func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// subInt64 subtracts b from a, reporting false on overflow of the magnitude type.
func subInt64(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}
