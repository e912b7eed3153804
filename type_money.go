package bperf

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const moneyPrecision = 2

// Money is a monetary value with a precision of two decimal places.
//
// The magnitude is in cents: NewMoney(1) is 0.01.
type Money struct{ Precise }

// NewMoney returns the money worth cents.
func NewMoney(cents int64) Money {
	return Money{Precise{value: cents, precision: moneyPrecision}}
}

// ParseMoney parses a decimal amount in major units ("2.50"), rounding extra
// digits half to even.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money %q: %w", s, err)
	}
	cents, err := decimalToInt(d, moneyPrecision)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money %q: %w", s, err)
	}
	return NewMoney(cents), nil
}

// Cents returns the magnitude of m.
func (m Money) Cents() int64 { return m.value }

func (m Money) Add(n Money) (Money, error) {
	v, ok := addInt64(m.value, n.value)
	if !ok {
		return Money{}, fmt.Errorf("cannot add Money: %w", ErrOverflow)
	}
	return NewMoney(v), nil
}

func (m Money) Sub(n Money) (Money, error) {
	v, ok := subInt64(m.value, n.value)
	if !ok {
		return Money{}, fmt.Errorf("cannot subtract Money: %w", ErrOverflow)
	}
	return NewMoney(v), nil
}

// PV returns the present value of m discounted by d.
func (m Money) PV(d Discount) (PresentValue, error) {
	return overflowed("determine pv for Money", float64(m.Float64()*d.Float64()), NewPresentValue)
}

// Format returns m formatted in the given ISO currency, e.g. "$2.50".
func (m Money) Format(currency string) string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	// currencies with fewer minor units round half to even
	dec := m.Decimal().Shift(int32(cur.Fraction)).RoundBank(0)
	return cur.Formatter().Format(dec.IntPart())
}

// MoneySequence is an immutable sequence of monies.
type MoneySequence struct{ Sequence[Money] }

func NewMoneySequence(values ...Money) MoneySequence {
	return MoneySequence{NewSequence(values...)}
}

// Sum adds the monies in order, starting from zero.
func (s MoneySequence) Sum() (Money, error) {
	sum := NewMoney(0)
	for m := range s.Values() {
		var err error
		if sum, err = sum.Add(m); err != nil {
			return Money{}, err
		}
	}
	return sum, nil
}

// PV returns the sum of each money discounted by its matching discount.
// It fails with ErrLengthMismatch if both sequences differ in length.
func (s MoneySequence) PV(discounts DiscountSequence) (PresentValue, error) {
	if s.Len() != discounts.Len() {
		return PresentValue{}, fmt.Errorf("cannot determine pv for MoneySequence: %d monies and %d discounts: %w", s.Len(), discounts.Len(), ErrLengthMismatch)
	}
	pvs := make([]PresentValue, 0, s.Len())
	for i, m := range s.All() {
		pv, err := m.PV(discounts.At(i))
		if err != nil {
			return PresentValue{}, err
		}
		pvs = append(pvs, pv)
	}
	return PresentValueSequence{Sequence[PresentValue]{pvs}}.Sum()
}
