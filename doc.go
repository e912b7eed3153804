// Package bperf attributes the return of bond portfolios to the market
// effects that produced it.
//
// A bond is priced from its cash flows (Flows), a spot curve of zero coupon
// rates (SpotCurve) and a credit spread. Its performance over a period is
// measured between two priced points, and then attributed to effects:
//   - Carry: the return of the passage of time, curve and spread unchanged.
//   - Curve: the return of the move of the spot curve.
//   - Spread: the return of the move of the credit spread.
//
// Whatever the effects do not explain is reported as the residual, so that
// effects and residual always add up to the total return.
//
// Portfolios are sequences of periods, each holding weighted positions.
// CrossSectional aggregates the positions of a period, and Longitudinal
// compounds the periods.
//
// Every quantity is a validated value type (Term, Money, Percent, rates,
// Discount, PresentValue): constructors reject values out of the domain of
// the type with an error wrapping ErrNaN, ErrNotFinite or ErrInvalidState.
// ErrInvalidArgument and ErrRuntimeFailure are reserved to data fetchers.
//
// This package is the engine behind the `bperf` command-line tool.
package bperf
