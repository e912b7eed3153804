package bperf

import (
	"fmt"
	"slices"
)

// CrossSectional collapses the instruments of one period into one rate: the
// weighted sum of their two-point rates. The empty period yields zero.
type CrossSectional struct {
	Calculator TwoPointsCalculator
}

func (c CrossSectional) Calculate(s WeightedPricedPointsSequence) (PeriodicRate, error) {
	rates, err := mapSequence(s.Points().Sequence, c.Calculator.Calculate)
	if err != nil {
		return PeriodicRate{}, err
	}
	return PeriodicRateSequence{Sequence[PeriodicRate]{rates}}.Dot(s.Percents().Float64s())
}

// Longitudinal compounds the cross-sectional rates of successive periods.
// The empty table yields zero.
type Longitudinal struct {
	CrossSectional CrossSectional
}

// NewLongitudinal returns the full pipeline for a two-point calculator.
func NewLongitudinal(c TwoPointsCalculator) Longitudinal {
	return Longitudinal{CrossSectional{c}}
}

func (l Longitudinal) Calculate(t WeightedPricedPointsTable) (PeriodicRate, error) {
	rates, err := mapSequence(t.Sequence, l.CrossSectional.Calculate)
	if err != nil {
		return PeriodicRate{}, err
	}
	return PeriodicRateSequence{Sequence[PeriodicRate]{rates}}.Compound()
}

// TotalCalculator computes the total performance over a table.
type TotalCalculator interface {
	Calculate(t WeightedPricedPointsTable) (Percent, error)
}

// Total rounds the longitudinal total return to a Percent.
type Total struct{ Longitudinal Longitudinal }

// NewTotal returns the total performance calculator.
func NewTotal() Total { return Total{NewLongitudinal(TwoPointsTotal{})} }

func (c Total) Calculate(t WeightedPricedPointsTable) (Percent, error) {
	return rounded(c.Longitudinal.Calculate(t))
}

// Component is a named share of the performance.
type Component struct {
	Name    string
	Percent Percent
}

// Effect names a two-point effect calculator.
type Effect struct {
	Name       string
	Calculator TwoPointsCalculator
}

// Built-in effects.
var (
	CarryEffect  = Effect{"carry", TwoPointsCarryEffect{}}
	CurveEffect  = Effect{"curve", TwoPointsCurveEffect{}}
	SpreadEffect = Effect{"spread", TwoPointsSpreadEffect{}}
)

var builtinEffects = []Effect{CarryEffect, CurveEffect, SpreadEffect}

// EffectNames returns the names of the built-in effects.
func EffectNames() []string {
	names := make([]string, 0, len(builtinEffects))
	for _, e := range builtinEffects {
		names = append(names, e.Name)
	}
	return names
}

// LookupEffect returns the built-in effect called name, or ErrInvalidArgument.
func LookupEffect(name string) (Effect, error) {
	i := slices.IndexFunc(builtinEffects, func(e Effect) bool { return e.Name == name })
	if i < 0 {
		return Effect{}, fmt.Errorf("unknown effect %q, want one of %v: %w", name, EffectNames(), ErrInvalidArgument)
	}
	return builtinEffects[i], nil
}

// LookupEffects resolves names in order. No name means every built-in effect.
func LookupEffects(names ...string) ([]Effect, error) {
	if len(names) == 0 {
		return slices.Clone(builtinEffects), nil
	}
	effects := make([]Effect, 0, len(names))
	for _, name := range names {
		e, err := LookupEffect(name)
		if err != nil {
			return nil, err
		}
		effects = append(effects, e)
	}
	return effects, nil
}

// EffectsCalculator computes named effects over a table, in a stable order.
type EffectsCalculator interface {
	Calculate(t WeightedPricedPointsTable) ([]Component, error)
}

// Effects runs an independent longitudinal pipeline per effect and rounds
// each result to a Percent.
type Effects struct {
	names []string
	calcs []Longitudinal
}

const (
	totalName    = "total"
	residualName = "residual"
)

// NewEffects fails with ErrInvalidState when two effects share a name, or
// when an effect is named like the total or the residual.
func NewEffects(effects ...Effect) (*Effects, error) {
	e := &Effects{}
	for _, effect := range effects {
		if effect.Name == totalName || effect.Name == residualName || slices.Contains(e.names, effect.Name) {
			return nil, fmt.Errorf("cannot instantiate Effects: effect name %q is already used: %w", effect.Name, ErrInvalidState)
		}
		e.names = append(e.names, effect.Name)
		e.calcs = append(e.calcs, NewLongitudinal(effect.Calculator))
	}
	return e, nil
}

// Names returns the effect names, in order.
func (e *Effects) Names() []string { return slices.Clone(e.names) }

func (e *Effects) Calculate(t WeightedPricedPointsTable) ([]Component, error) {
	components := make([]Component, 0, len(e.names))
	for i, name := range e.names {
		p, err := rounded(e.calcs[i].Calculate(t))
		if err != nil {
			return nil, fmt.Errorf("cannot calculate %s effect: %w", name, err)
		}
		components = append(components, Component{name, p})
	}
	return components, nil
}

// ResidualCalculator reconciles the total with its effects.
type ResidualCalculator interface {
	Calculate(total Percent, effects []Percent) (Percent, error)
}

// Residual is the part of the total no effect explains: total - Σ effects.
type Residual struct{}

func (Residual) Calculate(total Percent, effects []Percent) (Percent, error) {
	return NewPercentSequence(effects...).DifferenceWith(total)
}

// Performance is the attribution of a total return: the total first, then
// the effects in their configured order, then the residual. The percents of
// the effects and the residual sum exactly to the total.
type Performance []Component

// Get returns the percent of the component called name.
func (p Performance) Get(name string) (Percent, bool) {
	for _, c := range p {
		if c.Name == name {
			return c.Percent, true
		}
	}
	return Percent{}, false
}

// Total returns the total performance.
func (p Performance) Total() Percent {
	v, _ := p.Get(totalName)
	return v
}

// Residual returns the unexplained performance.
func (p Performance) Residual() Percent {
	v, _ := p.Get(residualName)
	return v
}

// PerformanceCalculator attributes the performance of a table.
type PerformanceCalculator interface {
	Calculate(t WeightedPricedPointsTable) (Performance, error)
}

// Attribution assembles the total, the effects and the residual.
type Attribution struct {
	Total    TotalCalculator
	Effects  EffectsCalculator
	Residual ResidualCalculator
}

// NewAttribution returns the standard attribution over effects.
func NewAttribution(effects ...Effect) (*Attribution, error) {
	e, err := NewEffects(effects...)
	if err != nil {
		return nil, err
	}
	return &Attribution{Total: NewTotal(), Effects: e, Residual: Residual{}}, nil
}

// NewDefaultAttribution returns the standard attribution over the built-in
// effects called names, in that order. No name means every built-in effect.
func NewDefaultAttribution(names ...string) (*Attribution, error) {
	effects, err := LookupEffects(names...)
	if err != nil {
		return nil, err
	}
	return NewAttribution(effects...)
}

func (a *Attribution) Calculate(t WeightedPricedPointsTable) (Performance, error) {
	total, err := a.Total.Calculate(t)
	if err != nil {
		return nil, fmt.Errorf("cannot calculate total: %w", err)
	}
	effects, err := a.Effects.Calculate(t)
	if err != nil {
		return nil, err
	}
	percents := make([]Percent, 0, len(effects))
	for _, c := range effects {
		percents = append(percents, c.Percent)
	}
	residual, err := a.Residual.Calculate(total, percents)
	if err != nil {
		return nil, fmt.Errorf("cannot calculate residual: %w", err)
	}
	p := make(Performance, 0, len(effects)+2)
	p = append(p, Component{totalName, total})
	p = append(p, effects...)
	return append(p, Component{residualName, residual}), nil
}

// rounded rounds the result of a pipeline to a Percent.
func rounded(r PeriodicRate, err error) (Percent, error) {
	if err != nil {
		return Percent{}, err
	}
	return PercentFromFloat(r.Float64())
}
