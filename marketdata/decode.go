package marketdata

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/bperf"
	"github.com/etnz/bperf/date"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

// Record attributes.
const (
	attrOn        = "on"
	attrCurve     = "curve"
	attrRates     = "rates"
	attrPortfolio = "portfolio"
	attrSecurity  = "security"
	attrWeight    = "weight"
	attrSpread    = "spread"
	attrFlows     = "flows"
	attrTerm      = "term"
	attrRate      = "rate"
	attrAmount    = "amount"
)

// Decode reads JSONL records, one curve or position per line, into the store.
// name is for error messages only.
func (s *Store) Decode(name string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	i, n := 0, 0
	for scanner.Scan() {
		i++
		line := scanner.Text()
		// Start simply ignoring empty lines.
		if strings.TrimSpace(line) == "" {
			continue
		}
		jobj := make(map[string]any)
		if err := json.Unmarshal([]byte(line), &jobj); err != nil {
			return fmt.Errorf("parse error %s:%v: not a correct json: %w", name, i, err)
		}
		if err := s.decodeRecord(jobj); err != nil {
			return fmt.Errorf("parse error %s:%v: %w", name, i, err)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read %s: %w", name, err)
	}
	s.log.Debug("decode-market-data", zap.String("file", name), zap.Int("lines", i), zap.Int("records", n))
	return nil
}

// DecodeDocument reads a single JSON document and decodes every record
// selected by the jsonpath expression, e.g. "$.records[*]".
func (s *Store) DecodeDocument(name string, r io.Reader, path string) error {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("parse error %s: not a correct json: %w", name, err)
	}
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("parse error %s: cannot select %q: %w", name, path, err)
	}
	// a single match is returned as is, several as a list
	records, ok := jval.([]any)
	if !ok {
		records = []any{jval}
	}
	for i, rec := range records {
		jobj, err := cast.ToStringMapE(rec)
		if err != nil {
			return fmt.Errorf("parse error %s: record %d of %q is not an object", name, i, path)
		}
		if err := s.decodeRecord(jobj); err != nil {
			return fmt.Errorf("parse error %s: record %d of %q: %w", name, i, path, err)
		}
	}
	s.log.Debug("decode-market-data", zap.String("file", name), zap.String("select", path), zap.Int("records", len(records)))
	return nil
}

// decodeRecord adds a curve or a position record to the store. Numbers may
// be given as JSON numbers or strings.
func (s *Store) decodeRecord(jobj map[string]any) error {
	jon, ok := jobj[attrOn]
	if !ok {
		return fmt.Errorf("missing the property %q with a date", attrOn)
	}
	on, err := date.Parse(cast.ToString(jon))
	if err != nil {
		return fmt.Errorf("property %q must be a valid date: %w", attrOn, err)
	}

	if _, ok := jobj[attrPortfolio]; ok {
		p, err := decodePosition(jobj)
		if err != nil {
			return err
		}
		s.AddPosition(on, p)
		return nil
	}
	if _, ok := jobj[attrRates]; ok {
		name, err := requiredString(jobj, attrCurve)
		if err != nil {
			return err
		}
		curve, err := decodeCurve(jobj[attrRates])
		if err != nil {
			return fmt.Errorf("curve %q: %w", name, err)
		}
		s.AddCurve(on, name, curve)
		return nil
	}
	return fmt.Errorf("record must have either a %q or a %q property", attrPortfolio, attrRates)
}

func decodePosition(jobj map[string]any) (Position, error) {
	var p Position
	var err error
	if p.Portfolio, err = requiredString(jobj, attrPortfolio); err != nil {
		return p, err
	}
	if p.Security, err = requiredString(jobj, attrSecurity); err != nil {
		return p, err
	}
	if p.Curve, err = requiredString(jobj, attrCurve); err != nil {
		return p, err
	}
	weight, err := requiredString(jobj, attrWeight)
	if err != nil {
		return p, err
	}
	if p.Weight, err = bperf.ParsePercent(weight); err != nil {
		return p, fmt.Errorf("property %q: %w", attrWeight, err)
	}
	spread, err := cast.ToFloat64E(jobj[attrSpread])
	if err != nil {
		return p, fmt.Errorf("property %q must be a number: %w", attrSpread, err)
	}
	if p.Spread, err = bperf.NewContinuousRate(spread); err != nil {
		return p, fmt.Errorf("property %q: %w", attrSpread, err)
	}
	if p.Flows, err = decodeFlows(jobj[attrFlows]); err != nil {
		return p, fmt.Errorf("security %q: %w", p.Security, err)
	}
	return p, nil
}

// decodeFlows reads a list of {term, amount} objects. The list may be empty
// for a matured security.
func decodeFlows(jval any) ([]bperf.Termed[bperf.Money], error) {
	items, err := cast.ToSliceE(jval)
	if jval != nil && err != nil {
		return nil, fmt.Errorf("property %q must be a list", attrFlows)
	}
	flows := make([]bperf.Termed[bperf.Money], 0, len(items))
	for i, item := range items {
		jflow, err := cast.ToStringMapE(item)
		if err != nil {
			return nil, fmt.Errorf("flow %d must be an object", i)
		}
		term, err := decodeTerm(jflow)
		if err != nil {
			return nil, fmt.Errorf("flow %d: %w", i, err)
		}
		amount, err := requiredString(jflow, attrAmount)
		if err != nil {
			return nil, fmt.Errorf("flow %d: %w", i, err)
		}
		m, err := bperf.ParseMoney(amount)
		if err != nil {
			return nil, fmt.Errorf("flow %d: %w", i, err)
		}
		flows = append(flows, bperf.NewTermed(term, m))
	}
	return flows, nil
}

func decodeCurve(jval any) (bperf.SpotCurve, error) {
	items, err := cast.ToSliceE(jval)
	if err != nil {
		return bperf.SpotCurve{}, fmt.Errorf("property %q must be a list", attrRates)
	}
	points := make([]bperf.Termed[bperf.ContinuousRate], 0, len(items))
	for i, item := range items {
		jrate, err := cast.ToStringMapE(item)
		if err != nil {
			return bperf.SpotCurve{}, fmt.Errorf("rate %d must be an object", i)
		}
		term, err := decodeTerm(jrate)
		if err != nil {
			return bperf.SpotCurve{}, fmt.Errorf("rate %d: %w", i, err)
		}
		v, err := cast.ToFloat64E(jrate[attrRate])
		if err != nil {
			return bperf.SpotCurve{}, fmt.Errorf("rate %d: property %q must be a number: %w", i, attrRate, err)
		}
		rate, err := bperf.NewContinuousRate(v)
		if err != nil {
			return bperf.SpotCurve{}, fmt.Errorf("rate %d: %w", i, err)
		}
		points = append(points, bperf.NewTermed(term, rate))
	}
	return bperf.NewSpotCurve(points...)
}

func decodeTerm(jobj map[string]any) (bperf.Term, error) {
	v, err := cast.ToFloat64E(jobj[attrTerm])
	if err != nil {
		return bperf.Term{}, fmt.Errorf("property %q must be a number: %w", attrTerm, err)
	}
	return bperf.NewTerm(v)
}

// requiredString returns the property as a non-empty string.
func requiredString(jobj map[string]any, attr string) (string, error) {
	jval, ok := jobj[attr]
	if !ok || jval == nil {
		return "", fmt.Errorf("missing the property %q", attr)
	}
	str, err := cast.ToStringE(jval)
	if err != nil || str == "" {
		return "", fmt.Errorf("property %q must be a non-empty string", attr)
	}
	return str, nil
}
