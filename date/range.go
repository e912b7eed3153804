package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Validate checks that the range ends strictly after it starts.
func (r Range) Validate() error {
	if r.From.IsZero() || r.To.IsZero() {
		return fmt.Errorf("range %s: missing boundary", r)
	}
	if !r.To.After(r.From) {
		return fmt.Errorf("range %s: end date must be after start date", r)
	}
	return nil
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }

// ParseRange parses two dates into a Range.
func ParseRange(from, to string) (Range, error) {
	f, err := Parse(from)
	if err != nil {
		return Range{}, err
	}
	t, err := Parse(to)
	if err != nil {
		return Range{}, err
	}
	return Range{From: f, To: t}, nil
}
