package date

import (
	"slices"
	"testing"
)

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := New(2025, 07, 01), "25 Jul 1"
	d2, v2 := New(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}

	h.Append(d1, "replaced")
	if got, _ := h.Get(d1); got != "replaced" || h.Len() != 2 {
		t.Errorf("Append(d1, replaced) = %q (len %d), want %q (len 2)", got, h.Len(), "replaced")
	}
}

func TestValueAsOf(t *testing.T) {
	var h History[int]
	h.Append(New(2024, 1, 10), 10).Append(New(2024, 1, 20), 20)

	testCases := []struct {
		on     Date
		want   int
		wantOk bool
	}{
		{New(2024, 1, 9), 0, false},
		{New(2024, 1, 10), 10, true},
		{New(2024, 1, 15), 10, true},
		{New(2024, 1, 25), 20, true},
	}
	for _, tc := range testCases {
		got, ok := h.ValueAsOf(tc.on)
		if got != tc.want || ok != tc.wantOk {
			t.Errorf("ValueAsOf(%v) = %v, %v want %v, %v", tc.on, got, ok, tc.want, tc.wantOk)
		}
	}
}

func TestHistory_Days(t *testing.T) {
	var h History[int]
	for i, d := range []int{3, 1, 7, 5} {
		h.Append(New(2024, 1, d), i)
	}
	got := h.Days(Range{From: New(2024, 1, 2), To: New(2024, 1, 5)})
	want := []Date{New(2024, 1, 3), New(2024, 1, 5)}
	if !slices.Equal(got, want) {
		t.Errorf("Days() = %v, want %v", got, want)
	}
	if day, v, ok := h.Latest(); !ok || day != New(2024, 1, 7) || v != 2 {
		t.Errorf("Latest() = %v, %v, %v want 2024-01-07, 2, true", day, v, ok)
	}
}
