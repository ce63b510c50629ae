package utils

import (
	"encoding/json"
	"testing"
)

func TestParseIntAcceptsNumbersAndNumericStrings(t *testing.T) {
	cases := map[string]struct {
		in   any
		want int
	}{
		"float":       {in: float64(3), want: 3},
		"truncated":   {in: 2.9, want: 2},
		"string":      {in: " 4 ", want: 4},
		"json number": {in: json.Number("5"), want: 5},
	}
	for name, tc := range cases {
		got, err := ParseInt(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %d want %d", name, got, tc.want)
		}
	}
}

func TestParseIntRejectsGarbage(t *testing.T) {
	for _, in := range []any{"two", "2.5", true, nil, []any{1}} {
		if _, err := ParseInt(in); err == nil {
			t.Fatalf("expected error for %#v", in)
		}
	}
}

func TestParseFloat(t *testing.T) {
	if got, err := ParseFloat("20.5"); err != nil || got != 20.5 {
		t.Fatalf("ParseFloat string = %v, %v", got, err)
	}
	if got, err := ParseFloat(float64(20)); err != nil || got != 20 {
		t.Fatalf("ParseFloat number = %v, %v", got, err)
	}
	if _, err := ParseFloat("cheap"); err == nil {
		t.Fatalf("expected error for non-numeric price")
	}
	if _, err := ParseFloat("NaN"); err == nil {
		t.Fatalf("expected error for NaN")
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList("WiFi, AC;;Music\n")
	want := []string{"WiFi", "AC", "Music"}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
	if out := SplitList(""); out == nil || len(out) != 0 {
		t.Fatalf("empty input should give empty non-nil slice, got %#v", out)
	}
}

func TestFormatUSD(t *testing.T) {
	cases := map[float64]string{
		0:       "$0.00",
		45:      "$45.00",
		1234.5:  "$1,234.50",
		-20.25:  "-$20.25",
		99.999:  "$100.00",
	}
	for in, want := range cases {
		if got := FormatUSD(in); got != want {
			t.Fatalf("FormatUSD(%v) = %q want %q", in, got, want)
		}
	}
}
