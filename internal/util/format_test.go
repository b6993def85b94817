package util

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		v    float64
		prec int
		want string
	}{
		{2.718281828, 4, "2.7183"},
		{1, 3, "1"},
		{0.5, 3, "0.5"},
		{-0.0001, 2, "0"},
		{120, 0, "120"},
		{math.NaN(), 2, "error"},
		{math.Inf(-1), 2, "error"},
	}
	for _, c := range cases {
		if got := FormatFloat(c.v, c.prec); got != c.want {
			t.Fatalf("FormatFloat(%v, %d): expected %q, got %q", c.v, c.prec, c.want, got)
		}
	}
}
