package units

import (
	"math"
	"testing"

	"Vitals/internal/calc/calcerr"
)

func approx(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestConversions(t *testing.T) {
	if got := PoundsToKg(220.462); !approx(got, 100, 1e-9) {
		t.Errorf("PoundsToKg = %v", got)
	}
	if got := KgToPounds(1); got != LbPerKg {
		t.Errorf("KgToPounds(1) = %v", got)
	}
	if got := InchesToCm(10); !approx(got, 25.4, 1e-9) {
		t.Errorf("InchesToCm = %v", got)
	}
	if got := FeetInchesToCm(5, 10); !approx(got, 177.8, 1e-9) {
		t.Errorf("FeetInchesToCm = %v", got)
	}
	if got := CmToInches(InchesToCm(33)); !approx(got, 33, 1e-9) {
		t.Errorf("round trip = %v", got)
	}
}

func TestRound(t *testing.T) {
	cases := []struct {
		v      float64
		places int
		want   float64
	}{
		{1648.75, 0, 1649},
		{0.063881, 4, 0.0639},
		{14.94, 1, 14.9},
		{2.5, 0, 3},
		{-2.5, 0, -2},
	}
	for _, c := range cases {
		if got := Round(c.v, c.places); !approx(got, c.want, 1e-12) {
			t.Errorf("Round(%v, %d) = %v, want %v", c.v, c.places, got, c.want)
		}
	}
	if got := CeilTenth(1.01); !approx(got, 1.1, 1e-12) {
		t.Errorf("CeilTenth(1.01) = %v", got)
	}
}

func TestParse(t *testing.T) {
	if u, err := ParseWeight("", Pounds); err != nil || u != Pounds {
		t.Errorf("default weight: %v %v", u, err)
	}
	if u, err := ParseWeight("LB", Kilograms); err != nil || u != Pounds {
		t.Errorf("LB: %v %v", u, err)
	}
	if _, err := ParseWeight("stone", Kilograms); !calcerr.IsKind(err, calcerr.KindInvalidEnum) {
		t.Errorf("stone: expected invalid enum, got %v", err)
	}
	if u, err := ParseLength("inches", Centimeters); err != nil || u != Inches {
		t.Errorf("inches: %v %v", u, err)
	}
	if _, err := ParseSystem("nautical"); !calcerr.IsKind(err, calcerr.KindInvalidEnum) {
		t.Errorf("nautical: expected invalid enum, got %v", err)
	}
}
