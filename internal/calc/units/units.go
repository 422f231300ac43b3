// Package units holds the fixed conversion factors every calculator shares.
// All estimators work in kilograms and centimetres internally.
package units

import (
	"math"
	"strings"

	"Vitals/internal/calc/calcerr"
)

const (
	LbPerKg       = 2.20462
	CmPerInch     = 2.54
	InchesPerFoot = 12.0
)

type Weight string

const (
	Kilograms Weight = "kg"
	Pounds    Weight = "lbs"
)

type Length string

const (
	Centimeters Length = "cm"
	Inches      Length = "in"
)

type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

func PoundsToKg(lbs float64) float64 { return lbs / LbPerKg }
func KgToPounds(kg float64) float64  { return kg * LbPerKg }
func InchesToCm(in float64) float64  { return in * CmPerInch }
func CmToInches(cm float64) float64  { return cm / CmPerInch }

func FeetInchesToCm(feet, inches float64) float64 {
	return InchesToCm(feet*InchesPerFoot + inches)
}

// ParseWeight accepts "kg", "lbs" (or "lb"); empty selects def.
func ParseWeight(s string, def Weight) (Weight, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "kg":
		return Kilograms, nil
	case "lb", "lbs":
		return Pounds, nil
	}
	return "", calcerr.InvalidEnum("weight_unit", s)
}

// ParseLength accepts "cm", "in" (or "inches"); empty selects def.
func ParseLength(s string, def Length) (Length, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "cm":
		return Centimeters, nil
	case "in", "inch", "inches":
		return Inches, nil
	}
	return "", calcerr.InvalidEnum("length_unit", s)
}

func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	}
	return "", calcerr.InvalidEnum("units", s)
}

func ToKg(v float64, u Weight) float64 {
	if u == Pounds {
		return PoundsToKg(v)
	}
	return v
}

func ToPounds(v float64, u Weight) float64 {
	if u == Kilograms {
		return KgToPounds(v)
	}
	return v
}

func ToCm(v float64, u Length) float64 {
	if u == Inches {
		return InchesToCm(v)
	}
	return v
}

// Round rounds half up to the given number of decimals.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Floor(v*p+0.5) / p
}

// CeilTenth rounds up to one decimal place.
func CeilTenth(v float64) float64 {
	return math.Ceil(v*10) / 10
}
