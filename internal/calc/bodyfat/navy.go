package bodyfat

import (
	"math"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
	"Vitals/internal/calc/units"
)

const (
	MinPercent = 3.0
	MaxPercent = 60.0
)

// USNavy estimates body fat percent from circumferences in centimetres.
// hip is only read for women.
func USNavy(waist, neck, hip, height float64, sex person.Sex) (float64, error) {
	if err := calcerr.Positive("waist", waist); err != nil {
		return 0, err
	}
	if err := calcerr.Positive("neck", neck); err != nil {
		return 0, err
	}
	if err := calcerr.Positive("height", height); err != nil {
		return 0, err
	}

	var bf float64
	if sex == person.Female {
		if err := calcerr.Positive("hip", hip); err != nil {
			return 0, err
		}
		girth := waist + hip - neck
		if girth <= 0 {
			return 0, calcerr.Domain("waist", "waist plus hip must exceed neck (%g + %g <= %g)", waist, hip, neck)
		}
		bf = 495/(1.29579-0.35004*math.Log10(girth)+0.22100*math.Log10(height)) - 450
	} else {
		girth := waist - neck
		if girth <= 0 {
			return 0, calcerr.Domain("waist", "waist must exceed neck (%g <= %g)", waist, neck)
		}
		bf = 495/(1.0324-0.19077*math.Log10(girth)+0.15456*math.Log10(height)) - 450
	}
	if math.IsNaN(bf) {
		return 0, calcerr.Domain("", "body fat formula is undefined for these measurements")
	}
	return math.Max(MinPercent, math.Min(MaxPercent, units.Round(bf, 1))), nil
}
