package recommend

import (
	"fmt"
	"math"

	"Vitals/internal/calc/bac"
	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
	"Vitals/internal/calc/units"
)

// MaxCount caps the answer for very long drinking windows.
const MaxCount = 50

type DrinksInput struct {
	Weight       float64  `json:"weight"`
	WeightUnit   string   `json:"weight_unit"`
	Gender       string   `json:"gender"`
	DrinkSizeOz  *float64 `json:"drink_size_oz"`
	ABVPercent   *float64 `json:"alcohol_content"`
	HoursElapsed float64  `json:"hours_elapsed"`
	Limit        float64  `json:"limit"`
}

type DrinksResult struct {
	MaxDrinks int     `json:"max_drinks"`
	Limit     float64 `json:"limit"`
	BACAtMax  float64 `json:"bac_at_max"`
	BACNext   float64 `json:"bac_next_drink"`
	Notes     string  `json:"notes"`
}

// MaxDrinks finds the largest whole number of drinks whose estimated BAC
// stays below limit after hours of elimination.
func MaxDrinks(weightLbs float64, sex person.Sex, drinkSizeOz, abvPercent, hours, limit float64) (DrinksResult, error) {
	if err := calcerr.Positive("weight", weightLbs); err != nil {
		return DrinksResult{}, err
	}
	if hours < 0 {
		return DrinksResult{}, calcerr.Domain("hours_elapsed", "must not be negative")
	}
	if abvPercent <= 0 || abvPercent > 100 {
		return DrinksResult{}, calcerr.Domain("alcohol_content", "must be within (0, 100]")
	}
	if drinkSizeOz <= 0 {
		return DrinksResult{}, calcerr.Domain("drink_size_oz", "must be positive")
	}
	if limit <= 0 {
		limit = bac.LegalLimit
	}

	estimate := func(n int) float64 {
		return bac.Compute(weightLbs, sex, float64(n), drinkSizeOz, abvPercent, hours).BAC
	}
	// Starting point from the inverted Widmark formula, then step down to the
	// exact boundary of the rounded estimate.
	perDrink := bac.Compute(weightLbs, sex, 1, drinkSizeOz, abvPercent, 0).BAC
	n := MaxCount
	if perDrink > 0 {
		n = int(math.Min(MaxCount, math.Ceil((limit+bac.EliminationRate*hours)/perDrink)+1))
	}
	for n > 0 && estimate(n) >= limit {
		n--
	}

	res := DrinksResult{MaxDrinks: n, Limit: limit, BACAtMax: estimate(n), BACNext: estimate(n + 1)}
	switch {
	case n == 0:
		res.Notes = fmt.Sprintf("Even one drink is estimated to reach %.4f. Do not drink and drive.", res.BACNext)
	case n == MaxCount:
		res.Notes = "Estimate capped; BAC formulas are unreliable for long drinking sessions."
	default:
		res.Notes = fmt.Sprintf("Drink %d would raise the estimate to %.4f. Individual absorption varies widely.", n+1, res.BACNext)
	}
	return res, nil
}

func Drinks(in DrinksInput) (DrinksResult, error) {
	sex, err := person.ParseSex(in.Gender)
	if err != nil {
		return DrinksResult{}, err
	}
	wu, err := units.ParseWeight(in.WeightUnit, units.Pounds)
	if err != nil {
		return DrinksResult{}, err
	}
	size, abv, err := bac.Serving(in.DrinkSizeOz, in.ABVPercent)
	if err != nil {
		return DrinksResult{}, err
	}
	return MaxDrinks(units.ToPounds(in.Weight, wu), sex, size, abv, in.HoursElapsed, in.Limit)
}
