package bac

import (
	"fmt"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
	"Vitals/internal/calc/report"
	"Vitals/internal/calc/units"
)

const (
	// LegalLimit is the common per-se driving limit.
	LegalLimit = 0.08
	// EliminationRate is the BAC drop per hour.
	EliminationRate = 0.015

	// A standard shot of spirits.
	DefaultDrinkSizeOz = 1.5
	DefaultABVPercent  = 40

	alcoholDistribution = 5.14
	widmarkMale         = 0.73
	widmarkFemale       = 0.66
)

type Input struct {
	Weight       float64  `json:"weight"`
	WeightUnit   string   `json:"weight_unit"` // lbs or kg
	Gender       string   `json:"gender"`
	Drinks       *float64 `json:"drinks"`
	DrinkSizeOz  *float64 `json:"drink_size_oz"`   // nil means a 1.5 oz shot
	ABVPercent   *float64 `json:"alcohol_content"` // nil means 40%
	HoursElapsed *float64 `json:"hours_elapsed"`
}

type Result struct {
	BAC              float64    `json:"bac"`
	BACPercent       float64    `json:"bac_percent"`
	Impairment       Impairment `json:"impairment"`
	TimeToLegalHours *float64   `json:"time_to_legal_hours"`
	TimeToSoberHours *float64   `json:"time_to_sober_hours"`
	TotalAlcoholOz   float64    `json:"total_alcohol_oz"`
	WeightUsedLbs    float64    `json:"weight_used_lbs"`
}

func WidmarkFactor(sex person.Sex) float64 {
	if sex == person.Female {
		return widmarkFemale
	}
	return widmarkMale
}

// Compute applies the Widmark estimate. Inputs are assumed validated.
func Compute(weightLbs float64, sex person.Sex, totalDrinks, drinkSizeOz, abvPercent, hoursElapsed float64) Result {
	alcoholOz := totalDrinks * drinkSizeOz * (abvPercent / 100)
	bac := (alcoholOz*alcoholDistribution)/(weightLbs*WidmarkFactor(sex)) - EliminationRate*hoursElapsed
	if bac < 0 {
		bac = 0
	}
	bac = units.Round(bac, 4)

	res := Result{
		BAC:            bac,
		BACPercent:     units.Round(bac*100, 2),
		Impairment:     Classify(bac),
		TotalAlcoholOz: units.Round(alcoholOz, 2),
		WeightUsedLbs:  units.Round(weightLbs, 1),
	}
	if bac > LegalLimit {
		t := units.CeilTenth((bac - LegalLimit) / EliminationRate)
		res.TimeToLegalHours = &t
	}
	if bac > 0 {
		t := units.CeilTenth(bac / EliminationRate)
		res.TimeToSoberHours = &t
	}
	return res
}

func Calculate(in Input) (Result, error) {
	if err := calcerr.Positive("weight", in.Weight); err != nil {
		return Result{}, err
	}
	sex, err := person.ParseSex(in.Gender)
	if err != nil {
		return Result{}, err
	}
	if in.Drinks == nil {
		return Result{}, calcerr.Missing("drinks")
	}
	if in.HoursElapsed == nil {
		return Result{}, calcerr.Missing("hours_elapsed")
	}
	wu, err := units.ParseWeight(in.WeightUnit, units.Pounds)
	if err != nil {
		return Result{}, err
	}
	if *in.Drinks < 0 {
		return Result{}, calcerr.Domain("drinks", "must not be negative")
	}
	if *in.HoursElapsed < 0 {
		return Result{}, calcerr.Domain("hours_elapsed", "must not be negative")
	}
	size, abv, err := Serving(in.DrinkSizeOz, in.ABVPercent)
	if err != nil {
		return Result{}, err
	}

	return Compute(units.ToPounds(in.Weight, wu), sex, *in.Drinks, size, abv, *in.HoursElapsed), nil
}

// Serving resolves the drink size and strength. Omitted values fall back to a
// standard shot; given values must be positive and ABV at most 100.
func Serving(sizeOz, abvPercent *float64) (float64, float64, error) {
	size, abv := DefaultDrinkSizeOz, float64(DefaultABVPercent)
	if sizeOz != nil {
		size = *sizeOz
	}
	if abvPercent != nil {
		abv = *abvPercent
	}
	if size <= 0 {
		return 0, 0, calcerr.Domain("drink_size_oz", "must be positive")
	}
	if abv <= 0 || abv > 100 {
		return 0, 0, calcerr.Domain("alcohol_content", "must be within (0, 100]")
	}
	return size, abv, nil
}

func (r Result) Document() report.Document {
	doc := report.New("Blood Alcohol Content Report", "Widmark Estimate")
	doc.Add("Results",
		fmt.Sprintf("BAC: %.4f (%.2f%%)", r.BAC, r.BACPercent),
		"Impairment: "+r.Impairment.Level,
		"Legal status: "+r.Impairment.LegalStatus,
		r.Impairment.Description)
	var timing []string
	if r.TimeToLegalHours != nil {
		timing = append(timing, fmt.Sprintf("Time until below %.2f: %.1f hours", LegalLimit, *r.TimeToLegalHours))
	}
	if r.TimeToSoberHours != nil {
		timing = append(timing, fmt.Sprintf("Time until sober: %.1f hours", *r.TimeToSoberHours))
	}
	doc.Add("Timing", timing...)
	doc.Add("Warnings", report.Bullets(r.Impairment.Warnings)...)
	doc.Add("Inputs",
		fmt.Sprintf("Total alcohol: %.2f oz", r.TotalAlcoholOz),
		report.Line("Body weight", r.WeightUsedLbs, "lbs"))
	return doc
}
