package bodyfat

import (
	"fmt"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
	"Vitals/internal/calc/report"
	"Vitals/internal/calc/units"
)

type Input struct {
	Gender     string  `json:"gender"`
	Age        int     `json:"age"`
	Unit       string  `json:"unit"` // cm or in, applies to every circumference and height
	Waist      float64 `json:"waist"`
	Neck       float64 `json:"neck"`
	Hip        float64 `json:"hip"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit"`
}

type Result struct {
	BodyFatPercent  float64          `json:"body_fat_percent"`
	Category        Category         `json:"category"`
	Recommendations []Recommendation `json:"recommendations"`
	Assessment      Assessment       `json:"age_adjusted"`
	FatMassKg       *float64         `json:"fat_mass_kg,omitempty"`
	LeanMassKg      *float64         `json:"lean_mass_kg,omitempty"`
	Gender          person.Sex       `json:"gender"`
	Age             int              `json:"age"`
	Method          string           `json:"method"`
}

func Calculate(in Input) (Result, error) {
	sex, err := person.ParseSex(in.Gender)
	if err != nil {
		return Result{}, err
	}
	if in.Age <= 0 {
		return Result{}, calcerr.Missing("age")
	}
	lu, err := units.ParseLength(in.Unit, units.Centimeters)
	if err != nil {
		return Result{}, err
	}
	wu, err := units.ParseWeight(in.WeightUnit, units.Kilograms)
	if err != nil {
		return Result{}, err
	}

	hip := 0.0
	if sex == person.Female {
		hip = units.ToCm(in.Hip, lu)
	}
	bf, err := USNavy(units.ToCm(in.Waist, lu), units.ToCm(in.Neck, lu), hip, units.ToCm(in.Height, lu), sex)
	if err != nil {
		return Result{}, err
	}

	cat := ClassifyPercent(bf, sex)
	res := Result{
		BodyFatPercent:  bf,
		Category:        cat,
		Recommendations: Recommendations(cat.Name, in.Age),
		Assessment:      AgeAdjusted(bf, sex, in.Age),
		Gender:          sex,
		Age:             in.Age,
		Method:          "US Navy Circumference Method",
	}
	if in.Weight > 0 {
		kg := units.ToKg(in.Weight, wu)
		fat := units.Round(kg*bf/100, 1)
		lean := units.Round(kg-kg*bf/100, 1)
		res.FatMassKg = &fat
		res.LeanMassKg = &lean
	}
	return res, nil
}

func (r Result) Document() report.Document {
	doc := report.New("Body Fat Analysis Report", r.Method)
	doc.Add("Personal Information",
		"Gender: "+r.Gender.Title(),
		fmt.Sprintf("Age: %d years", r.Age))
	results := []string{
		fmt.Sprintf("Body fat: %.1f%%", r.BodyFatPercent),
		"Category: " + r.Category.Name + " (" + r.Category.Description + ")",
		"Age-adjusted category: " + r.Assessment.Category,
		r.Assessment.HealthRisk,
	}
	if r.FatMassKg != nil {
		results = append(results, report.Line("Fat mass", *r.FatMassKg, "kg"), report.Line("Lean mass", *r.LeanMassKg, "kg"))
	}
	doc.Add("Results", results...)
	lines := make([]string, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		lines = append(lines, fmt.Sprintf("%s [%s]: %s", rec.Title, rec.Priority, rec.Description))
	}
	doc.Add("Recommendations", report.Bullets(lines)...)
	doc.Add("Next Steps", report.Bullets(r.Assessment.Recommendations)...)
	return doc
}
