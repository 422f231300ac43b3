package bodytype

import (
	"fmt"

	"Vitals/internal/calc/bmi"
	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
	"Vitals/internal/calc/report"
	"Vitals/internal/calc/units"
)

type Input struct {
	Gender     string  `json:"gender"`
	Age        int     `json:"age"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit"`
	Height     float64 `json:"height"`
	HeightUnit string  `json:"height_unit"`
	Measurements
}

type Result struct {
	Classification
	Profile
	BMI          float64      `json:"bmi"`
	Gender       person.Sex   `json:"gender"`
	Age          int          `json:"age,omitempty"`
	Measurements Measurements `json:"measurements"`
}

func Calculate(in Input) (Result, error) {
	sex, err := person.ParseSex(in.Gender)
	if err != nil {
		return Result{}, err
	}
	if in.Age < 0 {
		return Result{}, calcerr.Domain("age", "must not be negative")
	}
	wu, err := units.ParseWeight(in.WeightUnit, units.Kilograms)
	if err != nil {
		return Result{}, err
	}
	hu, err := units.ParseLength(in.HeightUnit, units.Centimeters)
	if err != nil {
		return Result{}, err
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{{"wrist", in.Wrist}, {"shoulder", in.Shoulder}, {"waist", in.Waist}, {"hip", in.Hip}} {
		if f.v != nil && *f.v < 0 {
			return Result{}, calcerr.Domain(f.name, "must not be negative")
		}
	}
	v, err := bmi.Value(units.ToKg(in.Weight, wu), units.ToCm(in.Height, hu))
	if err != nil {
		return Result{}, err
	}
	c := Compute(v, sex, in.Measurements)
	return Result{
		Classification: c,
		Profile:        ProfileOf(c.Primary),
		BMI:            units.Round(v, 1),
		Gender:         sex,
		Age:            in.Age,
		Measurements:   in.Measurements,
	}, nil
}

func (r Result) Document() report.Document {
	doc := report.New("Body Type Analysis Report", "Somatotype Assessment")
	primary := "Primary type: " + string(r.Primary)
	if r.Secondary != nil {
		primary += fmt.Sprintf(" with %s traits", *r.Secondary)
	}
	doc.Add("Classification",
		primary,
		r.Description,
		report.Line("BMI", r.BMI, ""),
		fmt.Sprintf("Endomorph %d%%, Mesomorph %d%%, Ectomorph %d%%",
			r.Percentages.Endomorph, r.Percentages.Mesomorph, r.Percentages.Ectomorph))
	doc.Add("Characteristics", report.Bullets(r.Characteristics)...)
	doc.Add("Training Insights", report.Bullets(r.TrainingInsights)...)
	doc.Add("Nutrition Insights", report.Bullets(r.NutritionInsights)...)
	doc.Add("Recommendations", report.Bullets(r.Recommendations)...)
	return doc
}
