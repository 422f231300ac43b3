package bmi

import (
	"math"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/report"
	"Vitals/internal/calc/units"
)

type Input struct {
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weight_unit"`
	Height     float64 `json:"height"`
	HeightUnit string  `json:"height_unit"`
}

type Result struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
}

type band struct {
	max  float64
	name string
}

var bands = []band{
	{18.5, "Underweight"},
	{25, "Normal weight"},
	{30, "Overweight"},
	{35, "Obesity Class 1"},
	{40, "Obesity Class 2"},
	{math.Inf(1), "Obesity Class 3"},
}

// Value is the unrounded body mass index.
func Value(weightKg, heightCm float64) (float64, error) {
	if err := calcerr.Positive("weight", weightKg); err != nil {
		return 0, err
	}
	if err := calcerr.Positive("height", heightCm); err != nil {
		return 0, err
	}
	m := heightCm / 100
	return weightKg / (m * m), nil
}

func Category(bmi float64) string {
	for _, b := range bands {
		if bmi < b.max {
			return b.name
		}
	}
	return bands[len(bands)-1].name
}

func Calculate(in Input) (Result, error) {
	wu, err := units.ParseWeight(in.WeightUnit, units.Kilograms)
	if err != nil {
		return Result{}, err
	}
	hu, err := units.ParseLength(in.HeightUnit, units.Centimeters)
	if err != nil {
		return Result{}, err
	}
	kg := units.ToKg(in.Weight, wu)
	cm := units.ToCm(in.Height, hu)
	v, err := Value(kg, cm)
	if err != nil {
		return Result{}, err
	}
	return Result{
		BMI:      units.Round(v, 1),
		Category: Category(v),
		WeightKg: units.Round(kg, 1),
		HeightCm: units.Round(cm, 1),
	}, nil
}

func (r Result) Document() report.Document {
	doc := report.New("BMI Report", "Body Mass Index Assessment")
	doc.Add("Measurements",
		report.Line("Weight", r.WeightKg, "kg"),
		report.Line("Height", r.HeightCm, "cm"))
	doc.Add("Results",
		report.Line("BMI", r.BMI, ""),
		"Category: "+r.Category)
	return doc
}
