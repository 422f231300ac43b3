package leanmass

import (
	"fmt"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
	"Vitals/internal/calc/report"
	"Vitals/internal/calc/units"
)

const (
	AccuracyHigh     = "High"
	AccuracyModerate = "Moderate"
)

var (
	directRecommendations  = []string{"Most accurate method available", "Monitor body fat changes over time", "Ideal for tracking body composition"}
	formulaRecommendations = []string{"Consider body fat measurement for accuracy", "Use for general body composition tracking", "Supplement with other assessment methods"}
)

type Result struct {
	LeanMassKg      float64    `json:"lean_mass_kg"`
	FatMassKg       float64    `json:"fat_mass_kg"`
	LeanPercent     float64    `json:"lean_percent"`
	FatPercent      float64    `json:"fat_percent"`
	FFMI            float64    `json:"ffmi"`
	Method          Method     `json:"method"`
	MethodName      string     `json:"method_name"`
	Accuracy        string     `json:"accuracy"`
	AccuracyNote    string     `json:"accuracy_note"`
	Category        Category   `json:"category"`
	Recommendations []string   `json:"recommendations"`
	Gender          person.Sex `json:"gender"`
	WeightKg        float64    `json:"weight_kg"`
	HeightCm        float64    `json:"height_cm"`
}

// Compute uses bodyFatPercent when it is set and positive, else the regression method.
func Compute(weightKg, heightCm float64, sex person.Sex, bodyFatPercent *float64, method Method) (Result, error) {
	if err := calcerr.Positive("weight", weightKg); err != nil {
		return Result{}, err
	}
	if err := calcerr.Positive("height", heightCm); err != nil {
		return Result{}, err
	}

	var lean, fat float64
	res := Result{Gender: sex, WeightKg: units.Round(weightKg, 1), HeightCm: units.Round(heightCm, 1)}
	var base []string
	if bodyFatPercent != nil && *bodyFatPercent > 0 {
		if *bodyFatPercent >= 100 {
			return Result{}, calcerr.Domain("body_fat", "must be below 100 percent")
		}
		fat = weightKg * *bodyFatPercent / 100
		lean = weightKg - fat
		res.Method = MethodDirect
		res.Accuracy = AccuracyHigh
		res.AccuracyNote = "uses actual body fat %"
		base = directRecommendations
	} else {
		if method == MethodDirect {
			return Result{}, calcerr.Missing("body_fat")
		}
		lean = Formula(method, weightKg, heightCm, sex)
		if lean <= 0 || lean >= weightKg {
			return Result{}, calcerr.Domain("", "%s gives %.1f kg lean mass for %.1f kg body weight", method.Title(), lean, weightKg)
		}
		fat = weightKg - lean
		res.Method = method
		res.Accuracy = AccuracyModerate
		res.AccuracyNote = "formula-based estimate"
		base = formulaRecommendations
	}

	ffmi := FFMI(lean, heightCm)
	cat := ClassifyFFMI(ffmi, sex)
	res.LeanMassKg = units.Round(lean, 1)
	res.FatMassKg = units.Round(fat, 1)
	res.LeanPercent = units.Round(lean/weightKg*100, 1)
	res.FatPercent = units.Round(fat/weightKg*100, 1)
	res.FFMI = units.Round(ffmi, 1)
	res.MethodName = res.Method.Title()
	res.Category = cat
	res.Recommendations = append(append([]string{}, base...), cat.Recommendations...)
	return res, nil
}

type Input struct {
	Gender     string   `json:"gender"`
	Weight     float64  `json:"weight"`
	WeightUnit string   `json:"weight_unit"`
	Height     float64  `json:"height"`
	HeightUnit string   `json:"height_unit"`
	BodyFat    *float64 `json:"body_fat"`
	Method     string   `json:"method"`
}

func Calculate(in Input) (Result, error) {
	sex, err := person.ParseSex(in.Gender)
	if err != nil {
		return Result{}, err
	}
	wu, err := units.ParseWeight(in.WeightUnit, units.Kilograms)
	if err != nil {
		return Result{}, err
	}
	hu, err := units.ParseLength(in.HeightUnit, units.Centimeters)
	if err != nil {
		return Result{}, err
	}
	method, err := ParseMethod(in.Method)
	if err != nil {
		return Result{}, err
	}
	if in.BodyFat != nil && *in.BodyFat < 0 {
		return Result{}, calcerr.Domain("body_fat", "must not be negative")
	}
	return Compute(units.ToKg(in.Weight, wu), units.ToCm(in.Height, hu), sex, in.BodyFat, method)
}

func (r Result) Document() report.Document {
	doc := report.New("Lean Body Mass Analysis Report", "Body Composition Assessment")
	doc.Add("Personal Information",
		"Gender: "+r.Gender.Title(),
		report.Line("Weight", r.WeightKg, "kg"),
		report.Line("Height", r.HeightCm, "cm"))
	doc.Add("Body Composition Breakdown",
		fmt.Sprintf("Lean body mass: %.1f kg (%.1f%%)", r.LeanMassKg, r.LeanPercent),
		fmt.Sprintf("Fat mass: %.1f kg (%.1f%%)", r.FatMassKg, r.FatPercent),
		report.Line("Fat-Free Mass Index (FFMI)", r.FFMI, ""),
		"Method: "+r.MethodName,
		fmt.Sprintf("Accuracy: %s (%s)", r.Accuracy, r.AccuracyNote))
	doc.Add("Health Assessment", "Category: "+r.Category.Name, r.Category.Insight)
	doc.Add("Recommendations", report.Bullets(r.Recommendations)...)
	return doc
}
