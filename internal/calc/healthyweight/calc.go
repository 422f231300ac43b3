package healthyweight

import (
	"fmt"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
	"Vitals/internal/calc/report"
	"Vitals/internal/calc/units"
)

type Input struct {
	Height        float64 `json:"height"`
	HeightUnit    string  `json:"height_unit"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	ActivityLevel string  `json:"activity_level"`
	BodyFrame     string  `json:"body_frame"`
	CurrentWeight float64 `json:"current_weight"`
	WeightUnit    string  `json:"weight_unit"`
}

type Result struct {
	Range
	Targets         Targets     `json:"targets"`
	Assessment      *Assessment `json:"assessment,omitempty"`
	Status          string      `json:"status"`
	Color           string      `json:"color"`
	Recommendations []string    `json:"recommendations"`
	Insights        []string    `json:"insights"`
	Adjustments     []string    `json:"adjustments"`
	Age             int         `json:"age"`
	Gender          person.Sex  `json:"gender,omitempty"`
	Activity        Activity    `json:"activity_level"`
	Frame           Frame       `json:"body_frame"`
	HeightCm        float64     `json:"height_cm"`
}

func Calculate(in Input) (Result, error) {
	hu, err := units.ParseLength(in.HeightUnit, units.Centimeters)
	if err != nil {
		return Result{}, err
	}
	activity, err := ParseActivity(in.ActivityLevel)
	if err != nil {
		return Result{}, err
	}
	frame, err := ParseFrame(in.BodyFrame)
	if err != nil {
		return Result{}, err
	}
	var sex person.Sex
	if in.Gender != "" {
		if sex, err = person.ParseSex(in.Gender); err != nil {
			return Result{}, err
		}
	}
	if in.CurrentWeight < 0 {
		return Result{}, calcerr.Domain("current_weight", "must not be negative")
	}
	wu, err := units.ParseWeight(in.WeightUnit, units.Kilograms)
	if err != nil {
		return Result{}, err
	}

	heightCm := units.ToCm(in.Height, hu)
	r, err := Compute(heightCm, in.Age, activity, frame)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Range:       r,
		Targets:     r.TargetWeights(),
		Insights:    Insights(in.Age, activity),
		Adjustments: Adjustments(in.Age, activity, frame),
		Age:         in.Age,
		Gender:      sex,
		Activity:    activity,
		Frame:       frame,
		HeightCm:    units.Round(heightCm, 1),
	}
	status := StatusUnassessed
	if in.CurrentWeight > 0 {
		a, err := Assess(units.ToKg(in.CurrentWeight, wu), r)
		if err != nil {
			return Result{}, err
		}
		a.CurrentBMI = units.Round(a.CurrentBMI, 1)
		a.DifferenceKg = units.Round(a.DifferenceKg, 1)
		res.Assessment = &a
		status = a.Status
	}
	res.Status = status.Name
	res.Color = status.Color
	res.Recommendations = status.Recommendations
	res.round()
	return res, nil
}

func (r *Result) round() {
	r.MinBMI = units.Round(r.MinBMI, 1)
	r.MaxBMI = units.Round(r.MaxBMI, 1)
	r.MinWeight = units.Round(r.MinWeight, 1)
	r.MaxWeight = units.Round(r.MaxWeight, 1)
	r.IdealWeight = units.Round(r.IdealWeight, 1)
	r.Targets.WeightLoss = units.Round(r.Targets.WeightLoss, 1)
	r.Targets.MuscleGain = units.Round(r.Targets.MuscleGain, 1)
	r.Targets.Maintenance = units.Round(r.Targets.Maintenance, 1)
}

func (r Result) Document() report.Document {
	doc := report.New("Healthy Weight Range Report", "Personalized Weight Assessment")
	doc.Add("Your Information",
		report.Line("Height", r.HeightCm, "cm"),
		fmt.Sprintf("Age: %d", r.Age),
		"Activity level: "+string(r.Activity),
		"Body frame: "+string(r.Frame))
	doc.Add("Healthy Weight Range",
		fmt.Sprintf("Range: %.1f - %.1f kg", r.MinWeight, r.MaxWeight),
		report.Line("Ideal weight", r.IdealWeight, "kg"),
		fmt.Sprintf("BMI range: %.1f - %.1f", r.MinBMI, r.MaxBMI))
	if r.Assessment != nil {
		doc.Add("Current Status",
			r.Status,
			report.Line("Current BMI", r.Assessment.CurrentBMI, ""),
			report.Line("Difference from ideal", r.Assessment.DifferenceKg, "kg"))
	}
	doc.Add("Weight Targets",
		report.Line("Weight loss", r.Targets.WeightLoss, "kg"),
		report.Line("Muscle gain", r.Targets.MuscleGain, "kg"),
		report.Line("Maintenance", r.Targets.Maintenance, "kg"))
	doc.Add("Adjustments", report.Bullets(r.Adjustments)...)
	doc.Add("Health Insights", report.Bullets(r.Insights)...)
	doc.Add("Recommendations", report.Bullets(r.Recommendations)...)
	return doc
}
