package assessment

import (
	"fmt"
	"time"

	"Vitals/internal/calc/bmi"
	"Vitals/internal/calc/bodyfat"
	"Vitals/internal/calc/bodytype"
	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/calorie"
	"Vitals/internal/calc/healthyweight"
	"Vitals/internal/calc/leanmass"
	"Vitals/internal/calc/person"
	"Vitals/internal/calc/report"
)

// Profile is a metric snapshot of one person. Circumferences are in cm and optional.
type Profile struct {
	Gender        string   `json:"gender"`
	Age           int      `json:"age"`
	WeightKg      float64  `json:"weight_kg"`
	HeightCm      float64  `json:"height_cm"`
	ActivityLevel string   `json:"activity_level"`
	Goal          string   `json:"goal"`
	BodyFrame     string   `json:"body_frame"`
	BodyFat       *float64 `json:"body_fat,omitempty"`
	Neck          *float64 `json:"neck,omitempty"`
	Waist         *float64 `json:"waist,omitempty"`
	Hip           *float64 `json:"hip,omitempty"`
	Wrist         *float64 `json:"wrist,omitempty"`
	Shoulder      *float64 `json:"shoulder,omitempty"`
}

type Result struct {
	BMI           *bmi.Result           `json:"bmi,omitempty"`
	Calorie       *calorie.Result       `json:"calorie,omitempty"`
	HealthyWeight *healthyweight.Result `json:"healthy_weight,omitempty"`
	LeanMass      *leanmass.Result      `json:"lean_mass,omitempty"`
	BodyType      *bodytype.Result      `json:"body_type,omitempty"`
	BodyFat       *bodyfat.Result       `json:"body_fat,omitempty"`
	Skipped       map[string]string     `json:"skipped,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// HealthyActivity folds the five calorie activity levels into the three used
// by the healthy weight range.
func HealthyActivity(level string) (string, error) {
	if _, err := calorie.LookupActivity(level); err != nil {
		return "", err
	}
	switch level {
	case "moderately_active":
		return string(healthyweight.ActivityModerate), nil
	case "very_active", "super_active":
		return string(healthyweight.ActivityHigh), nil
	}
	return string(healthyweight.ActivityLow), nil
}

// Assess runs every estimator the profile has data for. A failing part is
// recorded in Skipped and does not affect the others; only a profile that
// lacks the shared basics is rejected outright.
func Assess(p Profile) (Result, error) {
	if _, err := person.ParseSex(p.Gender); err != nil {
		return Result{}, err
	}
	if err := calcerr.Positive("weight_kg", p.WeightKg); err != nil {
		return Result{}, err
	}
	if err := calcerr.Positive("height_cm", p.HeightCm); err != nil {
		return Result{}, err
	}
	if p.Age <= 0 {
		return Result{}, calcerr.Missing("age")
	}

	res := Result{Skipped: map[string]string{}, CreatedAt: time.Now().UTC()}
	skip := func(part string, err error) {
		res.Skipped[part] = err.Error()
	}

	if r, err := bmi.Calculate(bmi.Input{Weight: p.WeightKg, Height: p.HeightCm}); err != nil {
		skip("bmi", err)
	} else {
		res.BMI = &r
	}

	if r, err := calorie.Calculate(calorie.Input{
		Gender: p.Gender, Age: p.Age, Weight: p.WeightKg, Height: p.HeightCm,
		Units: "metric", ActivityLevel: p.ActivityLevel, Goal: p.Goal,
	}); err != nil {
		skip("calorie", err)
	} else {
		res.Calorie = &r
	}

	frame := p.BodyFrame
	if frame == "" {
		frame = string(healthyweight.FrameMedium)
	}
	if activity, err := HealthyActivity(p.ActivityLevel); err != nil {
		skip("healthy_weight", err)
	} else if r, err := healthyweight.Calculate(healthyweight.Input{
		Height: p.HeightCm, Age: p.Age, Gender: p.Gender,
		ActivityLevel: activity, BodyFrame: frame, CurrentWeight: p.WeightKg,
	}); err != nil {
		skip("healthy_weight", err)
	} else {
		res.HealthyWeight = &r
	}

	if r, err := leanmass.Calculate(leanmass.Input{Gender: p.Gender, Weight: p.WeightKg, Height: p.HeightCm, BodyFat: p.BodyFat}); err != nil {
		skip("lean_mass", err)
	} else {
		res.LeanMass = &r
	}

	if r, err := bodytype.Calculate(bodytype.Input{
		Gender: p.Gender, Age: p.Age, Weight: p.WeightKg, Height: p.HeightCm,
		Measurements: bodytype.Measurements{Wrist: p.Wrist, Shoulder: p.Shoulder, Waist: p.Waist, Hip: p.Hip},
	}); err != nil {
		skip("body_type", err)
	} else {
		res.BodyType = &r
	}

	if p.Waist != nil && p.Neck != nil {
		in := bodyfat.Input{Gender: p.Gender, Age: p.Age, Waist: *p.Waist, Neck: *p.Neck, Height: p.HeightCm, Weight: p.WeightKg}
		if p.Hip != nil {
			in.Hip = *p.Hip
		}
		if r, err := bodyfat.Calculate(in); err != nil {
			skip("body_fat", err)
		} else {
			res.BodyFat = &r
		}
	}

	if len(res.Skipped) == 0 {
		res.Skipped = nil
	}
	return res, nil
}

// Summary is a single line per completed part, used for history entries and reports.
func (r Result) Summary() []string {
	var out []string
	if r.BMI != nil {
		out = append(out, fmt.Sprintf("BMI %.1f (%s)", r.BMI.BMI, r.BMI.Category))
	}
	if r.Calorie != nil {
		out = append(out, fmt.Sprintf("TDEE %d kcal, goal %d kcal", r.Calorie.Summary.TDEE, r.Calorie.Goal.Calories))
	}
	if r.HealthyWeight != nil {
		out = append(out, fmt.Sprintf("Healthy range %.1f-%.1f kg, %s", r.HealthyWeight.MinWeight, r.HealthyWeight.MaxWeight, r.HealthyWeight.Status))
	}
	if r.LeanMass != nil {
		out = append(out, fmt.Sprintf("Lean mass %.1f kg, FFMI %.1f (%s)", r.LeanMass.LeanMassKg, r.LeanMass.FFMI, r.LeanMass.Category.Name))
	}
	if r.BodyType != nil {
		out = append(out, "Body type "+string(r.BodyType.Primary))
	}
	if r.BodyFat != nil {
		out = append(out, fmt.Sprintf("Body fat %.1f%% (%s)", r.BodyFat.BodyFatPercent, r.BodyFat.Category.Name))
	}
	return out
}

// Recommendations merges the advice of every part without duplicates.
func (r Result) Recommendations() []string {
	seen := map[string]bool{}
	var out []string
	add := func(items ...string) {
		for _, s := range items {
			if s != "" && !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	if r.HealthyWeight != nil {
		add(r.HealthyWeight.Recommendations...)
	}
	if r.Calorie != nil {
		for _, rec := range r.Calorie.Recommendations {
			add(rec.Title)
		}
	}
	if r.BodyType != nil {
		add(r.BodyType.Recommendations...)
	}
	if r.LeanMass != nil {
		add(r.LeanMass.Category.Recommendations...)
	}
	return out
}

func (r Result) Document() report.Document {
	doc := report.New("Health Assessment Report", "Complete Body Composition Overview")
	doc.Add("Summary", report.Bullets(r.Summary())...)
	doc.Add("Recommendations", report.Bullets(r.Recommendations())...)
	if len(r.Skipped) > 0 {
		var lines []string
		for _, part := range []string{"bmi", "calorie", "healthy_weight", "lean_mass", "body_type", "body_fat"} {
			if msg, ok := r.Skipped[part]; ok {
				lines = append(lines, part+": "+msg)
			}
		}
		doc.Add("Not Assessed", report.Bullets(lines)...)
	}
	return doc
}
