package calorie

import (
	"fmt"
	"math"
	"strings"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
	"Vitals/internal/calc/report"
	"Vitals/internal/calc/units"
)

// CaloriesPerPound is the usual 3500 kcal per pound of body weight heuristic.
const CaloriesPerPound = 3500.0

// BMR is the Mifflin-St Jeor basal rate. Imperial inputs are pounds and inches.
func BMR(weight, height float64, age int, sex person.Sex, system units.System) int {
	kg, cm := weight, height
	if system == units.Imperial {
		kg = units.PoundsToKg(weight)
		cm = units.InchesToCm(height)
	}
	bmr := 10*kg + 6.25*cm - 5*float64(age)
	if sex == person.Male {
		bmr += 5
	} else {
		bmr -= 161
	}
	return roundInt(bmr)
}

func TDEE(bmr int, level string) (int, error) {
	a, err := LookupActivity(level)
	if err != nil {
		return 0, err
	}
	return roundInt(float64(bmr) * a.Multiplier), nil
}

type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func Recommendations(goal string, age int) []Recommendation {
	var recs []Recommendation
	switch {
	case strings.Contains(goal, "lose"):
		recs = append(recs,
			Recommendation{"nutrition", "Prioritize Protein", "Aim for 0.8-1g protein per lb body weight to preserve muscle during weight loss.", "high"},
			Recommendation{"exercise", "Combine Cardio and Strength", "Mix cardiovascular exercise with resistance training for optimal fat loss.", "high"},
		)
	case strings.Contains(goal, "gain"):
		recs = append(recs,
			Recommendation{"nutrition", "Eat in Surplus", "Consume nutrient-dense foods to support healthy weight gain.", "high"},
			Recommendation{"exercise", "Focus on Strength Training", "Prioritize resistance training to maximize muscle growth.", "high"},
		)
	}
	recs = append(recs,
		Recommendation{"nutrition", "Stay Hydrated", "Drink half your body weight in ounces of water daily.", "medium"},
		Recommendation{"lifestyle", "Track Your Progress", "Monitor your weight weekly and adjust calories as needed.", "medium"},
	)
	if age > 40 {
		recs = append(recs, Recommendation{"health", "Consider Metabolism Changes", "Metabolism may slow with age. Adjust expectations and calories accordingly.", "medium"})
	}
	if age < 25 {
		recs = append(recs, Recommendation{"health", "Support Growth", "Ensure adequate nutrition to support continued physical development.", "medium"})
	}
	return recs
}

type Summary struct {
	BMR           int     `json:"bmr"`
	TDEE          int     `json:"tdee"`
	GoalCalories  int     `json:"goal_calories"`
	Difference    int     `json:"difference"`
	WeeklyChange  int     `json:"weekly_change"`
	PoundsPerWeek float64 `json:"pounds_per_week"`
	IsDeficit     bool    `json:"is_deficit"`
	IsSurplus     bool    `json:"is_surplus"`
}

// Summarize derives the expected weekly weight change from the daily difference.
func Summarize(bmr, tdee, goalCalories int) Summary {
	diff := goalCalories - tdee
	weekly := int(math.Abs(float64(diff * 7)))
	return Summary{
		BMR:           bmr,
		TDEE:          tdee,
		GoalCalories:  goalCalories,
		Difference:    diff,
		WeeklyChange:  weekly,
		PoundsPerWeek: units.Round(float64(weekly)/CaloriesPerPound, 1),
		IsDeficit:     diff < 0,
		IsSurplus:     diff > 0,
	}
}

type Input struct {
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Units         string  `json:"units"` // metric (kg, cm) or imperial (lbs, in)
	ActivityLevel string  `json:"activity_level"`
	Goal          string  `json:"goal"`
}

type Result struct {
	Summary         Summary          `json:"summary"`
	Activity        ActivityLevel    `json:"activity"`
	Goal            GoalTarget       `json:"goal"`
	Recommendations []Recommendation `json:"recommendations"`
	Gender          person.Sex       `json:"gender"`
	Age             int              `json:"age"`
}

func Calculate(in Input) (Result, error) {
	sex, err := person.ParseSex(in.Gender)
	if err != nil {
		return Result{}, err
	}
	if in.Age <= 0 {
		return Result{}, calcerr.Missing("age")
	}
	if err := calcerr.Positive("weight", in.Weight); err != nil {
		return Result{}, err
	}
	if err := calcerr.Positive("height", in.Height); err != nil {
		return Result{}, err
	}
	system, err := units.ParseSystem(in.Units)
	if err != nil {
		return Result{}, err
	}
	if in.Goal == "" {
		in.Goal = "maintain"
	}
	activity, err := LookupActivity(in.ActivityLevel)
	if err != nil {
		return Result{}, err
	}

	bmr := BMR(in.Weight, in.Height, in.Age, sex, system)
	if bmr <= 0 {
		return Result{}, calcerr.Domain("bmr", "computed basal rate %d is not positive", bmr)
	}
	tdee, err := TDEE(bmr, activity.Level)
	if err != nil {
		return Result{}, err
	}
	target, err := GoalCalories(tdee, in.Goal)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Summary:         Summarize(bmr, tdee, target.Calories),
		Activity:        activity,
		Goal:            target,
		Recommendations: Recommendations(target.Goal, in.Age),
		Gender:          sex,
		Age:             in.Age,
	}, nil
}

func (r Result) Document() report.Document {
	doc := report.New("Calorie Needs Report", "Mifflin-St Jeor Estimate")
	doc.Add("Personal Information",
		"Gender: "+r.Gender.Title(),
		fmt.Sprintf("Age: %d years", r.Age),
		"Activity: "+r.Activity.Title+" - "+r.Activity.Description)
	change := "Maintain current weight"
	if r.Summary.IsDeficit {
		change = fmt.Sprintf("Expected loss: %.1f lbs/week", r.Summary.PoundsPerWeek)
	} else if r.Summary.IsSurplus {
		change = fmt.Sprintf("Expected gain: %.1f lbs/week", r.Summary.PoundsPerWeek)
	}
	doc.Add("Results",
		fmt.Sprintf("BMR: %d kcal/day", r.Summary.BMR),
		fmt.Sprintf("TDEE: %d kcal/day", r.Summary.TDEE),
		fmt.Sprintf("Goal: %s - %d kcal/day", r.Goal.Description, r.Goal.Calories),
		change)
	lines := make([]string, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		lines = append(lines, rec.Title+": "+rec.Description)
	}
	doc.Add("Recommendations", report.Bullets(lines)...)
	return doc
}
