package calorie

import (
	"math"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/units"
)

type ActivityLevel struct {
	Level       string  `json:"level"`
	Multiplier  float64 `json:"multiplier"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

var activityLevels = []ActivityLevel{
	{"sedentary", 1.2, "Sedentary", "Little or no exercise, desk job"},
	{"lightly_active", 1.375, "Lightly Active", "Light exercise 1-3 days per week"},
	{"moderately_active", 1.55, "Moderately Active", "Moderate exercise 3-5 days per week"},
	{"very_active", 1.725, "Very Active", "Hard exercise 6-7 days per week"},
	{"super_active", 1.9, "Super Active", "Very hard exercise, physical job, or training twice a day"},
}

func ActivityLevels() []ActivityLevel {
	return append([]ActivityLevel(nil), activityLevels...)
}

func LookupActivity(level string) (ActivityLevel, error) {
	for _, a := range activityLevels {
		if a.Level == level {
			return a, nil
		}
	}
	if level == "" {
		return ActivityLevel{}, calcerr.Missing("activity_level")
	}
	return ActivityLevel{}, calcerr.InvalidEnum("activity_level", level)
}

type Goal struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
	Pace        string  `json:"pace"`
}

var goals = []Goal{
	{"lose_aggressive", "Aggressive Weight Loss", 0.75, "Aggressive weight loss (1-2 lbs/week)", "1-2 lbs/week"},
	{"lose_moderate", "Moderate Weight Loss", 0.85, "Moderate weight loss (0.5-1 lb/week)", "0.5-1 lb/week"},
	{"lose_slow", "Slow Weight Loss", 0.92, "Slow weight loss (0.25-0.5 lb/week)", "0.25-0.5 lb/week"},
	{"maintain", "Maintain Weight", 1.0, "Maintain current weight", "Current weight"},
	{"gain_slow", "Slow Weight Gain", 1.08, "Slow weight gain (0.25-0.5 lb/week)", "0.25-0.5 lb/week"},
	{"gain_moderate", "Moderate Weight Gain", 1.15, "Moderate weight gain (0.5-1 lb/week)", "0.5-1 lb/week"},
	{"gain_muscle", "Muscle Building", 1.2, "Muscle building (lean bulk)", "Lean bulk"},
}

func Goals() []Goal {
	return append([]Goal(nil), goals...)
}

func LookupGoal(name string) (Goal, error) {
	for _, g := range goals {
		if g.Name == name {
			return g, nil
		}
	}
	if name == "" {
		return Goal{}, calcerr.Missing("goal")
	}
	return Goal{}, calcerr.InvalidEnum("goal", name)
}

// GoalTarget is the daily intake for one goal.
type GoalTarget struct {
	Goal        string `json:"goal"`
	Calories    int    `json:"calories"`
	Deficit     int    `json:"deficit"`
	Surplus     int    `json:"surplus"`
	Description string `json:"description"`
}

// GoalCalories applies the goal multiplier to a TDEE.
func GoalCalories(tdee int, goal string) (GoalTarget, error) {
	g, err := LookupGoal(goal)
	if err != nil {
		return GoalTarget{}, err
	}
	t := float64(tdee)
	out := GoalTarget{
		Goal:        g.Name,
		Calories:    roundInt(t * g.Multiplier),
		Description: g.Description,
	}
	shift := units.Round(math.Abs(1-g.Multiplier), 2)
	switch {
	case g.Multiplier < 1:
		out.Deficit = roundInt(t * shift)
	case g.Multiplier > 1:
		out.Surplus = roundInt(t * shift)
	}
	return out, nil
}

func roundInt(v float64) int {
	return int(math.Floor(v + 0.5))
}
