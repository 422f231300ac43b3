package bodyfat

import "Vitals/internal/calc/person"

// Assessment is the age-bracketed reading used on the report.
type Assessment struct {
	Category        string     `json:"category"`
	HealthRisk      string     `json:"health_risk"`
	Recommendations []string   `json:"recommendations"`
	Thresholds      Thresholds `json:"thresholds"`
}

// Thresholds are inclusive upper bounds of each age-adjusted category.
type Thresholds struct {
	Essential float64 `json:"essential"`
	Athlete   float64 `json:"athlete"`
	Fitness   float64 `json:"fitness"`
	Average   float64 `json:"average"`
	Obese     float64 `json:"obese"`
}

func thresholdsFor(sex person.Sex, age int) Thresholds {
	if sex == person.Female {
		switch {
		case age < 30:
			return Thresholds{10, 16, 21, 25, 32}
		case age < 50:
			return Thresholds{10, 18, 23, 27, 32}
		default:
			return Thresholds{10, 20, 25, 29, 32}
		}
	}
	switch {
	case age < 30:
		return Thresholds{2, 6, 14, 18, 25}
	case age < 50:
		return Thresholds{2, 7, 17, 21, 25}
	default:
		return Thresholds{2, 9, 19, 23, 25}
	}
}

func AgeAdjusted(bodyFat float64, sex person.Sex, age int) Assessment {
	th := thresholdsFor(sex, age)
	a := Assessment{Thresholds: th}
	switch {
	case bodyFat <= th.Essential:
		a.Category = "Essential Fat"
		a.HealthRisk = "Dangerously low - essential fat needed for basic physiological functions"
		a.Recommendations = []string{"Consult healthcare provider immediately", "Increase healthy fat intake", "Consider professional nutrition counseling"}
	case bodyFat <= th.Athlete:
		a.Category = "Athlete"
		a.HealthRisk = "Very low body fat typical of elite athletes"
		a.Recommendations = []string{"Monitor energy levels closely", "Ensure adequate nutrition", "Regular health checkups recommended"}
	case bodyFat <= th.Fitness:
		a.Category = "Fitness"
		a.HealthRisk = "Excellent body fat level associated with good health"
		a.Recommendations = []string{"Maintain current lifestyle", "Continue regular exercise", "Keep balanced nutrition"}
	case bodyFat <= th.Average:
		a.Category = "Average"
		a.HealthRisk = "Acceptable body fat level for general health"
		a.Recommendations = []string{"Consider increasing physical activity", "Focus on strength training", "Monitor diet quality"}
	case bodyFat <= th.Obese:
		a.Category = "Above Average"
		a.HealthRisk = "Elevated body fat may increase health risks"
		a.Recommendations = []string{"Increase cardiovascular exercise", "Consider caloric deficit", "Consult fitness professional"}
	default:
		a.Category = "Obese"
		a.HealthRisk = "High body fat significantly increases health risks"
		a.Recommendations = []string{"Consult healthcare provider", "Develop comprehensive weight loss plan", "Consider professional support"}
	}
	return a
}
