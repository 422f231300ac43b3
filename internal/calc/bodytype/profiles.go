package bodytype

type Type string

const (
	Endomorph Type = "Endomorph"
	Mesomorph Type = "Mesomorph"
	Ectomorph Type = "Ectomorph"
)

type Profile struct {
	Description       string   `json:"description"`
	Characteristics   []string `json:"characteristics"`
	Recommendations   []string `json:"recommendations"`
	TrainingInsights  []string `json:"training_insights"`
	NutritionInsights []string `json:"nutrition_insights"`
	Color             string   `json:"color"`
}

var profiles = map[Type]Profile{
	Endomorph: {
		Description: "Naturally higher body fat, round/soft physique, slower metabolism",
		Characteristics: []string{
			"Higher tendency to store fat",
			"Rounder, softer physique",
			"Wider bone structure",
			"Slower metabolism",
			"Gains weight easily",
			"More challenging to lose weight",
		},
		Recommendations: []string{
			"Focus on cardio and high-intensity training",
			"Maintain a caloric deficit for fat loss",
			"Include strength training to build muscle",
			"Monitor portion sizes carefully",
			"Choose complex carbohydrates",
			"Stay consistent with exercise routine",
		},
		TrainingInsights: []string{
			"Higher training frequency (5-6 days/week)",
			"Emphasis on cardio and circuit training",
			"Shorter rest periods between sets",
			"Include HIIT training",
		},
		NutritionInsights: []string{
			"Lower carbohydrate intake",
			"Higher protein and moderate fat",
			"Focus on nutrient timing",
			"Avoid processed foods",
		},
		Color: "orange",
	},
	Mesomorph: {
		Description: "Naturally muscular, athletic build, moderate metabolism",
		Characteristics: []string{
			"Naturally muscular physique",
			"Medium bone structure",
			"Athletic appearance",
			"Moderate metabolism",
			"Gains muscle relatively easily",
			"Can lose or gain weight with effort",
		},
		Recommendations: []string{
			"Combine strength training with cardio",
			"Moderate caloric intake for maintenance",
			"Focus on progressive overload",
			"Balanced macronutrient distribution",
			"Regular exercise for best results",
			"Can handle higher training volume",
		},
		TrainingInsights: []string{
			"Balanced training approach (4-5 days/week)",
			"Mix of strength and cardio training",
			"Periodize training programs",
			"Can handle variety in exercises",
		},
		NutritionInsights: []string{
			"Balanced macronutrient distribution",
			"Moderate carbohydrate intake",
			"Adequate protein for muscle maintenance",
			"Flexible approach to meal timing",
		},
		Color: "green",
	},
	Ectomorph: {
		Description: "Naturally lean, narrow frame, fast metabolism",
		Characteristics: []string{
			"Naturally lean physique",
			"Narrow bone structure",
			"Fast metabolism",
			"Difficulty gaining weight",
			"Lower body fat naturally",
			"May struggle to build muscle",
		},
		Recommendations: []string{
			"Focus on strength training over cardio",
			"Maintain a caloric surplus for muscle gain",
			"Limit excessive cardio",
			"Emphasize compound movements",
			"Increase meal frequency",
			"Allow adequate recovery time",
		},
		TrainingInsights: []string{
			"Focus on strength training (3-4 days/week)",
			"Limit cardio to preserve calories",
			"Longer rest periods for recovery",
			"Progressive overload emphasis",
		},
		NutritionInsights: []string{
			"Higher caloric intake needed",
			"Increase carbohydrate consumption",
			"Frequent meals throughout day",
			"Don't fear healthy fats",
		},
		Color: "blue",
	},
}

func ProfileOf(t Type) Profile { return profiles[t] }
