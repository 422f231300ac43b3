package bodyfat

type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Recommendations builds the advice list for a category name and age.
func Recommendations(category string, age int) []Recommendation {
	var recs []Recommendation

	switch category {
	case EssentialFat:
		recs = append(recs,
			Recommendation{"health", "Increase Body Fat", "Your body fat is too low. Consult a healthcare provider immediately.", "urgent"},
			Recommendation{"nutrition", "Increase Healthy Calories", "Add healthy fats like nuts, avocados, and olive oil to your diet.", "high"},
		)
	case AboveAverage:
		recs = append(recs,
			Recommendation{"nutrition", "Reduce Caloric Intake", "Create a moderate caloric deficit with portion control and healthier food choices.", "high"},
			Recommendation{"exercise", "Combine Cardio and Strength Training", "Mix cardiovascular exercise with resistance training for optimal fat loss.", "high"},
		)
	case Athletes, Fitness:
		recs = append(recs,
			Recommendation{"lifestyle", "Maintain Current Level", "Your body fat percentage is in an excellent range. Keep up your current routine.", "low"},
		)
	}

	if age > 40 {
		recs = append(recs, Recommendation{"exercise", "Focus on Strength Training", "Prioritize resistance training to maintain muscle mass and bone density.", "medium"})
	}

	return append(recs, Recommendation{"measurement", "Regular Monitoring", "Track your body fat percentage monthly rather than daily for best results.", "low"})
}
