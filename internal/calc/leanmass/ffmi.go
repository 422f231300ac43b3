package leanmass

import "Vitals/internal/calc/person"

type Category struct {
	Name            string   `json:"name"`
	Color           string   `json:"color"`
	Insight         string   `json:"insight"`
	Recommendations []string `json:"recommendations"`
}

type ffmiBand struct {
	male, female float64 // exclusive upper bounds
	Category
}

// Female bounds sit three points under the male ones up to Excellent.
var ffmiBands = []ffmiBand{
	{17, 14, Category{"Below Average", "blue", "Lower muscle mass - consider strength training",
		[]string{"Focus on resistance training", "Ensure adequate protein intake", "Consider working with a trainer"}}},
	{19, 16, Category{"Average", "yellow", "Normal muscle mass for general population",
		[]string{"Maintain current activity level", "Consider progressive overload", "Monitor protein intake"}}},
	{22, 18, Category{"Above Average", "green", "Good muscle development",
		[]string{"Continue current training", "Focus on muscle maintenance", "Optimize nutrition timing"}}},
	{25, 20, Category{"Excellent", "green", "Very good muscle mass - athletic level",
		[]string{"Maintain training consistency", "Focus on performance goals", "Consider periodization"}}},
	{0, 0, Category{"Exceptional", "blue", "Elite level muscle mass",
		[]string{"Maintain elite training", "Focus on performance optimization", "Consider genetic potential"}}},
}

func FFMI(leanKg, heightCm float64) float64 {
	m := heightCm / 100
	return leanKg / (m * m)
}

func ClassifyFFMI(ffmi float64, sex person.Sex) Category {
	last := len(ffmiBands) - 1
	for i, b := range ffmiBands[:last] {
		limit := b.male
		if sex == person.Female {
			limit = b.female
		}
		if ffmi < limit {
			return ffmiBands[i].Category
		}
	}
	return ffmiBands[last].Category
}
