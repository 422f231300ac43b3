package bodyfat

import "Vitals/internal/calc/person"

const (
	EssentialFat = "Essential Fat"
	Athletes     = "Athletes"
	Fitness      = "Fitness"
	Average      = "Average"
	AboveAverage = "Above Average"
)

type Category struct {
	Name        string  `json:"name"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
}

var maleCategories = []Category{
	{EssentialFat, 0, 6, "red", "Too low - health risks"},
	{Athletes, 6, 14, "blue", "Athletic performance range"},
	{Fitness, 14, 18, "green", "Fit and healthy"},
	{Average, 18, 25, "yellow", "Acceptable range"},
	{AboveAverage, 25, 100, "orange", "Consider reduction"},
}

var femaleCategories = []Category{
	{EssentialFat, 0, 12, "red", "Too low - health risks"},
	{Athletes, 12, 21, "blue", "Athletic performance range"},
	{Fitness, 21, 25, "green", "Fit and healthy"},
	{Average, 25, 32, "yellow", "Acceptable range"},
	{AboveAverage, 32, 100, "orange", "Consider reduction"},
}

func Categories(sex person.Sex) []Category {
	if sex == person.Female {
		return femaleCategories
	}
	return maleCategories
}

// ClassifyPercent returns the [Min, Max) band containing bodyFat. The outer
// bands are open-ended: values below zero are essential fat and values past
// 100 stay in the top band.
func ClassifyPercent(bodyFat float64, sex person.Sex) Category {
	cats := Categories(sex)
	for i, c := range cats {
		if i == len(cats)-1 || bodyFat < c.Max {
			return c
		}
	}
	return cats[len(cats)-1]
}
