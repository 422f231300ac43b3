package healthyweight

import "Vitals/internal/calc/calcerr"

const (
	SlightlyAboveBMI = 27.0
	AboveBMI         = 30.0
)

type Status struct {
	Name            string   `json:"name"`
	Color           string   `json:"color"`
	Recommendations []string `json:"recommendations"`
}

var (
	StatusBelow = Status{"Below Healthy Range", "red", []string{
		"Focus on gradual, healthy weight gain",
		"Increase caloric intake with nutrient-dense foods",
		"Include strength training to build muscle mass",
		"Consult healthcare provider if underweight persists",
	}}
	StatusWithin = Status{"Within Healthy Range", "green", []string{
		"Maintain current healthy weight",
		"Continue balanced diet and regular exercise",
		"Monitor weight changes regularly",
		"Focus on overall health rather than just weight",
	}}
	StatusSlightlyAbove = Status{"Slightly Above Healthy Range", "yellow", []string{
		"Small caloric deficit for gradual weight loss",
		"Increase physical activity levels",
		"Focus on portion control and mindful eating",
		"Set realistic weight loss goals",
	}}
	StatusAbove = Status{"Above Healthy Range", "orange", []string{
		"Structured weight loss plan recommended",
		"Combine cardio and strength training",
		"Consider working with a nutritionist",
		"Set gradual weight loss targets",
	}}
	StatusSignificantlyAbove = Status{"Significantly Above Healthy Range", "red", []string{
		"Comprehensive weight management approach needed",
		"Consult healthcare provider for medical evaluation",
		"Consider professional weight loss support",
		"Focus on sustainable lifestyle changes",
	}}
	// StatusUnassessed is reported when no current weight is known.
	StatusUnassessed = Status{"Healthy Range Calculated", "blue", []string{
		"Use this range as your target weight guide",
		"Aim for the middle of your healthy range",
		"Combine with regular physical activity",
		"Monitor progress with healthcare provider",
	}}
)

type Assessment struct {
	Status
	CurrentBMI   float64 `json:"current_bmi"`
	DifferenceKg float64 `json:"difference_from_ideal_kg"`
}

// Assess places the current weight against the range. The two upper bands use
// fixed BMI thresholds regardless of the adjusted maximum.
func Assess(currentWeightKg float64, r Range) (Assessment, error) {
	if err := calcerr.Positive("current_weight", currentWeightKg); err != nil {
		return Assessment{}, err
	}
	if r.heightM <= 0 {
		return Assessment{}, calcerr.Missing("height")
	}
	bmi := currentWeightKg / (r.heightM * r.heightM)
	a := Assessment{CurrentBMI: bmi, DifferenceKg: currentWeightKg - r.IdealWeight}
	switch {
	case bmi < r.MinBMI:
		a.Status = StatusBelow
	case bmi <= r.MaxBMI:
		a.Status = StatusWithin
	case bmi <= SlightlyAboveBMI:
		a.Status = StatusSlightlyAbove
	case bmi <= AboveBMI:
		a.Status = StatusAbove
	default:
		a.Status = StatusSignificantlyAbove
	}
	return a, nil
}
