package healthyweight

import (
	"fmt"
	"math"
	"strings"

	"Vitals/internal/calc/calcerr"
)

type Activity string

const (
	ActivityLow      Activity = "low"
	ActivityModerate Activity = "moderate"
	ActivityHigh     Activity = "high"
)

type Frame string

const (
	FrameSmall  Frame = "small"
	FrameMedium Frame = "medium"
	FrameLarge  Frame = "large"
)

const (
	MinBMIFloor   = 17.0
	MaxBMICeiling = 30.0
)

func ParseActivity(s string) (Activity, error) {
	switch a := Activity(strings.ToLower(strings.TrimSpace(s))); a {
	case "":
		return "", calcerr.Missing("activity_level")
	case ActivityLow, ActivityModerate, ActivityHigh:
		return a, nil
	}
	return "", calcerr.InvalidEnum("activity_level", s)
}

func ParseFrame(s string) (Frame, error) {
	switch f := Frame(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return "", calcerr.Missing("body_frame")
	case FrameSmall, FrameMedium, FrameLarge:
		return f, nil
	}
	return "", calcerr.InvalidEnum("body_frame", s)
}

type Range struct {
	MinBMI      float64 `json:"min_bmi"`
	MaxBMI      float64 `json:"max_bmi"`
	MinWeight   float64 `json:"min_weight_kg"`
	MaxWeight   float64 `json:"max_weight_kg"`
	IdealWeight float64 `json:"ideal_weight_kg"`

	heightM float64
}

// Compute returns unrounded bounds; rounding is left to the caller.
func Compute(heightCm float64, age int, activity Activity, frame Frame) (Range, error) {
	if err := calcerr.Positive("height", heightCm); err != nil {
		return Range{}, err
	}
	if age <= 0 {
		return Range{}, calcerr.Missing("age")
	}
	lo, hi := bmiBounds(age, activity, frame)
	h := heightCm / 100
	sq := h * h
	return Range{
		MinBMI:      lo,
		MaxBMI:      hi,
		MinWeight:   lo * sq,
		MaxWeight:   hi * sq,
		IdealWeight: (lo + hi) / 2 * sq,
		heightM:     h,
	}, nil
}

func bmiBounds(age int, activity Activity, frame Frame) (lo, hi float64) {
	lo, hi = 18.5, 24.9
	switch {
	case age >= 65:
		lo, hi = 22.0, 27.0
	case age >= 50:
		lo, hi = 20.0, 26.0
	}
	hi += activityShift(activity)
	f := frameShift(frame)
	lo += f
	hi += f
	return math.Max(MinBMIFloor, lo), math.Min(MaxBMICeiling, hi)
}

func activityShift(a Activity) float64 {
	switch a {
	case ActivityHigh:
		return 2
	case ActivityModerate:
		return 1
	}
	return 0
}

func frameShift(f Frame) float64 {
	switch f {
	case FrameLarge:
		return 1
	case FrameSmall:
		return -1
	}
	return 0
}

// Adjustments describes which shifts were applied to the base range.
func Adjustments(age int, activity Activity, frame Frame) []string {
	var out []string
	if age >= 50 {
		out = append(out, fmt.Sprintf("Age adjustment applied (%d+ years)", age))
	}
	if a := activityShift(activity); a != 0 {
		out = append(out, fmt.Sprintf("Activity level adjustment: +%g BMI points", a))
	}
	if f := frameShift(frame); f != 0 {
		out = append(out, fmt.Sprintf("Body frame adjustment: %+g BMI points", f))
	}
	return out
}

type Targets struct {
	WeightLoss  float64 `json:"weight_loss_kg"`
	MuscleGain  float64 `json:"muscle_gain_kg"`
	Maintenance float64 `json:"maintenance_kg"`
}

func (r Range) TargetWeights() Targets {
	return Targets{
		WeightLoss:  r.MinWeight,
		MuscleGain:  (r.MaxBMI - 1) * r.heightM * r.heightM,
		Maintenance: r.IdealWeight,
	}
}

func Insights(age int, activity Activity) []string {
	var out []string
	switch {
	case age >= 65:
		out = append(out, "Slightly higher BMI ranges are acceptable for older adults", "Focus on maintaining muscle mass and bone health")
	case age >= 50:
		out = append(out, "Metabolic changes may affect weight management", "Regular exercise becomes increasingly important")
	case age < 25:
		out = append(out, "Young adults may have faster metabolisms", "Establish healthy habits early for long-term benefits")
	}
	switch activity {
	case ActivityHigh:
		out = append(out, "Athletes may have higher BMI due to muscle mass", "Focus on body composition rather than just weight")
	case ActivityLow:
		out = append(out, "Sedentary lifestyle may require lower weight targets", "Increasing activity level is highly recommended")
	}
	return out
}
