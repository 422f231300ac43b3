package bac

import "math"

// Impairment describes one blood-alcohol band.
type Impairment struct {
	Level       string   `json:"level"`
	LegalStatus string   `json:"legal_status"`
	Description string   `json:"description"`
	Risk        string   `json:"risk"`
	Warnings    []string `json:"warnings"`
}

type band struct {
	max float64 // exclusive
	Impairment
}

// bands cover the real line; the first band is closed at 0 so that a clamped
// BAC of exactly zero reads as sober.
var bands = []band{
	{0, Impairment{
		Level:       "Sober",
		LegalStatus: "Legal to Drive",
		Description: "No measurable alcohol in bloodstream",
		Risk:        "safe",
		Warnings:    []string{},
	}},
	{0.02, Impairment{
		Level:       "Minimal Impairment",
		LegalStatus: "Legal to Drive (Most Places)",
		Description: "Some loss of judgment, relaxation, slight body warmth",
		Risk:        "low",
		Warnings:    []string{"Still some impairment present"},
	}},
	{0.05, Impairment{
		Level:       "Mild Impairment",
		LegalStatus: "May Be Illegal in Some Places",
		Description: "Exaggerated behavior, loss of small-muscle control, impaired judgment",
		Risk:        "moderate",
		Warnings:    []string{"Reaction time affected", "Judgment impaired"},
	}},
	{LegalLimit, Impairment{
		Level:       "Moderate Impairment",
		LegalStatus: "Illegal in Many Places",
		Description: "Muscle coordination problems, loss of balance, speech and vision issues",
		Risk:        "high",
		Warnings:    []string{"Do not drive", "Significant impairment"},
	}},
	{0.15, Impairment{
		Level:       "Severe Impairment",
		LegalStatus: "Illegal Everywhere",
		Description: "Major loss of motor control, vomiting, mental confusion",
		Risk:        "critical",
		Warnings:    []string{"Never drive", "Seek assistance", "Dangerous level"},
	}},
	{math.Inf(1), Impairment{
		Level:       "Life-Threatening",
		LegalStatus: "Extremely Dangerous",
		Description: "Risk of coma, death, severe alcohol poisoning",
		Risk:        "emergency",
		Warnings:    []string{"Call emergency services", "Life-threatening level", "Immediate medical attention needed"},
	}},
}

func Classify(bac float64) Impairment {
	if bac <= 0 {
		return bands[0].Impairment
	}
	for _, b := range bands[1:] {
		if bac < b.max {
			return b.Impairment
		}
	}
	return bands[len(bands)-1].Impairment
}
