// Package person holds the enums shared by every anthropometric calculator.
package person

import (
	"strings"

	"Vitals/internal/calc/calcerr"
)

type Sex string

const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex is strict: an absent value is missing input, anything else must be male or female.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", calcerr.Missing("gender")
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	}
	return "", calcerr.InvalidEnum("gender", s)
}

func (s Sex) Title() string {
	if s == Female {
		return "Female"
	}
	return "Male"
}
