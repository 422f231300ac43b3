package leanmass

import (
	"strings"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
)

type Method string

const (
	MethodBoer   Method = "boer"
	MethodJames  Method = "james"
	MethodHume   Method = "hume"
	MethodDirect Method = "direct"
)

// ParseMethod defaults to Boer when no method is given.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case "", MethodBoer:
		return MethodBoer, nil
	case MethodJames:
		return MethodJames, nil
	case MethodHume:
		return MethodHume, nil
	}
	return "", calcerr.InvalidEnum("method", s)
}

func (m Method) Title() string {
	switch m {
	case MethodDirect:
		return "Direct Body Fat Method"
	case MethodJames:
		return "James Formula"
	case MethodHume:
		return "Hume Formula"
	default:
		return "Boer Formula"
	}
}

// Formula returns estimated lean mass in kg from weight (kg) and height (cm).
func Formula(m Method, weightKg, heightCm float64, sex person.Sex) float64 {
	w, h := weightKg, heightCm
	female := sex == person.Female
	switch m {
	case MethodJames:
		// (W/H)^2, not (W/H^2)^2, which exceeds body weight.
		r := w / h
		if female {
			return 1.07*w - 148*r*r
		}
		return 1.1*w - 128*r*r
	case MethodHume:
		if female {
			return 0.29569*w + 0.41813*h - 43.2933
		}
		return 0.32810*w + 0.33929*h - 29.5336
	default:
		if female {
			return 0.252*w + 0.473*h - 48.3
		}
		return 0.407*w + 0.267*h - 19.2
	}
}
