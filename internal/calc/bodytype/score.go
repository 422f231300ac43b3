package bodytype

import (
	"math"
	"sort"

	"Vitals/internal/calc/person"
)

// Measurements are circumferences in centimetres; nil or non-positive means not measured.
type Measurements struct {
	Wrist    *float64 `json:"wrist,omitempty"`
	Shoulder *float64 `json:"shoulder,omitempty"`
	Waist    *float64 `json:"waist,omitempty"`
	Hip      *float64 `json:"hip,omitempty"`
}

func given(v *float64) bool { return v != nil && *v > 0 }

type Scores struct {
	Endomorph int `json:"endomorph"`
	Mesomorph int `json:"mesomorph"`
	Ectomorph int `json:"ectomorph"`
}

type Percentages struct {
	Endomorph int `json:"endomorph"`
	Mesomorph int `json:"mesomorph"`
	Ectomorph int `json:"ectomorph"`
}

type Classification struct {
	Primary     Type        `json:"primary_type"`
	Secondary   *Type       `json:"secondary_type,omitempty"`
	Scores      Scores      `json:"scores"`
	Percentages Percentages `json:"percentages"`
}

// Score accumulates points from BMI and whichever proportions were measured.
func Score(bmi float64, sex person.Sex, m Measurements) Scores {
	var s Scores
	switch {
	case bmi < 18.5:
		s.Ectomorph += 3
	case bmi < 22:
		s.Ectomorph += 2
		s.Mesomorph++
	case bmi < 25:
		s.Mesomorph += 2
		s.Ectomorph++
	case bmi < 28:
		s.Mesomorph += 2
		s.Endomorph++
	default:
		s.Endomorph += 3
	}

	female := sex == person.Female
	if given(m.Wrist) && given(m.Shoulder) && given(m.Waist) {
		small, large := 16.5, 19.0
		if female {
			small, large = 14, 16.5
		}
		switch w := *m.Wrist; {
		case w < small:
			s.Ectomorph++
		case w > large:
			s.Endomorph++
		default:
			s.Mesomorph++
		}

		broad, narrow := 1.45, 1.3
		if female {
			broad, narrow = 1.25, 1.1
		}
		switch r := *m.Shoulder / *m.Waist; {
		case r > broad:
			s.Mesomorph += 2
		case r < narrow:
			s.Endomorph++
		default:
			s.Mesomorph++
		}
	}

	if given(m.Waist) && given(m.Hip) {
		lean, heavy := 0.85, 0.95
		if female {
			lean, heavy = 0.7, 0.8
		}
		switch r := *m.Waist / *m.Hip; {
		case r < lean:
			s.Mesomorph++
		case r > heavy:
			s.Endomorph++
		}
	}
	return s
}

// Classify picks the highest score; ties go to endomorph, then mesomorph.
// A runner-up within one point becomes the secondary type.
func Classify(s Scores) Classification {
	ranked := []struct {
		t     Type
		score int
	}{
		{Endomorph, s.Endomorph},
		{Mesomorph, s.Mesomorph},
		{Ectomorph, s.Ectomorph},
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	c := Classification{Primary: ranked[0].t, Scores: s}
	if ranked[1].score >= ranked[0].score-1 {
		sec := ranked[1].t
		c.Secondary = &sec
	}

	// Rounded independently, so the three need not add up to 100.
	total := float64(s.Endomorph + s.Mesomorph + s.Ectomorph)
	if total > 0 {
		pct := func(v int) int { return int(math.Floor(float64(v)/total*100 + 0.5)) }
		c.Percentages = Percentages{pct(s.Endomorph), pct(s.Mesomorph), pct(s.Ectomorph)}
	}
	return c
}

func Compute(bmi float64, sex person.Sex, m Measurements) Classification {
	return Classify(Score(bmi, sex, m))
}
