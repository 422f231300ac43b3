package bodytype

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
)

func ptr(v float64) *float64 { return &v }

func TestScoreBMIBands(t *testing.T) {
	cases := []struct {
		bmi  float64
		want Scores
	}{
		{17, Scores{Ectomorph: 3}},
		{18.5, Scores{Ectomorph: 2, Mesomorph: 1}},
		{22, Scores{Mesomorph: 2, Ectomorph: 1}},
		{25, Scores{Mesomorph: 2, Endomorph: 1}},
		{28, Scores{Endomorph: 3}},
	}
	for _, c := range cases {
		if got := Score(c.bmi, person.Male, Measurements{}); got != c.want {
			t.Errorf("Score(%v) = %+v, want %+v", c.bmi, got, c.want)
		}
	}
}

func TestScoreMeasurements(t *testing.T) {
	// Broad shoulders and a medium wrist on a normal-BMI male.
	m := Measurements{Wrist: ptr(17.5), Shoulder: ptr(120), Waist: ptr(80), Hip: ptr(98)}
	got := Score(23, person.Male, m)
	want := Scores{Mesomorph: 2 + 1 + 2 + 1, Ectomorph: 1}
	if got != want {
		t.Fatalf("male = %+v, want %+v", got, want)
	}

	// Same wrist is large for a female, and the waist:hip thresholds differ.
	m = Measurements{Wrist: ptr(17.5), Shoulder: ptr(100), Waist: ptr(85), Hip: ptr(100)}
	got = Score(23, person.Female, m)
	want = Scores{Mesomorph: 2 + 1, Ectomorph: 1, Endomorph: 1 + 1}
	if got != want {
		t.Fatalf("female = %+v, want %+v", got, want)
	}

	// Wrist without shoulder adds nothing.
	if got := Score(23, person.Male, Measurements{Wrist: ptr(15), Waist: ptr(80)}); got != (Scores{Mesomorph: 2, Ectomorph: 1}) {
		t.Fatalf("partial measurements scored: %+v", got)
	}
}

func TestClassifyTieBreak(t *testing.T) {
	c := Classify(Scores{Endomorph: 3, Mesomorph: 3, Ectomorph: 3})
	if c.Primary != Endomorph || c.Secondary == nil || *c.Secondary != Mesomorph {
		t.Fatalf("three-way tie = %+v", c)
	}
	if c.Percentages != (Percentages{33, 33, 33}) {
		t.Fatalf("percentages = %+v", c.Percentages)
	}

	c = Classify(Scores{Mesomorph: 3, Ectomorph: 3})
	if c.Primary != Mesomorph || *c.Secondary != Ectomorph {
		t.Fatalf("meso/ecto tie = %+v", c)
	}

	c = Classify(Scores{Ectomorph: 3})
	if c.Primary != Ectomorph || c.Secondary != nil {
		t.Fatalf("clear ectomorph = %+v", c)
	}
	if c.Percentages != (Percentages{0, 0, 100}) {
		t.Fatalf("percentages = %+v", c.Percentages)
	}
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{Gender: "male", Weight: 95, Height: 175})
	if err != nil {
		t.Fatal(err)
	}
	if res.Primary != Endomorph || res.Secondary != nil || res.BMI != 31 {
		t.Fatalf("unexpected result %+v", res.Classification)
	}
	if res.Color != "orange" || len(res.TrainingInsights) != 4 {
		t.Fatalf("profile not attached: %+v", res.Profile)
	}

	if _, err := Calculate(Input{Gender: "male", Weight: 95, Height: 175, Measurements: Measurements{Hip: ptr(-1)}}); !calcerr.IsKind(err, calcerr.KindDomain) {
		t.Fatalf("negative hip: %v", err)
	}
	if _, err := Calculate(Input{Weight: 95, Height: 175}); !calcerr.IsKind(err, calcerr.KindMissingInput) {
		t.Fatalf("missing gender: %v", err)
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	body := `{"gender":"female","weight":55,"height":168,"wrist":14.5,"shoulder":95,"waist":68,"hip":95}`
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/calc/bodytype", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	// BMI 19.5: ecto 2 meso 1, wrist meso, ratio 1.397 meso 2, waist:hip 0.716 nothing.
	if res.Primary != Mesomorph || res.Scores != (Scores{Mesomorph: 4, Ectomorph: 2}) {
		t.Fatalf("unexpected classification %+v", res.Classification)
	}
}
