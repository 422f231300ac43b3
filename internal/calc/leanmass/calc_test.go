package leanmass

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestFormulaCoefficients(t *testing.T) {
	cases := []struct {
		m    Method
		sex  person.Sex
		want float64
	}{
		{MethodBoer, person.Male, 61.42},
		{MethodBoer, person.Female, 57.0},
		{MethodJames, person.Male, 88 - 128*(80.0/180)*(80.0/180)},
		{MethodJames, person.Female, 85.6 - 148*(80.0/180)*(80.0/180)},
		{MethodHume, person.Male, 57.7866},
		{MethodHume, person.Female, 55.6253},
	}
	for _, c := range cases {
		if got := Formula(c.m, 80, 180, c.sex); !approx(got, c.want) {
			t.Errorf("Formula(%s, %s) = %v, want %v", c.m, c.sex, got, c.want)
		}
	}
}

func TestComputeFormula(t *testing.T) {
	res, err := Compute(80, 180, person.Male, nil, MethodBoer)
	if err != nil {
		t.Fatal(err)
	}
	if res.LeanMassKg != 61.4 || res.FatMassKg != 18.6 || res.FFMI != 19.0 {
		t.Fatalf("unexpected masses %+v", res)
	}
	if res.Accuracy != AccuracyModerate || res.Method != MethodBoer {
		t.Fatalf("accuracy = %q method = %q", res.Accuracy, res.Method)
	}
	// 18.96 is still under the male Average bound.
	if res.Category.Name != "Average" {
		t.Fatalf("category = %q", res.Category.Name)
	}
	if res.Recommendations[0] != formulaRecommendations[0] || len(res.Recommendations) != 6 {
		t.Fatalf("recommendations = %v", res.Recommendations)
	}
}

func TestComputeDirect(t *testing.T) {
	bf := 20.0
	res, err := Compute(80, 180, person.Male, &bf, MethodJames)
	if err != nil {
		t.Fatal(err)
	}
	if res.Method != MethodDirect || res.Accuracy != AccuracyHigh {
		t.Fatalf("method = %q accuracy = %q", res.Method, res.Accuracy)
	}
	if res.LeanMassKg != 64 || res.FatMassKg != 16 || res.LeanPercent != 80 {
		t.Fatalf("unexpected masses %+v", res)
	}
	if res.Category.Name != "Above Average" {
		t.Fatalf("category = %q", res.Category.Name)
	}
	if res.Recommendations[0] != "Most accurate method available" {
		t.Fatalf("recommendations = %v", res.Recommendations)
	}

	zero := 0.0
	res, err = Compute(80, 180, person.Male, &zero, MethodHume)
	if err != nil || res.Method != MethodHume {
		t.Fatalf("zero body fat should fall back to formula: %v %v", res.Method, err)
	}

	full := 100.0
	if _, err := Compute(80, 180, person.Male, &full, MethodBoer); !calcerr.IsKind(err, calcerr.KindDomain) {
		t.Fatalf("100%% body fat: %v", err)
	}
}

func TestComputeDirectNeedsBodyFat(t *testing.T) {
	if _, err := Compute(80, 180, person.Male, nil, MethodDirect); !calcerr.IsKind(err, calcerr.KindMissingInput) {
		t.Fatalf("nil body fat: %v", err)
	}
	zero := 0.0
	if _, err := Compute(80, 180, person.Male, &zero, MethodDirect); !calcerr.IsKind(err, calcerr.KindMissingInput) {
		t.Fatalf("zero body fat: %v", err)
	}
}

func TestComputeDomain(t *testing.T) {
	if _, err := Compute(200, 150, person.Female, nil, MethodJames); !calcerr.IsKind(err, calcerr.KindDomain) {
		t.Fatalf("James with negative lean mass: %v", err)
	}
}

func TestClassifyFFMI(t *testing.T) {
	cases := []struct {
		ffmi float64
		sex  person.Sex
		want string
	}{
		{16.9, person.Male, "Below Average"},
		{17, person.Male, "Average"},
		{21.9, person.Male, "Above Average"},
		{24, person.Male, "Excellent"},
		{25, person.Male, "Exceptional"},
		{13.9, person.Female, "Below Average"},
		{14, person.Female, "Average"},
		{17, person.Female, "Above Average"},
		{19.5, person.Female, "Excellent"},
		{20, person.Female, "Exceptional"},
	}
	for _, c := range cases {
		if got := ClassifyFFMI(c.ffmi, c.sex).Name; got != c.want {
			t.Errorf("ClassifyFFMI(%v, %s) = %q, want %q", c.ffmi, c.sex, got, c.want)
		}
	}
}

func TestParseMethod(t *testing.T) {
	if m, err := ParseMethod(""); err != nil || m != MethodBoer {
		t.Fatalf("default method = %q, %v", m, err)
	}
	if _, err := ParseMethod("direct"); !calcerr.IsKind(err, calcerr.KindInvalidEnum) {
		t.Fatalf("direct is not selectable: %v", err)
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	body := `{"gender":"female","weight":143.3,"weight_unit":"lbs","height":165,"method":"hume"}`
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/calc/leanmass", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Method != MethodHume || res.Gender != person.Female {
		t.Fatalf("unexpected result %+v", res)
	}

	rec = httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/calc/leanmass", strings.NewReader(`{"gender":"male","weight":80,"height":180,"method":"katch"}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown method status = %d", rec.Code)
	}
}
