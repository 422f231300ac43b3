package recommend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/person"
)

func TestMaxDrinks(t *testing.T) {
	cases := []struct {
		lbs   float64
		sex   person.Sex
		hours float64
		want  int
		atMax float64
		next  float64
	}{
		{180, person.Male, 2, 4, 0.0639, 0.0874},
		{180, person.Male, 0, 3, 0.0704, 0.0939},
		{120, person.Female, 0, 2, 0.0779, 0.1168},
	}
	for _, c := range cases {
		res, err := MaxDrinks(c.lbs, c.sex, 1.5, 40, c.hours, 0)
		if err != nil {
			t.Fatal(err)
		}
		if res.MaxDrinks != c.want || res.BACAtMax != c.atMax || res.BACNext != c.next {
			t.Errorf("MaxDrinks(%v, %s, %vh) = %+v", c.lbs, c.sex, c.hours, res)
		}
		if res.Limit != 0.08 {
			t.Errorf("default limit = %v", res.Limit)
		}
	}
}

func TestMaxDrinksZeroLimit(t *testing.T) {
	res, err := MaxDrinks(120, person.Female, 1.5, 40, 0, 0.02)
	if err != nil {
		t.Fatal(err)
	}
	if res.MaxDrinks != 0 || !strings.Contains(res.Notes, "Even one drink") {
		t.Fatalf("unexpected %+v", res)
	}
}

func TestMaxDrinksValidation(t *testing.T) {
	if _, err := MaxDrinks(0, person.Male, 1.5, 40, 0, 0); !calcerr.IsKind(err, calcerr.KindMissingInput) {
		t.Fatalf("weight: %v", err)
	}
	if _, err := MaxDrinks(180, person.Male, 1.5, 140, 0, 0); !calcerr.IsKind(err, calcerr.KindDomain) {
		t.Fatalf("abv: %v", err)
	}
	if _, err := MaxDrinks(180, person.Male, 1.5, 40, -1, 0); !calcerr.IsKind(err, calcerr.KindDomain) {
		t.Fatalf("hours: %v", err)
	}
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	body := `{"weight":81.65,"weight_unit":"kg","gender":"male","hours_elapsed":2}`
	(&Handler{}).Drinks(rec, httptest.NewRequest(http.MethodPost, "/api/premium/bac/max-drinks", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var res DrinksResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.MaxDrinks != 4 {
		t.Fatalf("max drinks = %d", res.MaxDrinks)
	}

	rec = httptest.NewRecorder()
	body = `{"weight":180,"gender":"male","drink_size_oz":12,"alcohol_content":0}`
	(&Handler{}).Drinks(rec, httptest.NewRequest(http.MethodPost, "/api/premium/bac/max-drinks", strings.NewReader(body)))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("explicit zero abv status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	(&Handler{}).Drinks(rec, httptest.NewRequest(http.MethodPost, "/api/premium/bac/max-drinks", strings.NewReader(`{"weight":180}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing gender status = %d", rec.Code)
	}
}
