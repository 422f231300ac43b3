package batch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/calorie"
)

func plan(goal string) calorie.Input {
	return calorie.Input{Gender: "male", Age: 30, Weight: 70, Height: 175, Units: "metric", ActivityLevel: "sedentary", Goal: goal}
}

func TestCalculatePlans(t *testing.T) {
	res, err := CalculatePlans(PlanBatchInput{Items: []calorie.Input{plan("maintain"), plan("lose_slow")}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 2 || res.Results[0].Summary.BMR != 1649 {
		t.Fatalf("unexpected batch %+v", res)
	}
}

func TestCalculatePlansAllOrNothing(t *testing.T) {
	_, err := CalculatePlans(PlanBatchInput{Items: []calorie.Input{plan("maintain"), plan("bulk_forever")}})
	if !calcerr.IsKind(err, calcerr.KindInvalidEnum) {
		t.Fatalf("expected invalid enum, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "item 1: ") {
		t.Fatalf("error should name the item: %v", err)
	}
	if _, err := CalculatePlans(PlanBatchInput{}); !calcerr.IsKind(err, calcerr.KindMissingInput) {
		t.Fatalf("empty batch: %v", err)
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	body := `{"items":[{"gender":"female","age":40,"weight":60,"height":165,"activity_level":"very_active","goal":"maintain"}]}`
	h.Plans(rec, httptest.NewRequest(http.MethodPost, "/api/premium/calorie/batch", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	rec = httptest.NewRecorder()
	h.Plans(rec, httptest.NewRequest(http.MethodPost, "/api/premium/calorie/batch", strings.NewReader(`{"items":`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json status = %d", rec.Code)
	}
}
