package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Vitals/internal/config"
	"Vitals/internal/repo"
	"github.com/gorilla/mux"
)

type nopRepo struct{}

func (nopRepo) CreateUser(context.Context, string, string, string) (int, error) { return 1, nil }
func (nopRepo) GetByLogin(context.Context, string) (int, string, error) {
	return 0, "", repo.ErrNotFound
}
func (nopRepo) GetProfile(context.Context, int) (repo.HealthProfile, error) {
	return repo.HealthProfile{}, repo.ErrNotFound
}
func (nopRepo) SaveProfile(context.Context, repo.HealthProfile) error { return nil }
func (nopRepo) SaveHistory(context.Context, repo.HistoryEntry) error  { return nil }
func (nopRepo) ListHistory(context.Context, int, int) ([]repo.HistoryEntry, error) {
	return nil, nil
}

func router(store repo.Repository) http.Handler {
	r := mux.NewRouter()
	HandleList(r, config.Config{RateLimit: 1000, RateBurst: 1000, TokenKey: "k"}, store)
	return CORS(r)
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestCalculatorRoutes(t *testing.T) {
	h := router(nil)
	cases := []struct {
		path, body string
	}{
		{"/api/calc/bmi", `{"weight":70,"height":175}`},
		{"/api/calc/bac", `{"weight":180,"gender":"male","drinks":4,"hours_elapsed":2}`},
		{"/api/calc/bodyfat", `{"gender":"male","age":30,"waist":90,"neck":38,"height":178}`},
		{"/api/calc/calorie", `{"gender":"male","age":30,"weight":70,"height":175,"activity_level":"sedentary"}`},
		{"/api/calc/leanmass", `{"gender":"male","weight":80,"height":180}`},
		{"/api/calc/bodytype", `{"gender":"male","weight":80,"height":180}`},
		{"/api/calc/healthyweight", `{"height":170,"age":55,"activity_level":"moderate","body_frame":"medium"}`},
		{"/api/premium/calorie/batch", `{"items":[{"gender":"male","age":30,"weight":70,"height":175,"activity_level":"sedentary"}]}`},
		{"/api/premium/bac/max-drinks", `{"weight":180,"gender":"male"}`},
		{"/api/premium/assessment", `{"gender":"male","age":30,"weight_kg":80,"height_cm":180}`},
	}
	for _, c := range cases {
		if rec := do(h, http.MethodPost, c.path, c.body); rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d body=%s", c.path, rec.Code, rec.Body.String())
		}
	}
	if rec := do(h, http.MethodPost, "/api/calc/bmi/pdf", `{"weight":70,"height":175}`); rec.Header().Get("Content-Type") != "application/pdf" {
		t.Errorf("pdf route content type = %q", rec.Header().Get("Content-Type"))
	}
	if rec := do(h, http.MethodGet, "/api/calc/calorie/options", ""); rec.Code != http.StatusOK {
		t.Errorf("options status = %d", rec.Code)
	}
	if rec := do(h, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	rec := do(router(nil), http.MethodOptions, "/api/calc/bmi", "")
	if rec.Code != http.StatusNoContent || rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("status = %d headers = %v", rec.Code, rec.Header())
	}
}

func TestAccountRoutes(t *testing.T) {
	if rec := do(router(nil), http.MethodPost, "/api/login", `{}`); rec.Code != http.StatusNotFound {
		t.Fatalf("login without database: status = %d", rec.Code)
	}
	h := router(nopRepo{})
	if rec := do(h, http.MethodPost, "/api/register", `{"login":"a","email":"a@b.c","password":"secret1"}`); rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}
	if rec := do(h, http.MethodGet, "/api/user/profile", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("profile without session: status = %d", rec.Code)
	}
}
