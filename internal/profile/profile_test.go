package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Vitals/internal/auth"
	"Vitals/internal/repo"
)

type fakeRepo struct {
	profiles map[int]repo.HealthProfile
	history  []repo.HistoryEntry
	limit    int
	fail     error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{profiles: map[int]repo.HealthProfile{}} }

func (f *fakeRepo) CreateUser(context.Context, string, string, string) (int, error) { return 0, nil }
func (f *fakeRepo) GetByLogin(context.Context, string) (int, string, error) {
	return 0, "", repo.ErrNotFound
}

func (f *fakeRepo) GetProfile(_ context.Context, id int) (repo.HealthProfile, error) {
	if f.fail != nil {
		return repo.HealthProfile{}, f.fail
	}
	p, ok := f.profiles[id]
	if !ok {
		return repo.HealthProfile{}, repo.ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) SaveProfile(_ context.Context, p repo.HealthProfile) error {
	f.profiles[p.UserID] = p
	return nil
}

func (f *fakeRepo) SaveHistory(_ context.Context, e repo.HistoryEntry) error {
	f.history = append(f.history, e)
	return nil
}

func (f *fakeRepo) ListHistory(_ context.Context, id, limit int) ([]repo.HistoryEntry, error) {
	f.limit = limit
	var out []repo.HistoryEntry
	for i := len(f.history) - 1; i >= 0 && len(out) < limit; i-- {
		if f.history[i].UserID == id {
			out = append(out, f.history[i])
		}
	}
	return out, nil
}

var fixedNow = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

func request(method, target, body string, userID int) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != 0 {
		req = req.WithContext(auth.WithUser(req.Context(), userID, "anna"))
	}
	return req
}

func TestUpdateAndGetProfile(t *testing.T) {
	h := &ProfileHandler{Repo: newFakeRepo(), Now: fixedNow}

	body := `{"gender":"F","birth_year":1990,"height_cm":165,"weight_kg":60,"activity_level":"lightly_active","body_frame":"Small","hip":96}`
	rec := httptest.NewRecorder()
	h.UpdateProfile(rec, request(http.MethodPut, "/api/user/profile", body, 3))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("update status = %d body=%s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.GetProfile(rec, request(http.MethodGet, "/api/user/profile", "", 3))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var p repo.HealthProfile
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.Gender != "female" || p.BodyFrame != "small" || p.Hip == nil || *p.Hip != 96 {
		t.Fatalf("stored profile = %+v", p)
	}
}

func TestUpdateProfileValidation(t *testing.T) {
	h := &ProfileHandler{Repo: newFakeRepo(), Now: fixedNow}
	cases := map[string]int{
		`{"birth_year":1990,"height_cm":165,"weight_kg":60}`:                                http.StatusBadRequest,
		`{"gender":"male","height_cm":165,"weight_kg":60}`:                                  http.StatusBadRequest,
		`{"gender":"male","birth_year":1850,"height_cm":165,"weight_kg":60}`:                http.StatusUnprocessableEntity,
		`{"gender":"male","birth_year":1990,"height_cm":165,"weight_kg":60,"goal":"shred"}`: http.StatusBadRequest,
		`{"gender":"male","birth_year":1990,"height_cm":165,"weight_kg":60,"neck":-3}`:      http.StatusUnprocessableEntity,
		`{"gender":`: http.StatusBadRequest,
	}
	for body, want := range cases {
		rec := httptest.NewRecorder()
		h.UpdateProfile(rec, request(http.MethodPut, "/api/user/profile", body, 3))
		if rec.Code != want {
			t.Errorf("%s: status = %d, want %d", body, rec.Code, want)
		}
	}
}

func TestUnauthorized(t *testing.T) {
	h := &ProfileHandler{Repo: newFakeRepo()}
	for _, fn := range []http.HandlerFunc{h.GetProfile, h.UpdateProfile, h.Assess, h.History} {
		rec := httptest.NewRecorder()
		fn(rec, request(http.MethodGet, "/api/user/profile", "", 0))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d", rec.Code)
		}
	}
}

func TestAssessStoresHistory(t *testing.T) {
	r := newFakeRepo()
	h := &ProfileHandler{Repo: r, Now: fixedNow}

	rec := httptest.NewRecorder()
	h.Assess(rec, request(http.MethodPost, "/api/user/profile/assess", "", 5))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("no profile status = %d", rec.Code)
	}

	r.profiles[5] = repo.HealthProfile{UserID: 5, Gender: "male", BirthYear: 1996, HeightCm: 180, WeightKg: 80, ActivityLevel: "sedentary"}
	rec = httptest.NewRecorder()
	h.Assess(rec, request(http.MethodPost, "/api/user/profile/assess", "", 5))
	if rec.Code != http.StatusCreated {
		t.Fatalf("assess status = %d body=%s", rec.Code, rec.Body.String())
	}
	var resp AssessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(r.history) != 1 || r.history[0].ID != resp.EntryID || r.history[0].UserID != 5 {
		t.Fatalf("history = %+v", r.history)
	}
	if resp.Result.Calorie == nil || resp.Result.Calorie.Age != 30 {
		t.Fatalf("age from birth year not applied: %+v", resp.Result.Calorie)
	}
	if len(r.history[0].Summary) == 0 || len(r.history[0].Payload) == 0 {
		t.Fatalf("entry missing summary or payload: %+v", r.history[0])
	}
}

func TestAssessStorageError(t *testing.T) {
	r := newFakeRepo()
	r.fail = errors.New("connection reset")
	h := &ProfileHandler{Repo: r}
	rec := httptest.NewRecorder()
	h.Assess(rec, request(http.MethodPost, "/api/user/profile/assess", "", 5))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHistoryLimit(t *testing.T) {
	r := newFakeRepo()
	h := &ProfileHandler{Repo: r}
	cases := []struct {
		query string
		code  int
		limit int
	}{
		{"", http.StatusOK, defaultHistory},
		{"?limit=5", http.StatusOK, 5},
		{"?limit=1000", http.StatusOK, maxHistory},
		{"?limit=0", http.StatusBadRequest, 0},
		{"?limit=abc", http.StatusBadRequest, 0},
	}
	for _, c := range cases {
		r.limit = 0
		rec := httptest.NewRecorder()
		h.History(rec, request(http.MethodGet, "/api/user/history"+c.query, "", 5))
		if rec.Code != c.code || r.limit != c.limit {
			t.Errorf("%q: status = %d limit = %d", c.query, rec.Code, r.limit)
		}
	}
}
