package profile

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"Vitals/internal/auth"
	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/calorie"
	"Vitals/internal/calc/healthyweight"
	"Vitals/internal/calc/person"
	"Vitals/internal/calc/premium/assessment"
	"Vitals/internal/metrics"
	"Vitals/internal/repo"
	"github.com/google/uuid"
)

const (
	defaultHistory = 20
	maxHistory     = 100
	minBirthYear   = 1900
)

type ProfileHandler struct {
	Repo repo.Repository
	// Now is overridden in tests.
	Now func() time.Time
}

type AssessResponse struct {
	EntryID uuid.UUID         `json:"entry_id"`
	Result  assessment.Result `json:"result"`
}

func (h *ProfileHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
	return id, ok
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	prof, err := h.Repo.GetProfile(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("GetProfile error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prof)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	var req repo.HealthProfile
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate(&req); err != nil {
		http.Error(w, calcerr.Message(err), calcerr.Status(err))
		return
	}
	req.UserID = id
	if err := h.Repo.SaveProfile(r.Context(), req); err != nil {
		log.Printf("SaveProfile error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validate normalises enum fields in place. Optional enums may be empty.
func (h *ProfileHandler) validate(p *repo.HealthProfile) error {
	sex, err := person.ParseSex(p.Gender)
	if err != nil {
		return err
	}
	p.Gender = string(sex)
	if p.BirthYear == 0 {
		return calcerr.Missing("birth_year")
	}
	if p.BirthYear < minBirthYear || p.BirthYear >= h.now().Year() {
		return calcerr.Domain("birth_year", "%d is out of range", p.BirthYear)
	}
	if err := calcerr.Positive("height_cm", p.HeightCm); err != nil {
		return err
	}
	if err := calcerr.Positive("weight_kg", p.WeightKg); err != nil {
		return err
	}
	if p.ActivityLevel != "" {
		if _, err := calorie.LookupActivity(p.ActivityLevel); err != nil {
			return err
		}
	}
	if p.Goal != "" {
		if _, err := calorie.LookupGoal(p.Goal); err != nil {
			return err
		}
	}
	if p.BodyFrame != "" {
		f, err := healthyweight.ParseFrame(p.BodyFrame)
		if err != nil {
			return err
		}
		p.BodyFrame = string(f)
	}
	for _, m := range []struct {
		name string
		v    *float64
	}{{"body_fat", p.BodyFat}, {"neck", p.Neck}, {"waist", p.Waist}, {"hip", p.Hip}, {"wrist", p.Wrist}, {"shoulder", p.Shoulder}} {
		if m.v != nil && *m.v <= 0 {
			return calcerr.Domain(m.name, "must be positive when given")
		}
	}
	return nil
}

func (h *ProfileHandler) toAssessment(p repo.HealthProfile) assessment.Profile {
	return assessment.Profile{
		Gender:        p.Gender,
		Age:           h.now().Year() - p.BirthYear,
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		ActivityLevel: p.ActivityLevel,
		Goal:          p.Goal,
		BodyFrame:     p.BodyFrame,
		BodyFat:       p.BodyFat,
		Neck:          p.Neck,
		Waist:         p.Waist,
		Hip:           p.Hip,
		Wrist:         p.Wrist,
		Shoulder:      p.Shoulder,
	}
}

// Assess runs the full assessment on the stored profile and records it in history.
func (h *ProfileHandler) Assess(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	prof, err := h.Repo.GetProfile(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("GetProfile error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	res, err := assessment.Assess(h.toAssessment(prof))
	if err != nil {
		metrics.IncError("profile_assessment", string(calcerr.KindOf(err)))
		http.Error(w, calcerr.Message(err), calcerr.Status(err))
		return
	}
	metrics.IncCalculation("profile_assessment")

	payload, err := json.Marshal(res)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	entry := repo.HistoryEntry{
		ID:              uuid.New(),
		UserID:          id,
		Kind:            "assessment",
		Summary:         res.Summary(),
		Recommendations: res.Recommendations(),
		Payload:         payload,
		CreatedAt:       h.now().UTC(),
	}
	if err := h.Repo.SaveHistory(r.Context(), entry); err != nil {
		log.Printf("SaveHistory error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(AssessResponse{EntryID: entry.ID, Result: res})
}

func (h *ProfileHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	limit := defaultHistory
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = min(n, maxHistory)
	}
	entries, err := h.Repo.ListHistory(r.Context(), id, limit)
	if err != nil {
		log.Printf("ListHistory error: %v", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}
