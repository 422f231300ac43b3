package assessment

import (
	"encoding/json"
	"net/http"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/report"
	"Vitals/internal/metrics"
)

const name = "assessment"

type Handler struct{}

func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	res, ok := h.assess(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	res, ok := h.assess(w, r)
	if !ok {
		return
	}
	metrics.IncReport(name)
	report.Write(w, "Health Assessment", res.Document())
}

func (h *Handler) assess(w http.ResponseWriter, r *http.Request) (Result, bool) {
	var input Profile
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return Result{}, false
	}
	res, err := Assess(input)
	if err != nil {
		metrics.IncError(name, string(calcerr.KindOf(err)))
		http.Error(w, calcerr.Message(err), calcerr.Status(err))
		return Result{}, false
	}
	metrics.IncCalculation(name)
	return res, true
}
