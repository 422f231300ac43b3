package bodyfat

import (
	"encoding/json"
	"net/http"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/report"
	"Vitals/internal/metrics"
)

const name = "bodyfat"

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	res, ok := h.calculate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) PDF(w http.ResponseWriter, r *http.Request) {
	res, ok := h.calculate(w, r)
	if !ok {
		return
	}
	metrics.IncReport(name)
	report.Write(w, "Body Fat", res.Document())
}

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) (Result, bool) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return Result{}, false
	}
	res, err := Calculate(input)
	if err != nil {
		metrics.IncError(name, string(calcerr.KindOf(err)))
		http.Error(w, calcerr.Message(err), calcerr.Status(err))
		return Result{}, false
	}
	metrics.IncCalculation(name)
	return res, true
}
