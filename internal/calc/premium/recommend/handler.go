package recommend

import (
	"encoding/json"
	"net/http"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/metrics"
)

const name = "bac_max_drinks"

type Handler struct{}

func (h *Handler) Drinks(w http.ResponseWriter, r *http.Request) {
	var input DrinksInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Drinks(input)
	if err != nil {
		metrics.IncError(name, string(calcerr.KindOf(err)))
		http.Error(w, calcerr.Message(err), calcerr.Status(err))
		return
	}
	metrics.IncCalculation(name)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
