package importer

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/premium/batch"
	"Vitals/internal/metrics"
)

const (
	name          = "calorie_import"
	maxUploadSize = 10 << 20
)

type Handler struct{}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := ParseWorkbook(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	metrics.IncCalculation(name)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input batch.PlanBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, calcerr.Missing("items").Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := ExportPlans(&buf, input.Items); err != nil {
		if calcerr.KindOf(err) == "" {
			log.Printf("xlsx export: %v", err)
		}
		http.Error(w, calcerr.Message(err), calcerr.Status(err))
		return
	}
	metrics.IncReport("calorie_export")
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="calorie-plans.xlsx"`)
	w.Write(buf.Bytes())
}
