package report

import (
	"encoding/json"
	"net/http"
	"strings"

	"Vitals/internal/metrics"
)

type Input struct {
	Name     string `json:"name"`
	Subtitle string `json:"subtitle"`
	Title    string `json:"title"`
	Notes    string `json:"notes"`
}

type Handler struct{}

// Generate renders a free-form notes report.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Health Report"
	}

	doc := New(input.Title, input.Subtitle)
	if input.Name != "" {
		doc.Add("Personal Information", "Name: "+input.Name)
	}
	doc.Add("Notes", strings.Split(input.Notes, "\n")...)

	metrics.IncReport("notes")
	Write(w, "Health", doc)
}
