package report

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestAddSkipsEmpty(t *testing.T) {
	doc := New("T", "")
	doc.Add("Empty", "", "  ")
	doc.Add("Results", "BAC: 0.0639", "")
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	if got := doc.Sections[0].Lines; len(got) != 1 || got[0] != "BAC: 0.0639" {
		t.Fatalf("unexpected lines %v", got)
	}
	if doc.ID == "" {
		t.Fatal("expected a report id")
	}
}

func TestRenderProducesPDF(t *testing.T) {
	doc := New("Body Fat Analysis Report", "US Navy Method")
	doc.Add("Results", "Body fat: 13.4%", "Category: Athletes")
	doc.Add("Recommendations", Bullets([]string{"Track monthly", "Stay hydrated"})...)

	var buf bytes.Buffer
	if err := Render(&buf, doc); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestFilename(t *testing.T) {
	d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if got := Filename("Lean Body Mass", d); got != "Lean-Body-Mass-Report-2024-05-01.pdf" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename("", d); got != "Health-Report-2024-05-01.pdf" {
		t.Errorf("Filename(empty) = %q", got)
	}
}

func TestGenerateHandler(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/api/report/pdf", strings.NewReader(`{"name":"Alex","notes":"line one\nline two"}`))
	rec := httptest.NewRecorder()
	h.Generate(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type = %q", ct)
	}

	rec = httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/report/pdf", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad payload status = %d", rec.Code)
	}
}
