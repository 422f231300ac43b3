package report

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

const disclaimer = "This report is an estimate for educational purposes and is not a medical diagnosis. " +
	"Consult a qualified healthcare provider before making health decisions."

type Section struct {
	Heading string   `json:"heading"`
	Lines   []string `json:"lines"`
}

// Document is the layout-independent content of a calculator report.
type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	Date       time.Time `json:"date"`
	Sections   []Section `json:"sections"`
	Disclaimer string    `json:"disclaimer"`
}

func New(title, subtitle string) Document {
	return Document{
		ID:         uuid.NewString(),
		Title:      title,
		Subtitle:   subtitle,
		Date:       time.Now(),
		Disclaimer: disclaimer,
	}
}

// Add appends a section; empty lines are dropped and an empty section is skipped.
func (d *Document) Add(heading string, lines ...string) {
	kept := make([]string, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return
	}
	d.Sections = append(d.Sections, Section{Heading: heading, Lines: kept})
}

// Bullets prefixes each item with a dash.
func Bullets(items []string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = "- " + it
	}
	return out
}

func Render(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(doc.Title, false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	if doc.Subtitle != "" {
		pdf.CellFormat(0, 7, tr(doc.Subtitle), "", 1, "C", false, 0, "")
	}
	pdf.CellFormat(0, 7, fmt.Sprintf("Date: %s", doc.Date.Format("2006-01-02")), "", 1, "C", false, 0, "")
	pdf.SetDrawColor(200, 200, 200)
	y := pdf.GetY() + 4
	pdf.Line(20, y, pageW-20, y)
	pdf.Ln(10)

	for _, s := range doc.Sections {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(51, 51, 51)
		pdf.CellFormat(0, 8, tr(s.Heading), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(80, 80, 80)
		for _, line := range s.Lines {
			pdf.SetX(25)
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
		}
		pdf.Ln(4)
	}

	if doc.Disclaimer != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(120, 120, 120)
		pdf.MultiCell(0, 5, tr(doc.Disclaimer), "", "L", false)
	}
	if doc.ID != "" {
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 5, "Report ID: "+doc.ID, "", 1, "R", false, 0, "")
	}
	return pdf.Output(w)
}

// Filename builds the attachment name, e.g. "BAC-Report-2024-05-01.pdf".
func Filename(name string, date time.Time) string {
	slug := strings.Join(strings.Fields(name), "-")
	if slug == "" {
		slug = "Health"
	}
	return fmt.Sprintf("%s-Report-%s.pdf", slug, date.Format("2006-01-02"))
}

// Write streams doc as a PDF attachment.
func Write(w http.ResponseWriter, name string, doc Document) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", Filename(name, doc.Date)))
	if err := Render(w, doc); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// Line formats "label: value unit" with one decimal.
func Line(label string, v float64, unit string) string {
	s := fmt.Sprintf("%s: %.1f", label, v)
	if unit != "" {
		s += " " + unit
	}
	return s
}
