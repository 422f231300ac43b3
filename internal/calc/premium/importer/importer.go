package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/calorie"
	"Vitals/internal/calc/premium/batch"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Plans"

type Rejected struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Count    int              `json:"count"`
	Results  []calorie.Result `json:"results"`
	Rejected []Rejected       `json:"rejected"`
}

// ParseWorkbook reads the first sheet, skipping the header row. Columns are
// sex, age, weight, height, units, activity, goal. Rows that cannot be parsed
// or calculated are reported with their 1-based sheet row number.
func ParseWorkbook(r io.Reader) (ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ImportResult{}, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return ImportResult{}, err
	}
	if len(rows) < 2 {
		return ImportResult{}, fmt.Errorf("empty sheet")
	}

	out := ImportResult{Results: []calorie.Result{}, Rejected: []Rejected{}}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if blank(row) {
			continue
		}
		input, err := parseRow(row)
		if err == nil {
			var res calorie.Result
			if res, err = calorie.Calculate(input); err == nil {
				out.Results = append(out.Results, res)
				continue
			}
		}
		out.Rejected = append(out.Rejected, Rejected{Row: i + 1, Reason: err.Error()})
	}
	out.Count = len(out.Results)
	return out, nil
}

func parseRow(row []string) (calorie.Input, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	if len(row) < 4 {
		return calorie.Input{}, fmt.Errorf("expected at least %d columns, got %d", 4, len(row))
	}
	age, err := strconv.Atoi(cell(1))
	if err != nil {
		return calorie.Input{}, fmt.Errorf("age: %q is not a whole number", cell(1))
	}
	weight, err := toFloat(cell(2))
	if err != nil {
		return calorie.Input{}, fmt.Errorf("weight: %q is not a number", cell(2))
	}
	height, err := toFloat(cell(3))
	if err != nil {
		return calorie.Input{}, fmt.Errorf("height: %q is not a number", cell(3))
	}
	return calorie.Input{
		Gender:        cell(0),
		Age:           age,
		Weight:        weight,
		Height:        height,
		Units:         cell(4),
		ActivityLevel: cell(5),
		Goal:          cell(6),
	}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var exportHeader = []any{
	"sex", "age", "weight", "height", "units", "activity", "goal",
	"bmr", "tdee", "goal_calories", "difference", "lbs_per_week",
}

// ExportPlans calculates every plan and writes them as one xlsx sheet.
// Inputs are echoed so the file can be edited and imported again.
func ExportPlans(w io.Writer, items []calorie.Input) error {
	if len(items) > batch.MaxItems {
		return calcerr.Domain("items", "at most %d plans per export", batch.MaxItems)
	}
	results := make([]calorie.Result, 0, len(items))
	for i, item := range items {
		res, err := calorie.Calculate(item)
		if err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		results = append(results, res)
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &exportHeader); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return err
	}
	for i, res := range results {
		in := items[i]
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			string(res.Gender), in.Age, in.Weight, in.Height, in.Units, res.Activity.Level, res.Goal.Goal,
			res.Summary.BMR, res.Summary.TDEE, res.Summary.GoalCalories, res.Summary.Difference, res.Summary.PoundsPerWeek,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
