package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(calculations.WithLabelValues("bac"))
	IncCalculation("bac")
	if got := testutil.ToFloat64(calculations.WithLabelValues("bac")); got != before+1 {
		t.Fatalf("calculations = %v, want %v", got, before+1)
	}

	IncError("bac", "")
	if got := testutil.ToFloat64(calculationErrors.WithLabelValues("bac", "internal")); got < 1 {
		t.Fatalf("errors with empty kind should be counted as internal, got %v", got)
	}

	IncReport("bodyfat")
	if got := testutil.ToFloat64(reports.WithLabelValues("bodyfat")); got < 1 {
		t.Fatalf("reports = %v", got)
	}
}
