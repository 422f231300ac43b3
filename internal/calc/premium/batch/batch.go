package batch

import (
	"fmt"

	"Vitals/internal/calc/calcerr"
	"Vitals/internal/calc/calorie"
)

// MaxItems bounds one batch request.
const MaxItems = 500

type PlanBatchInput struct {
	Items []calorie.Input `json:"items"`
}

type PlanBatchResult struct {
	Count   int              `json:"count"`
	Results []calorie.Result `json:"results"`
}

// CalculatePlans is all or nothing: the first failing item aborts the batch.
func CalculatePlans(in PlanBatchInput) (PlanBatchResult, error) {
	if len(in.Items) == 0 {
		return PlanBatchResult{}, calcerr.Missing("items")
	}
	if len(in.Items) > MaxItems {
		return PlanBatchResult{}, calcerr.Domain("items", "at most %d plans per batch", MaxItems)
	}
	out := PlanBatchResult{Results: make([]calorie.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := calorie.Calculate(item)
		if err != nil {
			return PlanBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	return out, nil
}
