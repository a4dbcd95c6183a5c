package api

import "fmt"

// Raw response shapes. Required fields are pointers so a missing key is
// distinguishable from a zero value; goal_1_month stays a pointer in the
// validated Run because null legitimately means "not achieved".

type rawResponse struct {
	Base     *rawRun `json:"base"`
	Best     *rawRun `json:"best"`
	Worst    *rawRun `json:"worst"`
	Scenario *rawRun `json:"scenario"`
}

type rawRun struct {
	FinalNetWorth *float64  `json:"final_net_worth"`
	History       *[]float64 `json:"history"`
	Risks         *[]string  `json:"risks"`
	Insights      *[]string  `json:"insights"`
	GoalMonth     *int       `json:"goal_1_month"`
}

// normalize validates a decoded response body and reshapes it into a
// ProjectionResult. Any missing run or field, or any history whose length
// is not HorizonMonths, is a SchemaError.
func normalize(raw rawResponse) (*ProjectionResult, error) {
	runs := []struct {
		name string
		raw  *rawRun
	}{
		{"base", raw.Base},
		{"best", raw.Best},
		{"worst", raw.Worst},
		{"scenario", raw.Scenario},
	}

	var out ProjectionResult
	dst := []*Run{&out.Base, &out.Best, &out.Worst, &out.Scenario}

	for i, r := range runs {
		if r.raw == nil {
			return nil, &SchemaError{Run: r.name, Reason: "is missing"}
		}
		run, err := normalizeRun(r.name, r.raw)
		if err != nil {
			return nil, err
		}
		*dst[i] = run
	}
	return &out, nil
}

func normalizeRun(name string, raw *rawRun) (Run, error) {
	if raw.FinalNetWorth == nil {
		return Run{}, &SchemaError{Run: name, Field: "final_net_worth", Reason: "is missing"}
	}
	if raw.History == nil {
		return Run{}, &SchemaError{Run: name, Field: "history", Reason: "is missing"}
	}
	if got := len(*raw.History); got != HorizonMonths {
		return Run{}, &SchemaError{
			Run:    name,
			Field:  "history",
			Reason: fmt.Sprintf("has %d entries, want %d", got, HorizonMonths),
		}
	}
	if raw.Risks == nil {
		return Run{}, &SchemaError{Run: name, Field: "risks", Reason: "is missing"}
	}
	if raw.Insights == nil {
		return Run{}, &SchemaError{Run: name, Field: "insights", Reason: "is missing"}
	}

	return Run{
		FinalNetWorth: *raw.FinalNetWorth,
		History:       *raw.History,
		Risks:         *raw.Risks,
		Insights:      *raw.Insights,
		GoalMonth:     raw.GoalMonth,
	}, nil
}
