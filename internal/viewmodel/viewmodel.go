// Package viewmodel derives the transient display model from a validated
// projection result. Rebuilt wholesale on every successful response and
// never persisted.
package viewmodel

import (
	"fmt"

	"fintwin-tui/internal/api"
	"fintwin-tui/internal/insights"
	"fintwin-tui/internal/money"
)

// GoalNotAchieved is the fixed sentinel shown when the base run never
// reaches the goal within the projection window.
const GoalNotAchieved = "Not achieved within 10 years"

// Impact is the what-if delta against the base run, pre-formatted with an
// explicit sign. Positive covers the delta-zero case.
type Impact struct {
	Text     string
	Positive bool
}

// ViewModel holds everything the results pane shows, already formatted.
type ViewModel struct {
	FinalNetWorth string
	GoalTime      string
	Impact        Impact
	Risks         []string
	Insights      []string
}

// Build derives the view model for one result using the shared currency
// formatter.
func Build(res *api.ProjectionResult, f *money.Formatter) ViewModel {
	text, positive := f.SignedAmount(res.Scenario.FinalNetWorth - res.Base.FinalNetWorth)

	return ViewModel{
		FinalNetWorth: f.Amount(res.Base.FinalNetWorth),
		GoalTime:      goalTime(res.Base.GoalMonth),
		Impact:        Impact{Text: text, Positive: positive},
		Risks:         insights.Risks(res),
		Insights:      insights.Insights(res),
	}
}

func goalTime(month *int) string {
	if month == nil {
		return GoalNotAchieved
	}
	return fmt.Sprintf("Month %d (%.1f years)", *month, float64(*month)/12)
}
