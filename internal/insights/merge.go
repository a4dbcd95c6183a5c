// Package insights merges the per-run annotation lists into the unified
// lists the results pane displays.
package insights

import "fintwin-tui/internal/api"

// Placeholders shown instead of an empty list. A display rule only; the
// underlying result keeps its empty slices.
const (
	NoRisks    = "No risks detected for this plan"
	NoInsights = "Run a simulation to see insights"
)

// Merge concatenates base-run entries followed by what-if-run entries,
// order preserved, no deduplication. An empty merge yields exactly one
// placeholder entry.
func Merge(base, scenario []string, placeholder string) []string {
	merged := make([]string, 0, len(base)+len(scenario))
	merged = append(merged, base...)
	merged = append(merged, scenario...)
	if len(merged) == 0 {
		return []string{placeholder}
	}
	return merged
}

// Risks returns the merged risk list for a result.
func Risks(res *api.ProjectionResult) []string {
	return Merge(res.Base.Risks, res.Scenario.Risks, NoRisks)
}

// Insights returns the merged insight list for a result.
func Insights(res *api.ProjectionResult) []string {
	return Merge(res.Base.Insights, res.Scenario.Insights, NoInsights)
}
