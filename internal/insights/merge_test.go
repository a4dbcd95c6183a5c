package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fintwin-tui/internal/api"
)

func TestMerge_ConcatenatesBaseFirstOrderPreserved(t *testing.T) {
	merged := Merge(
		[]string{"b1", "b2"},
		[]string{"s1", "s2"},
		NoRisks,
	)
	assert.Equal(t, []string{"b1", "b2", "s1", "s2"}, merged)
}

func TestMerge_KeepsDuplicates(t *testing.T) {
	merged := Merge([]string{"same"}, []string{"same"}, NoRisks)
	assert.Equal(t, []string{"same", "same"}, merged)
}

func TestMerge_EmptyListsYieldExactlyOnePlaceholder(t *testing.T) {
	merged := Merge(nil, []string{}, NoRisks)
	assert.Equal(t, []string{NoRisks}, merged)
}

func TestMerge_OneSidedInputNeedsNoPlaceholder(t *testing.T) {
	merged := Merge(nil, []string{"only scenario"}, NoRisks)
	assert.Equal(t, []string{"only scenario"}, merged)
}

func TestRisksAndInsights_UseBaseAndScenarioRunsOnly(t *testing.T) {
	res := &api.ProjectionResult{
		Base:     api.Run{Risks: []string{"base risk"}, Insights: []string{"base insight"}},
		Best:     api.Run{Risks: []string{"best risk"}, Insights: []string{"best insight"}},
		Worst:    api.Run{Risks: []string{"worst risk"}, Insights: []string{"worst insight"}},
		Scenario: api.Run{Risks: []string{"scenario risk"}, Insights: []string{"scenario insight"}},
	}

	assert.Equal(t, []string{"base risk", "scenario risk"}, Risks(res))
	assert.Equal(t, []string{"base insight", "scenario insight"}, Insights(res))
}
