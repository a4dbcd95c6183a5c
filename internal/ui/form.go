package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"fintwin-tui/internal/api"
	"fintwin-tui/internal/payload"
)

// Focus order: the eight numeric inputs, the two pickers, the submit row.
const numInputs = 8

const (
	focusRisk = numInputs + iota
	focusScenario
	focusSubmit
)

var inputDefs = []struct {
	field   string // request key, for matching validation errors
	label   string
	initial string
}{
	{"monthly_income", "Monthly income", "5000"},
	{"monthly_expenses", "Monthly expenses", "3000"},
	{"current_savings", "Current savings", "10000"},
	{"current_investments", "Current investments", "20000"},
	{"goal_cost", "Goal cost", "50000"},
	{"investment_growth_rate", "Growth rate (%/yr)", "7"},
	{"inflation_rate", "Inflation rate (%/yr)", "3"},
	{"monthly_savings_rate", "Savings rate (%)", "30"},
}

func newInputs() []textinput.Model {
	inputs := make([]textinput.Model, numInputs)
	for i, def := range inputDefs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 14
		ti.Width = 14
		ti.Placeholder = def.initial
		ti.SetValue(def.initial)
		inputs[i] = ti
	}
	inputs[0].Focus()
	return inputs
}

// rawInput snapshots the form exactly as entered; the payload builder owns
// all parsing and unit conversion.
func (m Model) rawInput() payload.RawInput {
	return payload.RawInput{
		MonthlyIncome:        m.inputs[0].Value(),
		MonthlyExpenses:      m.inputs[1].Value(),
		CurrentSavings:       m.inputs[2].Value(),
		CurrentInvestments:   m.inputs[3].Value(),
		GoalCost:             m.inputs[4].Value(),
		InvestmentGrowthRate: m.inputs[5].Value(),
		InflationRate:        m.inputs[6].Value(),
		MonthlySavingsRate:   m.inputs[7].Value(),
		RiskTolerance:        api.RiskTolerances[m.riskIdx],
		Scenario:             api.Scenarios[m.scenarioIdx],
	}
}

func inputIndexForField(field string) int {
	for i, def := range inputDefs {
		if def.field == field {
			return i
		}
	}
	return -1
}

func cycle(idx, delta, n int) int {
	idx = (idx + delta) % n
	if idx < 0 {
		idx += n
	}
	return idx
}
