package payload

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintwin-tui/internal/api"
)

func validInput() RawInput {
	return RawInput{
		MonthlyIncome:        "5000",
		MonthlyExpenses:      "3000",
		CurrentSavings:       "10000",
		CurrentInvestments:   "20000",
		GoalCost:             "50000",
		InvestmentGrowthRate: "7",
		InflationRate:        "3",
		MonthlySavingsRate:   "30",
		RiskTolerance:        api.RiskModerate,
		Scenario:             api.ScenarioJobHike,
	}
}

func TestBuild_ConvertsAnnualRatesToMonthlyFractions(t *testing.T) {
	req, err := Build(validInput())
	require.NoError(t, err)

	assert.InDelta(t, 0.07/12, req.InvestmentGrowthRate, 1e-12)
	assert.InDelta(t, 0.0025, req.InflationRate, 1e-12)
}

func TestBuild_PassesAmountsAndSavingsRateThroughUnchanged(t *testing.T) {
	req, err := Build(validInput())
	require.NoError(t, err)

	assert.Equal(t, 5000.0, req.MonthlyIncome)
	assert.Equal(t, 3000.0, req.MonthlyExpenses)
	assert.Equal(t, 10000.0, req.CurrentSavings)
	assert.Equal(t, 20000.0, req.CurrentInvestments)
	assert.Equal(t, 50000.0, req.GoalCost)
	assert.Equal(t, 30.0, req.MonthlySavingsRate, "savings rate must not be converted")
	assert.Equal(t, api.RiskModerate, req.RiskTolerance)
	assert.Equal(t, api.ScenarioJobHike, req.Scenario)
}

func TestBuild_TrimsWhitespace(t *testing.T) {
	in := validInput()
	in.GoalCost = "  50000 "

	req, err := Build(in)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, req.GoalCost)
}

func TestBuild_RejectsNonFiniteNumerics(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"words", "abc"},
		{"trailing garbage", "12x"},
		{"nan", "NaN"},
		{"infinity", "+Inf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.MonthlyExpenses = tc.raw

			_, err := Build(in)
			var verr *api.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "monthly_expenses", verr.Field)
		})
	}
}

func TestBuild_RejectsUnknownEnumValues(t *testing.T) {
	in := validInput()
	in.RiskTolerance = "yolo"
	_, err := Build(in)
	var verr *api.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "risk_tolerance", verr.Field)

	in = validInput()
	in.Scenario = "lottery-win"
	_, err = Build(in)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "scenario", verr.Field)
}

func TestBuild_ValidationFailureLeavesNoPartialRequest(t *testing.T) {
	in := validInput()
	in.MonthlyIncome = "oops"

	req, err := Build(in)
	require.Error(t, err)
	assert.Equal(t, api.SimulationRequest{}, req)
}
