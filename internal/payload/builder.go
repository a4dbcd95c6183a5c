// Package payload turns raw form values into a well-formed simulation
// request. It is the only place annual percentage rates become monthly
// fractions, and the only gate between user input and the wire.
package payload

import (
	"math"
	"strconv"
	"strings"

	"fintwin-tui/internal/api"
)

// RawInput carries the form field values exactly as entered: numerics as
// decimal strings, enums as the selected option values.
type RawInput struct {
	MonthlyIncome        string
	MonthlyExpenses      string
	CurrentSavings       string
	CurrentInvestments   string
	GoalCost             string
	InvestmentGrowthRate string // annual percentage, e.g. "7" for 7%/yr
	InflationRate        string // annual percentage
	MonthlySavingsRate   string // already a rate, passed through
	RiskTolerance        string
	Scenario             string
}

// Build parses and converts in into a SimulationRequest. Any numeric field
// that does not parse to a finite number, and any enum value outside its
// closed set, returns an *api.ValidationError; no request is constructed.
// Range checks beyond finiteness are the service's job.
func Build(in RawInput) (api.SimulationRequest, error) {
	var req api.SimulationRequest

	fields := []struct {
		name string
		raw  string
		dst  *float64
	}{
		{"monthly_income", in.MonthlyIncome, &req.MonthlyIncome},
		{"monthly_expenses", in.MonthlyExpenses, &req.MonthlyExpenses},
		{"current_savings", in.CurrentSavings, &req.CurrentSavings},
		{"current_investments", in.CurrentInvestments, &req.CurrentInvestments},
		{"goal_cost", in.GoalCost, &req.GoalCost},
		{"investment_growth_rate", in.InvestmentGrowthRate, &req.InvestmentGrowthRate},
		{"inflation_rate", in.InflationRate, &req.InflationRate},
		{"monthly_savings_rate", in.MonthlySavingsRate, &req.MonthlySavingsRate},
	}
	for _, f := range fields {
		v, err := parseFinite(f.name, f.raw)
		if err != nil {
			return api.SimulationRequest{}, err
		}
		*f.dst = v
	}

	req.InvestmentGrowthRate = annualPercentToMonthlyRate(req.InvestmentGrowthRate)
	req.InflationRate = annualPercentToMonthlyRate(req.InflationRate)

	if !contains(api.RiskTolerances, in.RiskTolerance) {
		return api.SimulationRequest{}, &api.ValidationError{Field: "risk_tolerance", Reason: "unknown value " + strconv.Quote(in.RiskTolerance)}
	}
	if !contains(api.Scenarios, in.Scenario) {
		return api.SimulationRequest{}, &api.ValidationError{Field: "scenario", Reason: "unknown value " + strconv.Quote(in.Scenario)}
	}
	req.RiskTolerance = in.RiskTolerance
	req.Scenario = in.Scenario

	return req, nil
}

// annualPercentToMonthlyRate converts an annual percentage (7 for 7%/yr)
// to the monthly fractional rate the service consumes.
func annualPercentToMonthlyRate(r float64) float64 {
	return (r / 100) / 12
}

func parseFinite(field, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &api.ValidationError{Field: field, Reason: "is empty"}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &api.ValidationError{Field: field, Reason: "is not a number"}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &api.ValidationError{Field: field, Reason: "is not finite"}
	}
	return v, nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
