package api

// HorizonMonths is the projection window the service simulates. Every
// returned history must carry exactly one net-worth value per month.
const HorizonMonths = 120

// Risk tolerance levels accepted by the service.
const (
	RiskConservative = "conservative"
	RiskModerate     = "moderate"
	RiskAggressive   = "aggressive"
)

// RiskTolerances lists the accepted levels in display order.
var RiskTolerances = []string{RiskConservative, RiskModerate, RiskAggressive}

// What-if scenarios accepted by the service.
const (
	ScenarioNone       = "none"
	ScenarioJobHike    = "job-hike"
	ScenarioSabbatical = "sabbatical"
	ScenarioEmergency  = "emergency"
)

// Scenarios lists the accepted what-if perturbations in display order.
var Scenarios = []string{ScenarioNone, ScenarioJobHike, ScenarioSabbatical, ScenarioEmergency}

// SimulationRequest is the payload sent to POST /simulate. The two rate
// fields are monthly fractions, never annual percentages; the payload
// builder owns that conversion. The savings rate is sent as entered.
type SimulationRequest struct {
	MonthlyIncome        float64 `json:"monthly_income"`
	MonthlyExpenses      float64 `json:"monthly_expenses"`
	CurrentSavings       float64 `json:"current_savings"`
	CurrentInvestments   float64 `json:"current_investments"`
	GoalCost             float64 `json:"goal_cost"`
	InvestmentGrowthRate float64 `json:"investment_growth_rate"`
	InflationRate        float64 `json:"inflation_rate"`
	MonthlySavingsRate   float64 `json:"monthly_savings_rate"`
	RiskTolerance        string  `json:"risk_tolerance"`
	Scenario             string  `json:"scenario"`
}

// Run is one validated projection run. GoalMonth is nil when the goal was
// not reached within the horizon; the service only reports it for the base
// and what-if runs.
type Run struct {
	FinalNetWorth float64
	History       []float64
	Risks         []string
	Insights      []string
	GoalMonth     *int
}

// ProjectionResult holds the four runs of one simulation. A new result
// fully replaces the previous one; nothing is merged incrementally.
type ProjectionResult struct {
	Base     Run
	Best     Run
	Worst    Run
	Scenario Run
}
