package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"fintwin-tui/internal/api"
	"fintwin-tui/internal/money"
	"fintwin-tui/internal/theme"
	"fintwin-tui/internal/viewmodel"
)

const (
	idleLabel = "Run simulation"
	busyLabel = "Simulating..."

	failureNotice = "Simulation failed. See the log for details."
)

type Model struct {
	client *api.Client
	log    zerolog.Logger
	theme  theme.Theme
	fmtr   *money.Formatter

	// Form
	inputs      []textinput.Model
	riskIdx     int
	scenarioIdx int
	focus       int
	invalidMsg  string
	invalidIdx  int

	// In-flight state. The generation counter outlives the advisory
	// busy flag: a superseded response can neither render nor re-enable
	// the submit row while a newer request is still out.
	inFlight bool
	gen      int

	// Last successful result, fully replaced each cycle
	vm    *viewmodel.ViewModel
	chart *Chart

	failure string // modal text, empty when hidden

	// UI state
	width     int
	height    int
	maxWidth  int
	maxHeight int
	ready     bool
}

// simulationMsg carries one exchange's outcome back into the update loop.
type simulationMsg struct {
	gen    int
	result *api.ProjectionResult
	err    error
}

func NewModel(client *api.Client, log zerolog.Logger, maxWidth, maxHeight int) Model {
	return Model{
		client:      client,
		log:         log.With().Str("component", "ui").Logger(),
		theme:       theme.Default,
		fmtr:        money.NewFormatter(),
		inputs:      newInputs(),
		scenarioIdx: 1, // job-hike; "none" makes the what-if run a copy of base
		invalidIdx:  -1,
		maxWidth:    maxWidth,
		maxHeight:   maxHeight,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// runSimulation performs the exchange off the update loop and reports
// back with the generation it belongs to.
func runSimulation(c *api.Client, req api.SimulationRequest, gen int) tea.Cmd {
	return func() tea.Msg {
		result, err := c.Simulate(context.Background(), req)
		return simulationMsg{gen: gen, result: result, err: err}
	}
}
