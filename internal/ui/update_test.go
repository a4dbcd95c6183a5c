package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintwin-tui/internal/api"
)

func testModel() Model {
	client := api.NewClient("http://127.0.0.1:1", zerolog.Nop())
	return NewModel(client, zerolog.Nop(), 0, 0)
}

func TestSubmit_SetsBusyStateAndIncrementsGeneration(t *testing.T) {
	m := testModel()

	m, cmd := m.submit()

	require.NotNil(t, cmd)
	assert.True(t, m.inFlight)
	assert.Equal(t, 1, m.gen)
	assert.Empty(t, m.invalidMsg)
}

func TestSubmit_IgnoredWhileInFlight(t *testing.T) {
	m := testModel()
	m.inFlight = true
	m.gen = 3

	m, cmd := m.submit()

	assert.Nil(t, cmd)
	assert.Equal(t, 3, m.gen)
}

func TestSubmit_ValidationBlocksNetworkCall(t *testing.T) {
	m := testModel()
	m.inputs[0].SetValue("not a number")

	m, cmd := m.submit()

	assert.Nil(t, cmd, "no request command on validation failure")
	assert.False(t, m.inFlight)
	assert.Zero(t, m.gen)
	assert.NotEmpty(t, m.invalidMsg)
	assert.Equal(t, 0, m.invalidIdx, "offending field is marked")
}

func TestHandleSimulation_FailureRestoresIdleAndShowsNotice(t *testing.T) {
	m := testModel()
	m.inFlight = true
	m.gen = 1
	prior := ReplaceChart(nil, chartResult(), m.theme, m.fmtr)
	m.chart = prior

	m, cmd := m.handleSimulation(simulationMsg{gen: 1, err: &api.RequestError{Status: 500}})

	assert.Nil(t, cmd)
	assert.False(t, m.inFlight, "submit row must return to idle on failure")
	assert.Equal(t, failureNotice, m.failure)
	assert.Nil(t, m.vm, "no render on failure")
	assert.Same(t, prior, m.chart, "prior chart untouched on failure")
	assert.False(t, prior.Closed())
}

func TestHandleSimulation_SchemaErrorTakesSameFailurePath(t *testing.T) {
	m := testModel()
	m.inFlight = true
	m.gen = 1

	m, _ = m.handleSimulation(simulationMsg{gen: 1, err: &api.SchemaError{Run: "worst", Reason: "is missing"}})

	assert.False(t, m.inFlight)
	assert.Equal(t, failureNotice, m.failure)
	assert.Nil(t, m.vm)
}

func TestHandleSimulation_SuccessBuildsViewModelAndReplacesChart(t *testing.T) {
	m := testModel()
	m.inFlight = true
	m.gen = 1
	prior := ReplaceChart(nil, chartResult(), m.theme, m.fmtr)
	m.chart = prior

	m, _ = m.handleSimulation(simulationMsg{gen: 1, result: chartResult()})

	assert.False(t, m.inFlight)
	require.NotNil(t, m.vm)
	require.NotNil(t, m.chart)
	assert.True(t, prior.Closed(), "previous chart handle torn down")
	assert.False(t, m.chart.Closed())
	assert.Empty(t, m.failure)
}

func TestHandleSimulation_StaleGenerationIsDropped(t *testing.T) {
	m := testModel()
	m.inFlight = true
	m.gen = 2 // a newer request is out

	m, _ = m.handleSimulation(simulationMsg{gen: 1, result: chartResult()})

	assert.True(t, m.inFlight, "a superseded response must not re-enable the control")
	assert.Nil(t, m.vm, "a superseded response must not render")
}

func TestHandleKey_EscDismissesFailureNotice(t *testing.T) {
	m := testModel()
	m.failure = failureNotice

	m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEscape})

	assert.Empty(t, m.failure)
}

func TestHandleKey_CtrlSSubmitsFromAnyField(t *testing.T) {
	m := testModel()
	m.focus = 2

	m, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyCtrlS})

	require.NotNil(t, cmd)
	assert.True(t, m.inFlight)
}

func TestHandleKey_PickersCycleThroughClosedSets(t *testing.T) {
	m := testModel()
	m.focus = focusScenario
	start := m.scenarioIdx

	for range api.Scenarios {
		m, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	}

	assert.Equal(t, start, m.scenarioIdx, "cycling wraps around")
}
