package ui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"fintwin-tui/internal/api"
	"fintwin-tui/internal/payload"
	"fintwin-tui/internal/viewmodel"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.maxWidth > 0 && m.width > m.maxWidth {
			m.width = m.maxWidth
		}
		if m.maxHeight > 0 && m.height > m.maxHeight {
			m.height = m.maxHeight
		}
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		return next, cmd

	case simulationMsg:
		next, cmd := m.handleSimulation(msg)
		return next, cmd
	}

	next, cmd := m.updateFocusedInput(msg)
	return next, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.failure != "" {
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Dismiss):
			m.failure = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Submit):
		return m.submit()

	case key.Matches(msg, keys.Confirm):
		if m.focus == focusSubmit {
			return m.submit()
		}
		return m.setFocus(m.focus + 1)

	case key.Matches(msg, keys.Next):
		return m.setFocus(m.focus + 1)

	case key.Matches(msg, keys.Prev):
		return m.setFocus(m.focus - 1)

	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		delta := 1
		if key.Matches(msg, keys.Left) {
			delta = -1
		}
		switch m.focus {
		case focusRisk:
			m.riskIdx = cycle(m.riskIdx, delta, len(api.RiskTolerances))
			return m, nil
		case focusScenario:
			m.scenarioIdx = cycle(m.scenarioIdx, delta, len(api.Scenarios))
			return m, nil
		}
		// Cursor movement inside a text input.
	}

	return m.updateFocusedInput(msg)
}

func (m Model) setFocus(focus int) (Model, tea.Cmd) {
	if focus < 0 {
		focus = focusSubmit
	}
	if focus > focusSubmit {
		focus = 0
	}
	m.focus = focus

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == focus {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return m, cmd
}

func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd) {
	if m.focus >= numInputs {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit is the one path onto the wire: validation gate, generation bump,
// busy state, request command. Overlapping submissions are ignored while
// the current one is in flight.
func (m Model) submit() (Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}

	req, err := payload.Build(m.rawInput())
	if err != nil {
		var verr *api.ValidationError
		if errors.As(err, &verr) {
			m.invalidIdx = inputIndexForField(verr.Field)
		} else {
			m.invalidIdx = -1
		}
		m.invalidMsg = err.Error()
		m.log.Warn().Err(err).Msg("Submission blocked by validation")
		return m, nil
	}

	m.invalidMsg = ""
	m.invalidIdx = -1
	m.gen++
	m.inFlight = true
	m.log.Info().Int("generation", m.gen).Str("scenario", req.Scenario).Msg("Submitting simulation")
	return m, runSimulation(m.client, req, m.gen)
}

func (m Model) handleSimulation(msg simulationMsg) (Model, tea.Cmd) {
	if msg.gen != m.gen {
		m.log.Warn().
			Int("generation", msg.gen).
			Int("current", m.gen).
			Msg("Dropping superseded simulation response")
		return m, nil
	}

	// Unconditional restore of the submit row, success or failure.
	m.inFlight = false

	if msg.err != nil {
		m.failure = failureNotice
		return m, nil
	}

	vm := viewmodel.Build(msg.result, m.fmtr)
	m.vm = &vm
	m.chart = ReplaceChart(m.chart, msg.result, m.theme, m.fmtr)
	return m, nil
}
