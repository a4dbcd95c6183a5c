package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	figure "github.com/common-nighthawk/go-figure"

	"fintwin-tui/internal/api"
)

const formWidth = 42

func (m Model) View() string {
	if !m.ready {
		return "\n  Loading..."
	}

	t := m.theme
	page := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Background(t.Base)

	if m.failure != "" {
		return page.Render(m.viewFailure())
	}

	form := lipgloss.NewStyle().Width(formWidth).Padding(1, 2).Render(m.viewForm())
	results := lipgloss.NewStyle().Padding(1, 1).Render(m.viewResults())

	return page.Render(lipgloss.JoinHorizontal(lipgloss.Top, form, results))
}

func (m Model) viewForm() string {
	t := m.theme

	labelStyle := lipgloss.NewStyle().Foreground(t.Subtext).Width(22)
	focusedLabel := lipgloss.NewStyle().Foreground(t.Primary).Width(22)
	invalidLabel := lipgloss.NewStyle().Foreground(t.Error).Width(22)

	title := lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render("Your plan")
	lines := []string{title, ""}

	for i := range m.inputs {
		style := labelStyle
		if i == m.invalidIdx {
			style = invalidLabel
		} else if m.focus == i {
			style = focusedLabel
		}
		lines = append(lines, style.Render(inputDefs[i].label)+m.inputs[i].View())
	}

	lines = append(lines, "")
	lines = append(lines, m.viewPicker("Risk tolerance", api.RiskTolerances[m.riskIdx], m.focus == focusRisk))
	lines = append(lines, m.viewPicker("Scenario", api.Scenarios[m.scenarioIdx], m.focus == focusScenario))
	lines = append(lines, "")
	lines = append(lines, m.viewSubmit())

	if m.invalidMsg != "" {
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Error).Width(formWidth-4).Render(m.invalidMsg))
	}

	lines = append(lines, "")
	hint := "tab next · ←/→ pick · ctrl+s run · ctrl+c quit"
	lines = append(lines, lipgloss.NewStyle().Foreground(t.Muted).Render(hint))

	return strings.Join(lines, "\n")
}

func (m Model) viewPicker(label, value string, focused bool) string {
	t := m.theme
	labelStyle := lipgloss.NewStyle().Foreground(t.Subtext).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(t.Text)
	if focused {
		labelStyle = labelStyle.Foreground(t.Primary)
		valueStyle = valueStyle.Foreground(t.Primary)
	}
	return labelStyle.Render(label) + valueStyle.Render("‹ "+value+" ›")
}

// viewSubmit renders the submission control: a distinct busy label while a
// request is in flight, the idle label otherwise.
func (m Model) viewSubmit() string {
	t := m.theme
	if m.inFlight {
		return lipgloss.NewStyle().Foreground(t.Muted).Render("[ " + busyLabel + " ]")
	}
	style := lipgloss.NewStyle().Foreground(t.Subtext)
	if m.focus == focusSubmit {
		style = lipgloss.NewStyle().Foreground(t.Base).Background(t.Primary).Bold(true)
	}
	return style.Render("[ " + idleLabel + " ]")
}

func (m Model) viewResults() string {
	t := m.theme
	width := m.width - formWidth - 4
	if width < 20 {
		width = 20
	}

	if m.vm == nil {
		splash := figure.NewFigure("FinTwin", "", false).String()
		return lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(t.Primary).Render(splash),
			"",
			lipgloss.NewStyle().Foreground(t.Muted).Render("Fill in your plan and run a simulation."),
		)
	}

	heading := lipgloss.NewStyle().Foreground(t.Subtext).Width(18)
	impactStyle := lipgloss.NewStyle().Foreground(t.Success)
	if !m.vm.Impact.Positive {
		impactStyle = lipgloss.NewStyle().Foreground(t.Error)
	}

	lines := []string{
		heading.Render("Final net worth") + lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(m.vm.FinalNetWorth),
		heading.Render("Goal") + lipgloss.NewStyle().Foreground(t.Text).Render(m.vm.GoalTime),
		heading.Render("What-if impact") + impactStyle.Render(m.vm.Impact.Text),
		"",
	}

	if chart := m.chart.Render(width, 14, t); chart != "" {
		lines = append(lines, chart, "", m.chart.Legend(), "")
	}

	lines = append(lines, m.viewList("Risks", m.vm.Risks, t.Warning, width)...)
	lines = append(lines, m.viewList("Insights", m.vm.Insights, t.Info, width)...)

	return strings.Join(lines, "\n")
}

func (m Model) viewList(title string, items []string, color lipgloss.Color, width int) []string {
	t := m.theme
	lines := []string{lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(title)}
	bullet := lipgloss.NewStyle().Foreground(color)
	for _, item := range items {
		lines = append(lines, bullet.Render("• ")+ansi.Truncate(item, width-2, "…"))
	}
	lines = append(lines, "")
	return lines
}

func (m Model) viewFailure() string {
	t := m.theme
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Padding(1, 3).
		Foreground(t.Text).
		Render(m.failure + "\n\n" + lipgloss.NewStyle().Foreground(t.Muted).Render("esc to dismiss"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
