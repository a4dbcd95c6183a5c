package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds the semantic color palette for the entire TUI.
type Theme struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
}

var Default = Theme{
	Base:    lipgloss.Color("#201F26"),
	Surface: lipgloss.Color("#2D2C35"),
	Border:  lipgloss.Color("#4D4C57"),
	Muted:   lipgloss.Color("#858392"),
	Text:    lipgloss.Color("#DFDBDD"),
	Subtext: lipgloss.Color("#BFBCC8"),
	Primary: lipgloss.Color("#6B50FF"),
	Accent:  lipgloss.Color("#FF60FF"),
	Success: lipgloss.Color("#00FFB2"),
	Warning: lipgloss.Color("#FFD300"),
	Error:   lipgloss.Color("#E94090"),
	Info:    lipgloss.Color("#00CED1"),
}

// Series colors have fixed identities independent of the data: the base
// projection, the best and worst cases, and the what-if run.
func (t Theme) SeriesBase() lipgloss.Color     { return t.Primary }
func (t Theme) SeriesBest() lipgloss.Color     { return t.Success }
func (t Theme) SeriesWorst() lipgloss.Color    { return t.Error }
func (t Theme) SeriesScenario() lipgloss.Color { return t.Warning }
