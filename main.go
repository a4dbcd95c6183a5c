package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fintwin-tui/internal/api"
	"fintwin-tui/internal/config"
	"fintwin-tui/internal/logging"
	"fintwin-tui/internal/ui"
)

func main() {
	apiURL := flag.String("api-url", "", "FinTwin API URL (overrides FINTWIN_API_URL)")
	maxWidth := flag.Int("max-width", 0, "Max columns (0 = no limit)")
	maxHeight := flag.Int("max-height", 0, "Max rows (0 = no limit)")
	flag.Parse()

	cfg := config.Load()
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}

	log, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	log.Info().Str("api_url", cfg.APIURL).Msg("Starting FinTwin TUI")

	client := api.NewClient(cfg.APIURL, log)
	m := ui.NewModel(client, log, *maxWidth, *maxHeight)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
