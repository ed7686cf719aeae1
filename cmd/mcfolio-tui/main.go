package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mcfolio/internal/calculation"
	"github.com/rgehrsitz/mcfolio/internal/config"
	"github.com/rgehrsitz/mcfolio/internal/domain"
	"github.com/rgehrsitz/mcfolio/internal/tui"
)

func main() {
	// An optional forecast file seeds the sliders and simulation settings
	cfg := config.DefaultConfiguration()
	if len(os.Args) > 1 {
		loaded, err := config.NewInputParser().LoadFromFile(os.Args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			fmt.Println("Usage: mcfolio-tui [forecast-file]")
			os.Exit(1)
		}
		cfg = loaded
	}

	engine := calculation.NewEngineWithConfig(config.EngineConfig(cfg.Simulation))
	model := tui.NewModel(engine, tui.Options{
		Input:    cfg.Input.ToInput(),
		Ranges:   domain.DefaultInputRanges(),
		Currency: cfg.Simulation.Currency,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
