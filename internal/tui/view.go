package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/mcfolio/internal/recompute"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneForecast:
		content = m.forecastModel.View()
	case SceneCompare:
		content = m.compareModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	contentHeight := max(0, m.height-4)
	container := lipgloss.NewStyle().
		MaxHeight(contentHeight).
		Render(content)

	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		container,
		m.renderStatusBar(),
	))
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("mcfolio - Monte Carlo Portfolio Forecast")

	crumb := m.currentScene.String()
	if in := m.controller.Debounced(); m.controller.Result() != nil {
		crumb = fmt.Sprintf("%s / %.0f%% equity, %d years", crumb, in.EquityPercentage, in.HorizonYears)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(crumb))
}

// renderStatusBar renders the key hints with the latest status on the right
func (m Model) renderStatusBar() string {
	hints := m.help.ShortHelpView(m.keys.ShortHelp())

	status := m.status
	if m.controller.State() == recompute.Pending {
		status = m.spinner.View() + " recomputing"
	}
	if status != "" {
		gap := max(1, m.width-lipgloss.Width(hints)-lipgloss.Width(status)-4)
		hints += strings.Repeat(" ", gap) + InfoStyle.Render(status)
	}
	return StatusBarStyle.Width(max(0, m.width-2)).Render(hints)
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err),
	)
	return m.renderApp(content)
}

// renderHelp lists every binding and what the figures mean
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keys"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(TitleStyle.Render("Reading the chart"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join([]string{
		"Each year's worst, middle and best case are the 10th, 50th and 90th",
		"percentiles across all simulated paths. Values on the axis are millions.",
		"",
		"Inputs settle for a moment before the forecast is recomputed; moving a",
		"slider back to where it was reuses the result already on screen.",
	}, "\n"))
	return BorderStyle.Render(b.String())
}
