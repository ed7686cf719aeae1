package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/mcfolio/internal/recompute"
	"github.com/rgehrsitz/mcfolio/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.forecastModel.SetSize(msg.Width, msg.Height-4)
		m.compareModel.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case primeMsg:
		outcome, err := m.controller.Prime()
		m.applyOutcome(outcome, err)
		return m, nil

	case tuimsg.InputChangedMsg:
		ticket := m.controller.Change(msg.Input)
		m.forecastModel.SetPending(true)
		return m, commitCmd(ticket)

	case CommitMsg:
		outcome, err := m.controller.Fire(msg.Generation)
		if outcome == recompute.Stale {
			return m, nil
		}
		m.applyOutcome(outcome, err)
		return m, nil

	case tuimsg.CompareRequestedMsg:
		m.status = ""
		return m, m.compareCmd(msg.Input, msg.Equities)

	case tuimsg.CompareCompleteMsg:
		m.compareModel.SetResults(msg.Set, msg.Err)
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.status = "copy failed: " + msg.Err.Error()
		} else {
			m.status = "summary copied to clipboard"
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m.updateCurrentScene(msg)
}

// applyOutcome pushes a commit's result into the scenes. A failed
// recompute leaves the previous result on screen.
func (m *Model) applyOutcome(outcome recompute.Outcome, err error) {
	m.forecastModel.SetPending(m.controller.State() == recompute.Pending)

	switch outcome {
	case recompute.Failed:
		m.status = err.Error()
	case recompute.Recomputed:
		result := m.controller.Result()
		m.forecastModel.SetResult(result)
		m.compareModel.SetInput(m.controller.Debounced())
		m.status = fmt.Sprintf("%d paths in %s", result.NumSimulations, result.Duration.Round(time.Microsecond))
	case recompute.Unchanged:
		m.compareModel.SetInput(m.controller.Debounced())
	}
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.currentScene == SceneHelp {
			return m, navigate(m.previousScene)
		}
		return m, navigate(SceneHelp)

	case key.Matches(msg, m.keys.Back):
		if m.currentScene != SceneForecast {
			return m, navigate(SceneForecast)
		}
		return m, nil

	case key.Matches(msg, m.keys.Forecast):
		return m, navigate(SceneForecast)

	case key.Matches(msg, m.keys.Compare):
		return m, navigate(SceneCompare)

	case key.Matches(msg, m.keys.Copy):
		result := m.controller.Result()
		if result == nil {
			return m, nil
		}
		text, err := summaryText(result, m.currency)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, copyCmd(m.copyText, text)
	}

	return m.updateCurrentScene(msg)
}

func navigate(s Scene) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Scene: s} }
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneForecast:
		m.forecastModel, cmd = m.forecastModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	}
	return m, cmd
}
