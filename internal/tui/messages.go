package tui

// Scene represents different screens in the TUI
type Scene int

const (
	SceneForecast Scene = iota
	SceneCompare
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case SceneForecast:
		return "Forecast"
	case SceneCompare:
		return "Compare"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// primeMsg asks for the first result of the session
type primeMsg struct{}

// CommitMsg is delivered when a debounce ticket's delay has elapsed
type CommitMsg struct {
	Generation uint64
}

// CopiedMsg reports the outcome of a clipboard copy
type CopiedMsg struct {
	Err error
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
