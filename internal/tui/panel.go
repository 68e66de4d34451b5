package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"storycut/internal/app"
)

// panelModel is a modal tool panel. While one is open it replaces the chat
// view entirely; the root model routes input to it and reacts to the messages
// it emits.
type panelModel interface {
	Update(tea.Msg) (panelModel, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// panelCloseMsg asks the root model to close the open panel.
type panelCloseMsg struct{}

// sceneChosenMsg reports a scene picked in the scene browser.
type sceneChosenMsg struct{ id int }

// applyScriptMsg carries the narration text to apply to the video.
type applyScriptMsg struct{ text string }

// uploadTrackMsg carries an opaque file path for the track store.
type uploadTrackMsg struct{ path string }

// settingsChangedMsg carries the edited config back to the root model.
type settingsChangedMsg struct{ cfg app.Config }

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
