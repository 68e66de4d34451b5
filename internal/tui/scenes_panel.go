package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"storycut/internal/app"
)

// scenesPanel is the modal scene browser: a cursor list over the catalog with
// the session's active scene marked.
type scenesPanel struct {
	theme    Theme
	scenes   []app.Scene
	cursor   int
	activeID int
	width    int
	height   int
}

func newScenesPanel(theme Theme, catalog *app.Catalog, activeID int) *scenesPanel {
	p := &scenesPanel{
		theme:    theme,
		scenes:   catalog.Scenes,
		activeID: activeID,
		width:    80,
		height:   20,
	}
	for i, s := range p.scenes {
		if s.ID == activeID {
			p.cursor = i
			break
		}
	}
	return p
}

func (p *scenesPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *scenesPanel) Update(msg tea.Msg) (panelModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.scenes)-1 {
			p.cursor++
		}
	case "enter":
		if len(p.scenes) > 0 {
			return p, emit(sceneChosenMsg{id: p.scenes[p.cursor].ID})
		}
	case "esc", "q":
		return p, emit(panelCloseMsg{})
	}
	return p, nil
}

func (p *scenesPanel) View() string {
	var b strings.Builder
	b.WriteString(p.theme.PaneTitle.Render("Scenes"))
	b.WriteString("\n")
	b.WriteString(p.theme.ListMeta.Render("↑/↓ move • enter use scene • esc back"))
	b.WriteString("\n\n")

	if len(p.scenes) == 0 {
		b.WriteString(p.theme.ListMeta.Render("No scenes in catalog."))
	}

	rowWidth := max(20, p.width-8)
	for i, s := range p.scenes {
		marker := " "
		if s.ID == p.activeID {
			marker = "●"
		}
		line := fmt.Sprintf("%s scene %02d  %s  %s", marker, s.ID, s.TimeRange, s.Thumbnail)
		line = truncate.StringWithTail(line, uint(rowWidth), "…")

		style := p.theme.ListRow
		prefix := "  "
		if i == p.cursor {
			prefix = "› "
			style = p.theme.ListSel
		}
		b.WriteString(style.Render(prefix + line))
		if i < len(p.scenes)-1 {
			b.WriteString("\n")
		}
	}

	return p.theme.Pane.Width(max(30, p.width-2)).Render(b.String())
}
