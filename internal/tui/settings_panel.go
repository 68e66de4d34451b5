package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"storycut/internal/app"
)

type settingsRow int

const (
	rowTheme settingsRow = iota
	rowReplyDelay
	rowVoicePreview
	rowTimestamps
)

const settingsRowCount = 4

// settingsPanel edits a working copy of the config. Enter applies the copy
// via settingsChangedMsg; esc discards it.
type settingsPanel struct {
	theme  Theme
	cfg    app.Config
	cursor settingsRow
	width  int
	height int
}

func newSettingsPanel(theme Theme, cfg app.Config) *settingsPanel {
	return &settingsPanel{
		theme:  theme,
		cfg:    cfg,
		width:  80,
		height: 20,
	}
}

func (p *settingsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *settingsPanel) Update(msg tea.Msg) (panelModel, tea.Cmd) {
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
		if p.cursor < settingsRowCount-1 {
			p.cursor++
		}
	case "left", "h":
		p.adjust(-1)
	case "right", "l", " ":
		p.adjust(1)
	case "enter":
		return p, emit(settingsChangedMsg{cfg: p.cfg})
	case "esc", "q":
		return p, emit(panelCloseMsg{})
	}
	return p, nil
}

func (p *settingsPanel) adjust(dir int) {
	switch p.cursor {
	case rowTheme:
		names := ThemeNames()
		idx := 0
		for i, n := range names {
			if n == p.cfg.Theme {
				idx = i
				break
			}
		}
		idx = (idx + dir + len(names)) % len(names)
		p.cfg.Theme = names[idx]
	case rowReplyDelay:
		p.cfg.ReplyDelayMs = clamp(p.cfg.ReplyDelayMs+dir*250, 0, 10000)
	case rowVoicePreview:
		p.cfg.VoicePreviewSecs = clamp(p.cfg.VoicePreviewSecs+dir, 1, 30)
	case rowTimestamps:
		p.cfg.ShowTimestamps = !p.cfg.ShowTimestamps
	}
}

func (p *settingsPanel) View() string {
	var b strings.Builder
	b.WriteString(p.theme.PaneTitle.Render("Settings"))
	b.WriteString("\n")
	b.WriteString(p.theme.ListMeta.Render("←/→ change • enter apply • esc discard"))
	b.WriteString("\n\n")

	timestamps := "off"
	if p.cfg.ShowTimestamps {
		timestamps = "on"
	}
	rows := []struct {
		row   settingsRow
		label string
		value string
	}{
		{rowTheme, "theme", p.cfg.Theme},
		{rowReplyDelay, "reply delay", fmt.Sprintf("%d ms", p.cfg.ReplyDelayMs)},
		{rowVoicePreview, "voice preview", fmt.Sprintf("%d s", p.cfg.VoicePreviewSecs)},
		{rowTimestamps, "timestamps", timestamps},
	}

	for i, r := range rows {
		style := p.theme.ListRow
		prefix := "  "
		if r.row == p.cursor {
			prefix = "› "
			style = p.theme.ListSel
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-14s %s", prefix, r.label, r.value)))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}

	return p.theme.Pane.Width(max(30, p.width-2)).Render(b.String())
}
