package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"storycut/internal/app"
)

func (m *Model) updateChatViewport() {
	if !m.ready {
		return
	}
	width := m.chatVP.Width - 2
	if width < 20 {
		width = 20
	}

	msgs := m.session.Messages()
	if len(msgs) == 0 {
		m.chatVP.SetContent(m.theme.RoleSys.Render(
			"Tell me what to change — try \"replace this scene\" or \"rewrite the script\"."))
		return
	}

	var b strings.Builder
	for _, msg := range msgs {
		b.WriteString(m.renderMessage(msg, width))
		b.WriteString("\n\n")
	}
	m.chatVP.SetContent(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) renderMessage(msg app.Message, width int) string {
	roleStyle := m.theme.RoleAI
	roleLabel := "CUT"
	if msg.Author == app.AuthorUser {
		roleStyle = m.theme.RoleYou
		roleLabel = "YOU"
	}

	header := roleStyle.Render(roleLabel)
	if m.cfg.ShowTimestamps {
		header += " " + m.theme.TopBarMeta.Render(msg.Timestamp.Format("15:04"))
	}

	body := lipgloss.NewStyle().Foreground(m.theme.TextPrimary).Width(width).Render(msg.Body)

	out := header + "\n" + body
	for _, att := range msg.Attachments {
		out += "\n" + m.renderAttachment(att, width)
	}
	return out
}

func (m *Model) renderAttachment(att app.Attachment, width int) string {
	switch att.Kind {
	case app.AttachmentSceneOptions:
		return m.renderSceneOptions(att.Scenes, width)
	case app.AttachmentScriptDraft:
		return m.theme.AttachBox.Width(max(20, width-2)).Render(att.Script)
	default:
		return ""
	}
}

func (m *Model) renderSceneOptions(opts []app.SceneOption, width int) string {
	var b strings.Builder
	rowWidth := max(20, width-6)
	for i, opt := range opts {
		line := fmt.Sprintf("[%d] scene %02d  %s  %s", i+1, opt.SceneID, opt.TimeRange, opt.Thumbnail)
		b.WriteString(m.theme.ListRow.Render(truncate.StringWithTail(line, uint(rowWidth), "…")))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.ListMeta.Render("press 1-3 to use a take"))
	return m.theme.AttachBox.Width(max(20, width-2)).Render(b.String())
}
