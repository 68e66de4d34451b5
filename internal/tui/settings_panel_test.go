package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"storycut/internal/app"
)

func TestSettingsPanel_ThemeCycles(t *testing.T) {
	p := newSettingsPanel(NewNoColorTheme(), app.DefaultConfig())

	p.adjust(1)
	if p.cfg.Theme != "midnight" {
		t.Fatalf("theme = %q, want midnight", p.cfg.Theme)
	}
	p.adjust(1)
	if p.cfg.Theme != "no-color" {
		t.Fatalf("theme = %q, want no-color", p.cfg.Theme)
	}
	p.adjust(1)
	if p.cfg.Theme != "porcelain" {
		t.Fatalf("theme = %q, want wrap to porcelain", p.cfg.Theme)
	}
	p.adjust(-1)
	if p.cfg.Theme != "no-color" {
		t.Fatalf("theme = %q, want no-color going left", p.cfg.Theme)
	}
}

func TestSettingsPanel_ReplyDelayFloorsAtZero(t *testing.T) {
	p := newSettingsPanel(NewNoColorTheme(), app.DefaultConfig())
	p.cursor = rowReplyDelay

	for i := 0; i < 10; i++ {
		p.adjust(-1)
	}
	if p.cfg.ReplyDelayMs != 0 {
		t.Fatalf("reply delay = %d, want 0", p.cfg.ReplyDelayMs)
	}
}

func TestSettingsPanel_EnterAppliesEditedCopy(t *testing.T) {
	p := newSettingsPanel(NewNoColorTheme(), app.DefaultConfig())
	p.cursor = rowReplyDelay
	p.adjust(-1)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected apply command")
	}
	msg, ok := cmd().(settingsChangedMsg)
	if !ok {
		t.Fatalf("expected settingsChangedMsg, got %T", cmd())
	}
	if msg.cfg.ReplyDelayMs != 750 {
		t.Fatalf("applied delay = %d, want 750", msg.cfg.ReplyDelayMs)
	}
}

func TestSettingsPanel_EscDiscards(t *testing.T) {
	p := newSettingsPanel(NewNoColorTheme(), app.DefaultConfig())
	p.adjust(1)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected close command")
	}
	if _, ok := cmd().(panelCloseMsg); !ok {
		t.Fatalf("expected panelCloseMsg, got %T", cmd())
	}
}
