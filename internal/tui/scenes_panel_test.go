package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"storycut/internal/app"
)

func TestScenesPanel_EnterPicksCursorScene(t *testing.T) {
	p := newScenesPanel(NewNoColorTheme(), app.DefaultCatalog(), 0)

	p.Update(keyRunes("j"))
	p.Update(keyRunes("j"))
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected selection command")
	}
	msg, ok := cmd().(sceneChosenMsg)
	if !ok {
		t.Fatalf("expected sceneChosenMsg, got %T", cmd())
	}
	if msg.id != 3 {
		t.Fatalf("chosen scene = %d, want 3", msg.id)
	}
}

func TestScenesPanel_CursorStartsOnActiveScene(t *testing.T) {
	catalog := app.DefaultCatalog()
	p := newScenesPanel(NewNoColorTheme(), catalog, 4)
	if p.scenes[p.cursor].ID != 4 {
		t.Fatalf("cursor on scene %d, want 4", p.scenes[p.cursor].ID)
	}
}

func TestScenesPanel_CursorStaysInBounds(t *testing.T) {
	p := newScenesPanel(NewNoColorTheme(), app.DefaultCatalog(), 0)

	for i := 0; i < 20; i++ {
		p.Update(keyRunes("j"))
	}
	if p.cursor != len(p.scenes)-1 {
		t.Fatalf("cursor = %d, want %d", p.cursor, len(p.scenes)-1)
	}
	for i := 0; i < 20; i++ {
		p.Update(keyRunes("k"))
	}
	if p.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", p.cursor)
	}
}

func TestScenesPanel_EscCloses(t *testing.T) {
	p := newScenesPanel(NewNoColorTheme(), app.DefaultCatalog(), 0)

	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected close command")
	}
	if _, ok := cmd().(panelCloseMsg); !ok {
		t.Fatalf("expected panelCloseMsg, got %T", cmd())
	}
}
