package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"storycut/internal/app"
)

// replyMsg lands a scheduled assistant reply in the chat.
type replyMsg struct{ pending *app.PendingReply }

type spinMsg struct{}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the root TUI state: the chat view plus whichever modal tool panel
// is open. It owns the Session and routes panel messages.
type Model struct {
	session *app.Session
	cfg     app.Config
	cfgPath string
	tracks  app.TrackStore
	logger  *zap.Logger

	theme Theme
	keys  keyMap

	input  textarea.Model
	chatVP viewport.Model

	width  int
	height int
	ready  bool

	waiting    bool
	spinnerPos int
	statusText string

	panel panelModel
}

func New(session *app.Session, cfg app.Config, cfgPath string, tracks app.TrackStore, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if tracks == nil {
		tracks = &app.LogTrackStore{Logger: logger}
	}

	ta := textarea.New()
	ta.Placeholder = "Describe an edit, or try /scenes, /audio, /settings"
	ta.Focus()
	ta.CharLimit = 2000
	ta.SetHeight(1)
	ta.Prompt = " "
	ta.ShowLineNumbers = false

	// Keep textarea styling minimal; the input container carries the border.
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	return &Model{
		session:    session,
		cfg:        cfg,
		cfgPath:    cfgPath,
		tracks:     tracks,
		logger:     logger,
		theme:      ThemeByName(cfg.Theme),
		keys:       defaultKeyMap(),
		input:      ta,
		width:      100,
		height:     30,
		statusText: "Ready",
	}
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		chatH := m.chatHeight()
		if !m.ready {
			m.chatVP = viewport.New(m.width-4, chatH)
			m.ready = true
		} else {
			m.chatVP.Width = m.width - 4
			m.chatVP.Height = chatH
		}
		m.input.SetWidth(max(10, m.width-6))
		if m.panel != nil {
			m.panel.SetSize(m.width, m.panelHeight())
		}
		m.updateChatViewport()
		return m, nil

	case replyMsg:
		if reply, ok := m.session.Deliver(msg.pending); ok {
			m.logger.Debug("reply delivered", zap.Int("message_id", reply.ID))
		}
		m.waiting = false
		m.statusText = "Ready"
		m.updateChatViewport()
		m.chatVP.GotoBottom()
		return m, nil

	case spinMsg:
		if m.waiting {
			m.spinnerPos = (m.spinnerPos + 1) % len(spinnerFrames)
			return m, m.spinTick()
		}
		return m, nil

	case panelCloseMsg:
		m.closePanel()
		return m, nil

	case sceneChosenMsg:
		m.chooseScene(msg.id)
		m.closePanel()
		return m, nil

	case applyScriptMsg:
		if err := m.session.ApplyScript(msg.text); err != nil {
			m.statusText = "script apply failed"
			m.logger.Error("apply script", zap.Error(err))
		} else {
			m.statusText = "script applied"
		}
		return m, nil

	case uploadTrackMsg:
		m.uploadTrack(msg.path)
		return m, nil

	case settingsChangedMsg:
		m.applySettings(msg.cfg)
		m.closePanel()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.panel != nil {
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.session.Close()
		return m, tea.Quit
	}

	if m.panel != nil {
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Enter):
		return m, m.onEnter()

	case key.Matches(msg, m.keys.Clear):
		m.updateChatViewport()
		m.chatVP.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.Scenes):
		m.openPanel(app.PanelScenes)
		return m, nil

	case key.Matches(msg, m.keys.Audio):
		m.openPanel(app.PanelAudio)
		return m, nil

	case key.Matches(msg, m.keys.Settings):
		m.openPanel(app.PanelSettings)
		return m, nil
	}

	// Bare 1-3 on an empty input picks a scene option from the latest reply.
	if m.input.Value() == "" {
		if idx, ok := sceneOptionIndex(msg.String()); ok {
			if m.pickSceneOption(idx) {
				return m, nil
			}
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.chatVP, cmd = m.chatVP.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// onEnter sends the typed message, or dispatches a slash command.
func (m *Model) onEnter() tea.Cmd {
	val := strings.TrimSpace(m.input.Value())
	if val == "" {
		return nil
	}

	switch val {
	case "/scenes":
		m.input.Reset()
		m.openPanel(app.PanelScenes)
		return nil
	case "/audio":
		m.input.Reset()
		m.openPanel(app.PanelAudio)
		return nil
	case "/settings":
		m.input.Reset()
		m.openPanel(app.PanelSettings)
		return nil
	}

	_, pending, ok := m.session.SendMessage(val)
	if !ok {
		return nil
	}
	m.input.Reset()
	m.updateChatViewport()
	m.chatVP.GotoBottom()

	m.waiting = true
	m.spinnerPos = 0
	m.statusText = "Assistant is thinking…"
	return tea.Batch(m.replyTick(pending), m.spinTick())
}

func (m *Model) replyTick(pending *app.PendingReply) tea.Cmd {
	return tea.Tick(pending.Delay, func(time.Time) tea.Msg {
		return replyMsg{pending: pending}
	})
}

func (m *Model) spinTick() tea.Cmd {
	return tea.Tick(90*time.Millisecond, func(time.Time) tea.Msg { return spinMsg{} })
}

func (m *Model) openPanel(kind app.PanelKind) {
	if !m.session.OpenPanel(kind) {
		return
	}
	switch kind {
	case app.PanelScenes:
		activeID := 0
		if scene, ok := m.session.ActiveScene(); ok {
			activeID = scene.ID
		}
		m.panel = newScenesPanel(m.theme, m.session.Catalog(), activeID)
	case app.PanelAudio:
		previewDur := time.Duration(m.cfg.VoicePreviewSecs) * time.Second
		m.panel = newAudioPanel(m.theme, m.session.Catalog(), previewDur)
	case app.PanelSettings:
		m.panel = newSettingsPanel(m.theme, m.cfg)
	}
	m.panel.SetSize(m.width, m.panelHeight())
	m.input.Blur()
	m.logger.Debug("panel opened", zap.String("panel", kind.String()))
}

func (m *Model) closePanel() {
	m.session.ClosePanel()
	m.panel = nil
	m.input.Focus()
}

func (m *Model) chooseScene(id int) {
	err := m.session.SelectScene(id)
	switch {
	case errors.Is(err, app.ErrUnknownScene):
		m.statusText = fmt.Sprintf("scene %d is not in the catalog", id)
		m.logger.Warn("scene selection rejected", zap.Int("scene", id))
	case err != nil:
		m.statusText = "scene selection failed"
		m.logger.Error("select scene", zap.Error(err))
	default:
		m.statusText = fmt.Sprintf("scene %02d active", id)
	}
}

// pickSceneOption selects the idx-th scene option of the latest assistant
// reply, if it carries any.
func (m *Model) pickSceneOption(idx int) bool {
	last, ok := m.session.LastMessage()
	if !ok || last.Author != app.AuthorAssistant {
		return false
	}
	for _, att := range last.Attachments {
		if att.Kind != app.AttachmentSceneOptions {
			continue
		}
		if idx >= len(att.Scenes) {
			return false
		}
		m.chooseScene(att.Scenes[idx].SceneID)
		return true
	}
	return false
}

func sceneOptionIndex(keyStr string) (int, bool) {
	switch keyStr {
	case "1":
		return 0, true
	case "2":
		return 1, true
	case "3":
		return 2, true
	}
	return 0, false
}

func (m *Model) uploadTrack(path string) {
	var size int64
	if st, err := os.Stat(path); err == nil {
		size = st.Size()
	}
	receipt, err := m.tracks.UploadTrack(filepath.Base(path), size)
	if err != nil {
		m.statusText = "upload failed"
		m.logger.Error("upload track", zap.String("path", path), zap.Error(err))
		return
	}
	m.statusText = fmt.Sprintf("uploaded %s (%s)", filepath.Base(path), shortReceipt(receipt))
}

func shortReceipt(receipt string) string {
	if len(receipt) > 8 {
		return receipt[:8]
	}
	return receipt
}

func (m *Model) applySettings(cfg app.Config) {
	m.cfg = cfg
	m.theme = ThemeByName(cfg.Theme)
	m.session.SetReplyDelay(time.Duration(cfg.ReplyDelayMs) * time.Millisecond)
	m.statusText = "settings saved"
	if m.cfgPath != "" {
		if err := app.SaveConfig(cfg, m.cfgPath); err != nil {
			m.statusText = "settings applied (save failed)"
			m.logger.Error("save config", zap.Error(err))
		}
	}
	m.updateChatViewport()
}

func (m *Model) chatHeight() int {
	// top bar + input box (3) + footer
	h := m.height - 1 - 3 - 1 - 2
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) panelHeight() int {
	h := m.height - 2
	if h < 5 {
		h = 5
	}
	return h
}

func (m *Model) View() string {
	if !m.ready {
		return "…"
	}

	top := m.renderTopBar()
	footer := m.theme.Footer.Width(m.width).Render(m.footerHints())

	if m.panel != nil {
		return lipgloss.JoinVertical(lipgloss.Left, top, m.panel.View(), footer)
	}

	chat := m.theme.Pane.Width(m.width - 2).Height(m.chatHeight()).Render(m.chatVP.View())
	inputBox := m.theme.InputBoxF
	if !m.input.Focused() {
		inputBox = m.theme.InputBox
	}
	input := inputBox.Width(max(10, m.width-2)).Render(m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, top, chat, input, footer)
}

func (m *Model) renderTopBar() string {
	left := m.theme.TopBarTitle.Render("storycut")
	badge := "no scene"
	if scene, ok := m.session.ActiveScene(); ok {
		badge = fmt.Sprintf("scene %02d · %s", scene.ID, scene.TimeRange)
	}
	left += " " + m.theme.TopBarBadge.Render(badge)

	status := m.statusText
	if m.waiting {
		status = m.theme.Spinner.Render(spinnerFrames[m.spinnerPos] + " " + m.statusText)
	} else {
		status = m.theme.TopBarMeta.Render(status)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(status)
	if gap < 2 {
		gap = 2
	}
	return m.theme.TopBar.Render(left + strings.Repeat(" ", gap) + status)
}

func (m *Model) footerHints() string {
	if m.panel != nil {
		return "esc close panel  ctrl+c quit"
	}
	if m.width < 90 {
		return footerHintsNarrow
	}
	return footerHints
}
