package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"

	"storycut/internal/app"
)

type audioTab int

const (
	tabVoice audioTab = iota
	tabMusic
)

type audioFocus int

const (
	focusScript audioFocus = iota
	focusVoices
	focusSliders
)

type audioSlider int

const (
	sliderSpeed audioSlider = iota
	sliderPitch
	sliderEmphasis
)

const sliderStep = 5

// previewDoneMsg auto-stops a voice preview. It carries the voice id so a
// stale timer from an earlier preview cannot stop a newer one.
type previewDoneMsg struct{ id string }

// audioPanel is the modal audio mixer: a voice tab (script editor, voice
// list, delivery sliders) and a music tab (track list, upload). All selection
// state is panel-local and discarded on close; only apply and upload reach
// the outside world.
type audioPanel struct {
	theme  Theme
	voices []app.Voice
	tracks []app.Track

	tab   audioTab
	focus audioFocus

	script      textarea.Model
	voiceCursor int
	trackCursor int

	selectedVoice string
	selectedTrack string

	speed       int
	pitch       int
	emphasis    int
	sliderFocus audioSlider

	playingID  string
	previewDur time.Duration

	uploading   bool
	uploadInput textinput.Model

	width  int
	height int
}

func newAudioPanel(theme Theme, catalog *app.Catalog, previewDur time.Duration) *audioPanel {
	ta := textarea.New()
	ta.Placeholder = "Narration script…"
	ta.CharLimit = 4000
	ta.SetHeight(4)
	ta.ShowLineNumbers = false
	ta.SetValue(app.DefaultScriptDraft)
	ta.Focus()

	ti := textinput.New()
	ti.Placeholder = "path/to/track.mp3"
	ti.CharLimit = 500

	p := &audioPanel{
		theme:       theme,
		voices:      catalog.Voices,
		tracks:      catalog.Tracks,
		script:      ta,
		speed:       50,
		pitch:       50,
		emphasis:    50,
		previewDur:  previewDur,
		uploadInput: ti,
		width:       80,
		height:      20,
	}
	if len(p.voices) > 0 {
		p.selectedVoice = p.voices[0].ID
	}
	return p
}

func (p *audioPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.script.SetWidth(max(20, width-10))
	p.uploadInput.Width = max(20, width-20)
}

func (p *audioPanel) Update(msg tea.Msg) (panelModel, tea.Cmd) {
	switch msg := msg.(type) {
	case previewDoneMsg:
		if p.playingID == msg.id {
			p.playingID = ""
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *audioPanel) handleKey(msg tea.KeyMsg) (panelModel, tea.Cmd) {
	if p.uploading {
		return p.handleUploadKey(msg)
	}

	switch msg.String() {
	case "esc":
		return p, emit(panelCloseMsg{})
	case "tab":
		if p.tab == tabVoice {
			p.tab = tabMusic
		} else {
			p.tab = tabVoice
		}
		return p, nil
	case "ctrl+a":
		return p, emit(applyScriptMsg{text: p.script.Value()})
	}

	if p.tab == tabMusic {
		return p.handleMusicKey(msg)
	}
	return p.handleVoiceKey(msg)
}

func (p *audioPanel) handleVoiceKey(msg tea.KeyMsg) (panelModel, tea.Cmd) {
	if msg.String() == "shift+tab" {
		p.cycleVoiceFocus()
		return p, nil
	}

	switch p.focus {
	case focusScript:
		var cmd tea.Cmd
		p.script, cmd = p.script.Update(msg)
		return p, cmd

	case focusVoices:
		switch msg.String() {
		case "up", "k":
			if p.voiceCursor > 0 {
				p.voiceCursor--
			}
		case "down", "j":
			if p.voiceCursor < len(p.voices)-1 {
				p.voiceCursor++
			}
		case "enter":
			if len(p.voices) > 0 {
				p.selectedVoice = p.voices[p.voiceCursor].ID
			}
		case "p":
			return p, p.previewVoice()
		}

	case focusSliders:
		switch msg.String() {
		case "up", "k":
			if p.sliderFocus > sliderSpeed {
				p.sliderFocus--
			}
		case "down", "j":
			if p.sliderFocus < sliderEmphasis {
				p.sliderFocus++
			}
		case "left", "h":
			p.adjustSlider(-sliderStep)
		case "right", "l":
			p.adjustSlider(sliderStep)
		}
	}
	return p, nil
}

func (p *audioPanel) handleMusicKey(msg tea.KeyMsg) (panelModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if p.trackCursor > 0 {
			p.trackCursor--
		}
	case "down", "j":
		if p.trackCursor < len(p.tracks)-1 {
			p.trackCursor++
		}
	case "enter":
		if len(p.tracks) > 0 {
			p.selectedTrack = p.tracks[p.trackCursor].ID
		}
	case "p":
		p.toggleTrack()
	case "u":
		p.uploading = true
		p.uploadInput.SetValue("")
		p.uploadInput.Focus()
	}
	return p, nil
}

func (p *audioPanel) handleUploadKey(msg tea.KeyMsg) (panelModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.uploading = false
		p.uploadInput.Blur()
		return p, nil
	case "enter":
		path := strings.TrimSpace(p.uploadInput.Value())
		p.uploading = false
		p.uploadInput.Blur()
		if path == "" {
			return p, nil
		}
		return p, emit(uploadTrackMsg{path: path})
	}
	var cmd tea.Cmd
	p.uploadInput, cmd = p.uploadInput.Update(msg)
	return p, cmd
}

func (p *audioPanel) cycleVoiceFocus() {
	switch p.focus {
	case focusScript:
		p.focus = focusVoices
		p.script.Blur()
	case focusVoices:
		p.focus = focusSliders
	default:
		p.focus = focusScript
		p.script.Focus()
	}
}

// previewVoice starts playback of the voice under the cursor. Starting a new
// preview replaces whatever was playing; only one playing id exists at a time.
func (p *audioPanel) previewVoice() tea.Cmd {
	if len(p.voices) == 0 {
		return nil
	}
	id := p.voices[p.voiceCursor].ID
	p.playingID = id
	return tea.Tick(p.previewDur, func(time.Time) tea.Msg {
		return previewDoneMsg{id: id}
	})
}

// toggleTrack starts or stops the track under the cursor. Track playback has
// no auto-stop.
func (p *audioPanel) toggleTrack() {
	if len(p.tracks) == 0 {
		return
	}
	id := p.tracks[p.trackCursor].ID
	if p.playingID == id {
		p.playingID = ""
		return
	}
	p.playingID = id
}

func (p *audioPanel) adjustSlider(delta int) {
	switch p.sliderFocus {
	case sliderSpeed:
		p.speed = clamp(p.speed+delta, 0, 100)
	case sliderPitch:
		p.pitch = clamp(p.pitch+delta, 0, 100)
	case sliderEmphasis:
		p.emphasis = clamp(p.emphasis+delta, 0, 100)
	}
}

func (p *audioPanel) View() string {
	var b strings.Builder
	b.WriteString(p.theme.PaneTitle.Render("Audio Mixer"))
	b.WriteString("  ")
	b.WriteString(p.renderTabs())
	b.WriteString("\n")

	if p.tab == tabVoice {
		b.WriteString(p.theme.ListMeta.Render("shift+tab focus • p preview • ctrl+a apply script • esc back"))
		b.WriteString("\n\n")
		b.WriteString(p.renderVoiceTab())
	} else {
		b.WriteString(p.theme.ListMeta.Render("p play/stop • u upload • esc back"))
		b.WriteString("\n\n")
		b.WriteString(p.renderMusicTab())
	}

	return p.theme.Pane.Width(max(30, p.width-2)).Render(b.String())
}

func (p *audioPanel) renderTabs() string {
	voice := p.theme.TabInactive.Render("voice")
	music := p.theme.TabInactive.Render("music")
	if p.tab == tabVoice {
		voice = p.theme.TabActive.Render("voice")
	} else {
		music = p.theme.TabActive.Render("music")
	}
	return voice + p.theme.ListMeta.Render(" │ ") + music
}

func (p *audioPanel) renderVoiceTab() string {
	var b strings.Builder

	title := "Script"
	if p.focus == focusScript {
		title = "Script (editing)"
	}
	b.WriteString(p.theme.SliderLabel.Render(title))
	b.WriteString("\n")
	b.WriteString(p.script.View())
	b.WriteString("\n\n")

	b.WriteString(p.theme.SliderLabel.Render("Voices"))
	b.WriteString("\n")
	rowWidth := max(20, p.width-10)
	for i, v := range p.voices {
		marker := " "
		if v.ID == p.selectedVoice {
			marker = "●"
		}
		playing := ""
		if p.playingID == v.ID {
			playing = "  ♪ playing"
		}
		line := fmt.Sprintf("%s %s — %s%s", marker, v.Name, v.Style, playing)
		line = truncate.StringWithTail(line, uint(rowWidth), "…")

		style := p.theme.ListRow
		prefix := "  "
		if p.focus == focusVoices && i == p.voiceCursor {
			prefix = "› "
			style = p.theme.ListSel
		}
		b.WriteString(style.Render(prefix + line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.renderSlider("speed", p.speed, sliderSpeed))
	b.WriteString("\n")
	b.WriteString(p.renderSlider("pitch", p.pitch, sliderPitch))
	b.WriteString("\n")
	b.WriteString(p.renderSlider("emphasis", p.emphasis, sliderEmphasis))

	return b.String()
}

func (p *audioPanel) renderMusicTab() string {
	var b strings.Builder
	b.WriteString(p.theme.SliderLabel.Render("Tracks"))
	b.WriteString("\n")
	rowWidth := max(20, p.width-10)
	for i, tr := range p.tracks {
		marker := " "
		if tr.ID == p.selectedTrack {
			marker = "●"
		}
		playing := ""
		if p.playingID == tr.ID {
			playing = "  ♪ playing"
		}
		line := fmt.Sprintf("%s %s  %s  %s%s", marker, tr.Title, tr.Duration, tr.Mood, playing)
		line = truncate.StringWithTail(line, uint(rowWidth), "…")

		style := p.theme.ListRow
		prefix := "  "
		if i == p.trackCursor {
			prefix = "› "
			style = p.theme.ListSel
		}
		b.WriteString(style.Render(prefix + line))
		b.WriteString("\n")
	}

	if p.uploading {
		b.WriteString("\n")
		b.WriteString(p.theme.SliderLabel.Render("Upload track (enter to confirm, esc to cancel)"))
		b.WriteString("\n")
		b.WriteString(p.uploadInput.View())
	}

	return b.String()
}

func (p *audioPanel) renderSlider(label string, value int, kind audioSlider) string {
	const cells = 10
	filled := value / cells
	bar := strings.Repeat("█", filled) + strings.Repeat("░", cells-filled)

	prefix := "  "
	labelStyle := p.theme.SliderLabel
	if p.focus == focusSliders && p.sliderFocus == kind {
		prefix = "› "
		labelStyle = p.theme.ListSel
	}
	return fmt.Sprintf("%s%s [%s] %s",
		prefix,
		labelStyle.Render(fmt.Sprintf("%-8s", label)),
		bar,
		p.theme.SliderValue.Render(fmt.Sprintf("%3d", value)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
