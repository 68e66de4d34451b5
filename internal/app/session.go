package app

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrUnknownScene is returned when a scene id is not in the catalog.
	ErrUnknownScene = errors.New("unknown scene id")
	// ErrSessionClosed is returned by operations on a torn-down session.
	ErrSessionClosed = errors.New("session closed")
)

type Author string

const (
	AuthorUser      Author = "user"
	AuthorAssistant Author = "assistant"
)

type AttachmentKind string

const (
	AttachmentSceneOptions AttachmentKind = "scene_options"
	AttachmentScriptDraft  AttachmentKind = "script_draft"
)

// SceneOption is one replacement candidate offered by the assistant.
type SceneOption struct {
	SceneID   int
	Thumbnail string
	TimeRange string
}

// Attachment is structured payload on an assistant message beyond plain text.
// Scenes is set for scene_options, Script for script_draft.
type Attachment struct {
	Kind   AttachmentKind
	Scenes []SceneOption
	Script string
}

// Message is one entry in the session's append-only chat log. Immutable once
// appended; IDs are monotonic within a session regardless of author.
type Message struct {
	ID          int
	Author      Author
	Body        string
	Timestamp   time.Time
	Attachments []Attachment
}

// PanelKind is the tagged panel state. Holding a single field makes
// "at most one panel open" a structural property rather than a convention.
type PanelKind int

const (
	PanelNone PanelKind = iota
	PanelScenes
	PanelAudio
	PanelSettings
)

func (k PanelKind) String() string {
	switch k {
	case PanelScenes:
		return "scenes"
	case PanelAudio:
		return "audio"
	case PanelSettings:
		return "settings"
	default:
		return "none"
	}
}

// PendingReply is a reply the session has computed but not yet appended. The
// caller owns scheduling: deliver it after Delay. Delivery on a closed session
// is a safe no-op, so teardown never races a stale timer.
type PendingReply struct {
	Delay     time.Duration
	body      string
	atts      []Attachment
	delivered bool
}

// Session owns one chat-editing interaction: the message log, the active
// scene, and whichever tool panel is open. Not safe for concurrent use; it is
// driven by a single event loop.
type Session struct {
	id         string
	catalog    *Catalog
	scripts    ScriptSink
	logger     *zap.Logger
	clock      func() time.Time
	replyDelay time.Duration

	messages    []Message
	nextID      int
	activeScene int // 0 means no scene selected; catalog ids start at 1
	panel       PanelKind
	closed      bool
}

// NewSession builds a session against a catalog. A nil logger is replaced
// with a nop logger; a nil sink with a logging stub.
func NewSession(catalog *Catalog, scripts ScriptSink, replyDelay time.Duration, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	if scripts == nil {
		scripts = &LogScriptSink{Logger: logger}
	}
	return &Session{
		id:         uuid.NewString(),
		catalog:    catalog,
		scripts:    scripts,
		logger:     logger,
		clock:      time.Now,
		replyDelay: replyDelay,
		nextID:     1,
	}
}

func (s *Session) ID() string        { return s.id }
func (s *Session) Catalog() *Catalog { return s.catalog }

// SetClock overrides the timestamp source. Test hook.
func (s *Session) SetClock(clock func() time.Time) {
	if clock != nil {
		s.clock = clock
	}
}

// SetReplyDelay changes the delay applied to replies scheduled from now on.
func (s *Session) SetReplyDelay(d time.Duration) {
	if d >= 0 {
		s.replyDelay = d
	}
}

// Messages returns a copy of the chat log.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) LastMessage() (Message, bool) {
	if len(s.messages) == 0 {
		return Message{}, false
	}
	return s.messages[len(s.messages)-1], true
}

// SendMessage appends a user message and computes its canned reply. Inputs
// that trim to empty are ignored (ok=false, nothing appended). The returned
// PendingReply must be handed back via Deliver once its Delay has elapsed.
func (s *Session) SendMessage(text string) (Message, *PendingReply, bool) {
	text = strings.TrimSpace(text)
	if text == "" || s.closed {
		return Message{}, nil, false
	}

	msg := s.append(AuthorUser, text, nil)
	body, atts := Simulate(text, s.catalog)
	s.logger.Debug("message sent",
		zap.String("session", s.id),
		zap.Int("message_id", msg.ID),
		zap.Duration("reply_delay", s.replyDelay))

	return msg, &PendingReply{Delay: s.replyDelay, body: body, atts: atts}, true
}

// Deliver appends the assistant message for a previously scheduled reply.
// No-op when the session is closed or the reply was already delivered.
func (s *Session) Deliver(p *PendingReply) (Message, bool) {
	if p == nil || p.delivered || s.closed {
		return Message{}, false
	}
	p.delivered = true
	return s.append(AuthorAssistant, p.body, p.atts), true
}

// SelectScene makes the given catalog scene the active one. Unknown ids are
// rejected with ErrUnknownScene and leave the session untouched.
func (s *Session) SelectScene(id int) error {
	if s.closed {
		return ErrSessionClosed
	}
	if _, ok := s.catalog.SceneByID(id); !ok {
		return ErrUnknownScene
	}
	s.activeScene = id
	s.logger.Debug("scene selected", zap.String("session", s.id), zap.Int("scene", id))
	return nil
}

// ActiveScene reports the selected scene, if any.
func (s *Session) ActiveScene() (Scene, bool) {
	if s.activeScene == 0 {
		return Scene{}, false
	}
	return s.catalog.SceneByID(s.activeScene)
}

// OpenPanel transitions Viewing → PanelOpen(kind). Opening while another
// panel is up is rejected; the caller must close it first.
func (s *Session) OpenPanel(kind PanelKind) bool {
	if s.closed || kind == PanelNone || s.panel != PanelNone {
		return false
	}
	s.panel = kind
	return true
}

// ClosePanel returns to Viewing. Idempotent.
func (s *Session) ClosePanel() {
	s.panel = PanelNone
}

func (s *Session) ActivePanel() PanelKind { return s.panel }

// ApplyScript forwards the narration text to the script sink. Session state
// is unaffected.
func (s *Session) ApplyScript(text string) error {
	if s.closed {
		return ErrSessionClosed
	}
	return s.scripts.ApplyScript(text)
}

// Close tears the session down. Pending replies become no-ops.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.panel = PanelNone
	s.logger.Debug("session closed", zap.String("session", s.id), zap.Int("messages", len(s.messages)))
}

func (s *Session) Closed() bool { return s.closed }

func (s *Session) append(author Author, body string, atts []Attachment) Message {
	msg := Message{
		ID:          s.nextID,
		Author:      author,
		Body:        body,
		Timestamp:   s.clock(),
		Attachments: atts,
	}
	s.nextID++
	s.messages = append(s.messages, msg)
	return msg
}
