package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(DefaultCatalog(), nil, time.Second, nil)
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	tick := 0
	s.SetClock(func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	})
	return s
}

func TestSendMessage_EmptyInputIsNoOp(t *testing.T) {
	s := newTestSession(t)

	for _, input := range []string{"", "   ", "\n\t "} {
		_, pending, ok := s.SendMessage(input)
		require.False(t, ok)
		require.Nil(t, pending)
	}
	require.Empty(t, s.Messages())
}

func TestSendMessage_AppendsUserAndSchedulesReply(t *testing.T) {
	s := newTestSession(t)

	msg, pending, ok := s.SendMessage("  hello there  ")
	require.True(t, ok)
	require.Equal(t, AuthorUser, msg.Author)
	require.Equal(t, "hello there", msg.Body)
	require.Equal(t, time.Second, pending.Delay)

	// User message is in the log immediately; the reply is not.
	require.Len(t, s.Messages(), 1)

	reply, ok := s.Deliver(pending)
	require.True(t, ok)
	require.Equal(t, AuthorAssistant, reply.Author)
	require.Len(t, s.Messages(), 2)
}

func TestDeliver_OnlyOnce(t *testing.T) {
	s := newTestSession(t)
	_, pending, _ := s.SendMessage("hi")

	_, ok := s.Deliver(pending)
	require.True(t, ok)
	_, ok = s.Deliver(pending)
	require.False(t, ok)
	require.Len(t, s.Messages(), 2)
}

func TestDeliver_AfterCloseIsNoOp(t *testing.T) {
	s := newTestSession(t)
	_, pending, _ := s.SendMessage("hi")

	s.Close()
	_, ok := s.Deliver(pending)
	require.False(t, ok)
	require.Len(t, s.Messages(), 1)
}

func TestMessageIDsStrictlyIncreasing(t *testing.T) {
	s := newTestSession(t)

	for _, text := range []string{"one", "two", "replace the scene"} {
		_, pending, ok := s.SendMessage(text)
		require.True(t, ok)
		_, ok = s.Deliver(pending)
		require.True(t, ok)
	}

	msgs := s.Messages()
	require.Len(t, msgs, 6)
	for i := 1; i < len(msgs); i++ {
		require.Greater(t, msgs[i].ID, msgs[i-1].ID)
	}
}

func TestSelectScene_UnknownIDRejected(t *testing.T) {
	s := newTestSession(t)

	err := s.SelectScene(99)
	require.ErrorIs(t, err, ErrUnknownScene)
	_, ok := s.ActiveScene()
	require.False(t, ok)

	require.NoError(t, s.SelectScene(2))
	scene, ok := s.ActiveScene()
	require.True(t, ok)
	require.Equal(t, 2, scene.ID)

	// A later bad id keeps the previous selection.
	require.ErrorIs(t, s.SelectScene(-1), ErrUnknownScene)
	scene, _ = s.ActiveScene()
	require.Equal(t, 2, scene.ID)
}

func TestPanels_MutuallyExclusive(t *testing.T) {
	s := newTestSession(t)
	require.Equal(t, PanelNone, s.ActivePanel())

	require.True(t, s.OpenPanel(PanelAudio))
	require.Equal(t, PanelAudio, s.ActivePanel())

	// Second open is rejected until the first panel closes.
	require.False(t, s.OpenPanel(PanelScenes))
	require.Equal(t, PanelAudio, s.ActivePanel())

	s.ClosePanel()
	require.Equal(t, PanelNone, s.ActivePanel())

	// ClosePanel is idempotent.
	s.ClosePanel()
	require.Equal(t, PanelNone, s.ActivePanel())

	require.True(t, s.OpenPanel(PanelScenes))
	require.Equal(t, PanelScenes, s.ActivePanel())
}

func TestOpenPanel_RejectsNoneAndClosed(t *testing.T) {
	s := newTestSession(t)
	require.False(t, s.OpenPanel(PanelNone))

	s.Close()
	require.False(t, s.OpenPanel(PanelAudio))
}

func TestChangeSceneScenario(t *testing.T) {
	s := newTestSession(t)

	_, pending, ok := s.SendMessage("change scene")
	require.True(t, ok)

	reply, ok := s.Deliver(pending)
	require.True(t, ok)
	require.Len(t, s.Messages(), 2)
	require.Len(t, reply.Attachments, 1)
	require.Equal(t, AttachmentSceneOptions, reply.Attachments[0].Kind)
	require.Len(t, reply.Attachments[0].Scenes, 3)
}

func TestApplyScript_ForwardsToSink(t *testing.T) {
	var got []string
	sink := scriptSinkFunc(func(text string) error {
		got = append(got, text)
		return nil
	})
	s := NewSession(DefaultCatalog(), sink, time.Second, nil)

	require.NoError(t, s.ApplyScript("final narration"))
	require.Equal(t, []string{"final narration"}, got)
	require.Empty(t, s.Messages())

	s.Close()
	require.ErrorIs(t, s.ApplyScript("late"), ErrSessionClosed)
	require.Len(t, got, 1)
}

type scriptSinkFunc func(string) error

func (f scriptSinkFunc) ApplyScript(text string) error { return f(text) }
