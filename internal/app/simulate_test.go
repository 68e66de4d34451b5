package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimulate_SceneKeywords(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name  string
		input string
	}{
		{name: "replace", input: "please replace this scene"},
		{name: "change scene", input: "can you change scene two?"},
		{name: "case insensitive", input: "REPLACE the intro"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, atts := Simulate(tc.input, catalog)
			require.NotEmpty(t, body)
			require.Len(t, atts, 1)
			require.Equal(t, AttachmentSceneOptions, atts[0].Kind)
			require.Len(t, atts[0].Scenes, 3)
		})
	}
}

func TestSimulate_ScriptKeywords(t *testing.T) {
	catalog := DefaultCatalog()

	for _, input := range []string{"edit the script", "change the text overlay", "SCRIPT please"} {
		body, atts := Simulate(input, catalog)
		require.NotEmpty(t, body)
		require.Len(t, atts, 1)
		require.Equal(t, AttachmentScriptDraft, atts[0].Kind)
		require.Equal(t, DefaultScriptDraft, atts[0].Script)
		require.Empty(t, atts[0].Scenes)
	}
}

func TestSimulate_GenericFallback(t *testing.T) {
	body, atts := Simulate("hello", DefaultCatalog())
	require.NotEmpty(t, body)
	require.Empty(t, atts)
}

func TestSimulate_SceneRuleWinsOverScript(t *testing.T) {
	// Input matches both rules; the scene rule has priority.
	_, atts := Simulate("replace the script in this scene", DefaultCatalog())
	require.Len(t, atts, 1)
	require.Equal(t, AttachmentSceneOptions, atts[0].Kind)
}

func TestSimulate_Deterministic(t *testing.T) {
	catalog := DefaultCatalog()
	for _, input := range []string{"replace it", "fix the text", "what can you do"} {
		body1, atts1 := Simulate(input, catalog)
		body2, atts2 := Simulate(input, catalog)
		require.Equal(t, body1, body2)
		require.Equal(t, atts1, atts2)
	}
}

func TestSimulate_SceneOptionsComeFromCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	_, atts := Simulate("replace", catalog)
	require.Len(t, atts, 1)
	for i, opt := range atts[0].Scenes {
		require.Equal(t, catalog.Scenes[i].ID, opt.SceneID)
		require.Equal(t, catalog.Scenes[i].Thumbnail, opt.Thumbnail)
	}
}
