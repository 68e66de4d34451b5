package app

import "strings"

// DefaultScriptDraft is the canned narration the simulator offers whenever the
// user asks for script or text changes.
const DefaultScriptDraft = "In this video we take a closer look at the product, walk through the three features people ask about most, and finish with a quick before-and-after comparison."

const (
	sceneReplyBody = "Here are three alternate takes for this scene. Pick the one that fits best, or open the scene browser with /scenes."

	scriptReplyBody = "Here's a draft narration script. Tweak it in the audio mixer (/audio) and apply it when it reads right:"

	genericReplyBody = "I can help you edit this video. A few things to try:\n" +
		"  • \"replace this scene\" to browse alternate takes\n" +
		"  • \"rewrite the script\" to get a narration draft\n" +
		"  • /audio to pick a voice and background track"
)

// Simulate maps free-text user input to a canned assistant reply. First match
// wins; matching is a case-insensitive substring check. Given the same input
// and catalog it always produces the same reply.
func Simulate(input string, catalog *Catalog) (string, []Attachment) {
	lower := strings.ToLower(input)

	switch {
	case strings.Contains(lower, "replace") || strings.Contains(lower, "change scene"):
		return sceneReplyBody, []Attachment{{
			Kind:   AttachmentSceneOptions,
			Scenes: sceneOptions(catalog),
		}}

	case strings.Contains(lower, "script") || strings.Contains(lower, "text"):
		return scriptReplyBody, []Attachment{{
			Kind:   AttachmentScriptDraft,
			Script: DefaultScriptDraft,
		}}

	default:
		return genericReplyBody, nil
	}
}

// sceneOptions picks the first three catalog scenes as replacement candidates.
func sceneOptions(catalog *Catalog) []SceneOption {
	opts := make([]SceneOption, 0, 3)
	for _, s := range catalog.Scenes {
		opts = append(opts, SceneOption{
			SceneID:   s.ID,
			Thumbnail: s.Thumbnail,
			TimeRange: s.TimeRange,
		})
		if len(opts) == 3 {
			break
		}
	}
	return opts
}
