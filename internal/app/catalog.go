package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene is one cut of the working video. Identity is the ID; the thumbnail is
// an opaque reference resolved by whatever renders it.
type Scene struct {
	ID        int    `yaml:"id"`
	Thumbnail string `yaml:"thumbnail"`
	TimeRange string `yaml:"time_range"`
}

// Voice is a narration voice the audio mixer can preview.
type Voice struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Style  string `yaml:"style"`
	Sample string `yaml:"sample"`
}

// Track is a background music option.
type Track struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Mood     string `yaml:"mood"`
	Duration string `yaml:"duration"`
}

// Catalog holds the static media the editor works against. A real backend
// would serve these; here they are placeholder data, optionally overridden by
// a user-supplied YAML file.
type Catalog struct {
	Scenes []Scene `yaml:"scenes"`
	Voices []Voice `yaml:"voices"`
	Tracks []Track `yaml:"tracks"`
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		Scenes: []Scene{
			{ID: 1, Thumbnail: "assets/thumbs/scene-01.png", TimeRange: "00:00–00:07"},
			{ID: 2, Thumbnail: "assets/thumbs/scene-02.png", TimeRange: "00:07–00:15"},
			{ID: 3, Thumbnail: "assets/thumbs/scene-03.png", TimeRange: "00:15–00:22"},
			{ID: 4, Thumbnail: "assets/thumbs/scene-04.png", TimeRange: "00:22–00:31"},
			{ID: 5, Thumbnail: "assets/thumbs/scene-05.png", TimeRange: "00:31–00:40"},
		},
		Voices: []Voice{
			{ID: "voice-ava", Name: "Ava", Style: "warm narrator", Sample: "assets/voices/ava.wav"},
			{ID: "voice-ben", Name: "Ben", Style: "deep documentary", Sample: "assets/voices/ben.wav"},
			{ID: "voice-iris", Name: "Iris", Style: "bright explainer", Sample: "assets/voices/iris.wav"},
			{ID: "voice-noah", Name: "Noah", Style: "casual vlog", Sample: "assets/voices/noah.wav"},
		},
		Tracks: []Track{
			{ID: "track-drift", Title: "Drift", Mood: "ambient", Duration: "2:41"},
			{ID: "track-pulse", Title: "Pulse", Mood: "upbeat electronic", Duration: "3:05"},
			{ID: "track-ember", Title: "Ember", Mood: "cinematic", Duration: "2:18"},
			{ID: "track-meadow", Title: "Meadow", Mood: "acoustic", Duration: "3:29"},
		},
	}
}

// LoadCatalog reads a YAML catalog from disk. Sections missing from the file
// fall back to the defaults so a user can override only the scenes.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c := &Catalog{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	def := DefaultCatalog()
	if len(c.Scenes) == 0 {
		c.Scenes = def.Scenes
	}
	if len(c.Voices) == 0 {
		c.Voices = def.Voices
	}
	if len(c.Tracks) == 0 {
		c.Tracks = def.Tracks
	}
	return c, nil
}

func (c *Catalog) SceneByID(id int) (Scene, bool) {
	for _, s := range c.Scenes {
		if s.ID == id {
			return s, true
		}
	}
	return Scene{}, false
}

func (c *Catalog) VoiceByID(id string) (Voice, bool) {
	for _, v := range c.Voices {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}

func (c *Catalog) TrackByID(id string) (Track, bool) {
	for _, t := range c.Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}
