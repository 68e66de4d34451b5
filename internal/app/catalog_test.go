package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogInvariants(t *testing.T) {
	c := DefaultCatalog()

	if len(c.Scenes) < 3 {
		t.Fatalf("need at least 3 scenes for scene options, got %d", len(c.Scenes))
	}
	seen := map[int]bool{}
	for _, s := range c.Scenes {
		if seen[s.ID] {
			t.Fatalf("duplicate scene id %d", s.ID)
		}
		seen[s.ID] = true
		if s.Thumbnail == "" || s.TimeRange == "" {
			t.Fatalf("scene %d missing placeholder data: %+v", s.ID, s)
		}
	}
	if len(c.Voices) == 0 || len(c.Tracks) == 0 {
		t.Fatalf("expected voices and tracks in the default catalog")
	}
}

func TestSceneByID(t *testing.T) {
	c := DefaultCatalog()

	s, ok := c.SceneByID(1)
	if !ok || s.ID != 1 {
		t.Fatalf("SceneByID(1) = %+v, %v", s, ok)
	}
	if _, ok := c.SceneByID(999); ok {
		t.Fatalf("expected lookup miss for unknown id")
	}
}

func TestLoadCatalog_OverridesScenesKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	data := `scenes:
  - id: 10
    thumbnail: custom/one.png
    time_range: 00:00–00:04
  - id: 11
    thumbnail: custom/two.png
    time_range: 00:04–00:09
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Scenes) != 2 || c.Scenes[0].ID != 10 {
		t.Fatalf("scenes not overridden: %+v", c.Scenes)
	}
	if len(c.Voices) == 0 || len(c.Tracks) == 0 {
		t.Fatalf("expected default voices/tracks to fill missing sections")
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatalf("expected error for missing catalog file")
	}
}
