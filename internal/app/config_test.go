package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != "porcelain" {
		t.Fatalf("DefaultConfig().Theme = %q, want %q", cfg.Theme, "porcelain")
	}
	if cfg.ReplyDelayMs != 1000 {
		t.Fatalf("DefaultConfig().ReplyDelayMs = %d, want 1000", cfg.ReplyDelayMs)
	}
	if cfg.VoicePreviewSecs != 3 {
		t.Fatalf("DefaultConfig().VoicePreviewSecs = %d, want 3", cfg.VoicePreviewSecs)
	}
}

func TestLoadConfig_MissingFileFallsBack(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults for missing file, got %+v", cfg)
	}
}

func TestLoadConfig_NormalizesBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "theme: \"\"\nreply_delay_ms: -5\nvoice_preview_secs: 0\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Theme != "porcelain" || cfg.ReplyDelayMs != 1000 || cfg.VoicePreviewSecs != 3 {
		t.Fatalf("bad values not normalized: %+v", cfg)
	}
}

func TestSaveConfigRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	want := Config{
		Theme:            "midnight",
		ReplyDelayMs:     250,
		VoicePreviewSecs: 5,
		ShowTimestamps:   true,
	}

	if err := SaveConfig(want, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != want {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, want)
	}
}
