package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Theme            string `yaml:"theme"`
	ReplyDelayMs     int    `yaml:"reply_delay_ms"`
	VoicePreviewSecs int    `yaml:"voice_preview_secs"`
	CatalogPath      string `yaml:"catalog"`
	LogFile          string `yaml:"log_file"`
	ShowTimestamps   bool   `yaml:"show_timestamps"`
	Verbose          bool   `yaml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		Theme:            "porcelain",
		ReplyDelayMs:     1000,
		VoicePreviewSecs: 3,
		ShowTimestamps:   true,
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Theme == "" {
		cfg.Theme = "porcelain"
	}
	if cfg.ReplyDelayMs < 0 {
		cfg.ReplyDelayMs = 1000
	}
	if cfg.VoicePreviewSecs <= 0 {
		cfg.VoicePreviewSecs = 3
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "storycut", "config.yml")
}

// DefaultLogPath is where the TUI logger writes; stdout belongs to the UI.
func DefaultLogPath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "storycut.log")
	}
	return filepath.Join(base, "storycut", "storycut.log")
}
