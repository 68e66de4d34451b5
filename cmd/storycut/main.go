package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"storycut/internal/app"
	"storycut/internal/tui"
)

const version = "0.3.0"

var (
	flagTheme   string
	flagCatalog string
	flagDelayMs int
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:     "storycut",
		Short:   "storycut - chat-driven video editing in the terminal",
		Long:    "storycut is a terminal UI for editing a video through chat.\n\nDescribe an edit in plain language and the assistant offers scene takes and\nscript drafts; the scene browser, audio mixer, and settings panels are a\nkeystroke away. All assistant behavior is simulated and all media is\nplaceholder data, so it runs fully offline.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	root.PersistentFlags().StringVar(&flagTheme, "theme", "", "theme: porcelain|midnight|no-color")
	root.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "path to a YAML media catalog")
	root.PersistentFlags().IntVar(&flagDelayMs, "reply-delay-ms", -1, "assistant reply delay in milliseconds")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	replyCmd := &cobra.Command{
		Use:   "reply [input]",
		Short: "Print the canned assistant reply for an input",
		Long:  "Run the response simulator once, without the TUI.\n\nExamples:\n  - storycut reply \"replace this scene\"\n  - echo \"rewrite the script\" | storycut reply",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 0 {
				input = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("error reading input: %w", err)
				}
				input = strings.TrimSpace(string(data))
			}
			if input == "" {
				return fmt.Errorf("no input provided")
			}
			return runReply(input)
		},
	}
	root.AddCommand(replyCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (app.Config, string, error) {
	path := app.DefaultConfigPath()
	cfg, err := app.LoadConfig(path)
	if err != nil {
		return cfg, path, err
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if flagCatalog != "" {
		cfg.CatalogPath = flagCatalog
	}
	if flagDelayMs >= 0 {
		cfg.ReplyDelayMs = flagDelayMs
	}
	if flagVerbose {
		cfg.Verbose = true
	}
	return cfg, path, nil
}

func buildCatalog(cfg app.Config) (*app.Catalog, error) {
	if cfg.CatalogPath != "" {
		return app.LoadCatalog(cfg.CatalogPath)
	}
	return app.DefaultCatalog(), nil
}

func runTUI() error {
	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := app.NewLogger(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	catalog, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	delay := time.Duration(cfg.ReplyDelayMs) * time.Millisecond
	session := app.NewSession(catalog, &app.LogScriptSink{Logger: logger}, delay, logger)
	defer session.Close()

	store := &app.LogTrackStore{Logger: logger}
	p := tea.NewProgram(tui.New(session, cfg, cfgPath, store, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runReply(input string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	body, atts := app.Simulate(input, catalog)
	fmt.Println(body)
	for _, att := range atts {
		switch att.Kind {
		case app.AttachmentSceneOptions:
			fmt.Println()
			for i, opt := range att.Scenes {
				fmt.Printf("  [%d] scene %02d  %s  %s\n", i+1, opt.SceneID, opt.TimeRange, opt.Thumbnail)
			}
		case app.AttachmentScriptDraft:
			fmt.Println()
			fmt.Println("  " + att.Script)
		}
	}
	return nil
}
