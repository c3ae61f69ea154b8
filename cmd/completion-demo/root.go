package main

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	complete "github.com/iw2rmb/flourish-complete"
	"github.com/iw2rmb/flourish-complete/internal/config"
	"github.com/iw2rmb/flourish-complete/internal/logging"
)

type rootOptions struct {
	configPath string
	horizontal bool
	logFile    string
	logLevel   string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:   "completion-demo",
		Short: "Terminal editor with a caret-anchored completion popup",
		Long: `completion-demo opens a small editor. Type a word, or press ctrl+space,
to open the completion popup. Arrows move the selection, enter or tab accepts,
esc dismisses and ctrl+c quits. The popup also follows the mouse.`,
		Version:      complete.Version(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if opts.noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultConfigPath(), "config file")
	f.BoolVar(&opts.horizontal, "horizontal", false, "lay candidates out as a horizontal strip")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.BoolVar(&opts.noColor, "no-color", false, "render without colors")

	cmd.AddCommand(newLogCmd(&opts), newConfigCmd(&opts))
	return cmd
}

// loadConfig loads the config file and applies the flags that were set.
func loadConfig(cmd *cobra.Command, opts rootOptions) (*config.Config, error) {
	cfg, err := config.LoadFrom(opts.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("horizontal") {
		cfg.Popup.Horizontal = opts.horizontal
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid flags: %w", err)
		}
	}
	return cfg, nil
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger, closeLog, err := logging.Setup(logging.Options{Path: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	words, err := cfg.LoadWords()
	if err != nil {
		return err
	}
	logger.Info("starting completion demo",
		"version", complete.Version(),
		"words", len(words),
		"horizontal", cfg.Popup.Horizontal,
		"metrics", cfg.Popup.Metrics,
	)

	p := tea.NewProgram(
		newModel(cfg, words, logger),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		slog.Error("completion demo failed", "err", err)
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
