package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkmatch/inkdeck/internal/config"
	"github.com/inkmatch/inkdeck/internal/theme"
	"github.com/inkmatch/inkdeck/internal/tui"
)

func newShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Launch the interactive showcase",
		Long:  `Launch the interactive terminal showcase: browse cards with the arrow keys or the mouse, open watch links, and flip the theme.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(flags)
		},
	}
}

func runShow(flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the showcase needs an interactive terminal")
	}

	log := flags.newLogger()

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	statePath, err := defaultThemeStatePath()
	if err != nil {
		return fmt.Errorf("failed to determine theme state path: %w", err)
	}

	fallback := theme.SystemMode()
	switch cfg.Settings.Theme {
	case "light":
		fallback = theme.ModeLight
	case "dark":
		fallback = theme.ModeDark
	}

	store, err := theme.NewStore(statePath, fallback)
	if err != nil {
		return fmt.Errorf("failed to load theme state: %w", err)
	}

	log.WithFields(map[string]any{
		"items": len(cfg.Items),
		"mode":  string(store.Mode()),
	}).Info("launching showcase")

	m := tui.NewModel(
		cfg.Title,
		cfg.Tagline,
		cfg.CarouselItems(),
		store,
		time.Duration(cfg.Settings.NudgeIntervalSeconds)*time.Second,
	)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error(err, "showcase terminated")
		return fmt.Errorf("showcase failed: %w", err)
	}

	return nil
}

// loadConfig resolves the showcase file: an explicit --config wins, then a
// synced content checkout, then the user config directory. An explicitly
// passed path must exist; a missing default degrades to the neutral empty
// showcase instead of failing.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.configPath != "" {
		return config.ParseConfig(flags.configPath)
	}

	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.ParseConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return &config.Config{Version: "1.0", Title: "InkMatch"}, nil
	}
	return cfg, err
}

func resolveConfigPath() (string, error) {
	if dir, err := defaultContentDir(); err == nil {
		candidate := filepath.Join(dir, "showcase.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return defaultConfigPath()
}
