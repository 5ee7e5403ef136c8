package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flow/internal/config"
	"github.com/vovakirdan/tui-flow/internal/core"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels"
	"github.com/vovakirdan/tui-flow/internal/platform/tui"
	"github.com/vovakirdan/tui-flow/internal/storage"
)

// loadConfig reads the config file and applies the global flags.
func loadConfig(o config.Overrides) (config.FlowConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	o.LevelsDir = flagLevels
	o.DBPath = flagDBPath
	o.Theme = flagTheme
	if err := cfg.Apply(o); err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "levels", cfg.Levels.Dir, "theme", cfg.Display.Theme, "records", cfg.Records.Enabled)
	return cfg, nil
}

// levelLoader opens the configured pack, logging skipped files.
func levelLoader(cfg config.FlowConfig) (*levels.Loader, error) {
	dir, err := config.ExpandHome(cfg.Levels.Dir)
	if err != nil {
		return nil, err
	}
	loader := levels.Open(dir)
	loader.OnSkip = func(path string, err error) {
		logger.Warn("skipping level file", "path", path, "error", err)
	}
	return loader, nil
}

// loadLevels loads every valid level of the configured pack.
func loadLevels(cfg config.FlowConfig) ([]levels.Level, error) {
	loader, err := levelLoader(cfg)
	if err != nil {
		return nil, err
	}

	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load levels from %s: %w", loader.Root, err)
	}
	if len(lvls) == 0 {
		return nil, fmt.Errorf("no levels found in %s", loader.Root)
	}
	logger.Debug("levels loaded", "root", loader.Root, "count", len(lvls))
	return lvls, nil
}

// completeLevelIDs offers the ids of the configured pack for the first
// positional argument.
func completeLevelIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := loadConfig(config.Overrides{})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	loader, err := levelLoader(cfg)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	ids, err := loader.ListIDs()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

// openStore opens the records database. Failures are not fatal: the game
// runs without records.
func openStore(cfg config.FlowConfig) *storage.Store {
	if !cfg.Records.Enabled {
		return nil
	}
	store, err := storage.Open(cfg.Records.DBPath)
	if err != nil {
		logger.Warn("could not open records database", "path", cfg.Records.DBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig(levelID string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.LevelID = levelID
	return cfg
}

func playOptions(cfg config.FlowConfig, store *storage.Store) tui.PlayOptions {
	return tui.PlayOptions{
		Store:    store,
		Theme:    tui.ThemeByName(string(cfg.Display.Theme)),
		Player:   currentUser(),
		ShowHelp: cfg.Display.ShowHelp,
	}
}

func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "player"
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing records database", "error", err)
	}
}
