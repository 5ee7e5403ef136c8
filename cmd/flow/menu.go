package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/config"
	"github.com/vovakirdan/tui-flow/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels interactively",
	Long: `Start Flow with a level picker.

Use arrow keys or j/k to navigate, Enter to play a level, Tab for records.
After solving a level, Esc returns to the picker.

Examples:
  flow menu
  flow menu --levels ./my-pack
  flow menu --db ./records.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(config.Overrides{})
	if err != nil {
		return err
	}
	lvls, err := loadLevels(cfg)
	if err != nil {
		return err
	}

	store := openStore(cfg)
	defer closeStore(store)

	return tui.RunSession(lvls, runtimeConfig(cfg.Levels.Start), playOptions(cfg, store))
}
