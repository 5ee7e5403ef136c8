package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/config"
	"github.com/vovakirdan/tui-flow/internal/games/flow"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels"
	"github.com/vovakirdan/tui-flow/internal/platform/tui"
)

var flagLevelFile string

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play a level",
	Long: `Start playing a level. Without an id, starts at levels.start from the
config or the first level of the pack.

Controls:
  Arrows/WASD/hjkl  - Move the cursor or draw the selected flow
  Space/Enter       - Grab or release a flow
  R                 - Restart the level
  P                 - Pause
  Esc/B             - Back to the level list (when solved or paused)
  Ctrl+S            - Save a text screenshot to ~/.flow/screenshots
  ?                 - More help
  Q/Ctrl+C          - Quit

Examples:
  flow play
  flow play 03-classic
  flow play --file ./levels/custom.yaml`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLevelIDs,
	RunE:              runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagLevelFile, "file", "f", "", "Play a single level file instead of the pack")
}

func runPlay(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Overrides{})
	if err != nil {
		return err
	}

	var lvls []levels.Level
	if flagLevelFile != "" {
		lvl, loadErr := levels.LoadPath(flagLevelFile)
		if loadErr != nil {
			return loadErr
		}
		lvls = []levels.Level{lvl}
	} else if lvls, err = loadLevels(cfg); err != nil {
		return err
	}

	levelID := cfg.Levels.Start
	if len(args) == 1 {
		levelID = args[0]
	}
	game := flow.New(lvls)
	if levelID != "" {
		if err := game.SelectLevel(levelID); err != nil {
			return err
		}
	}

	store := openStore(cfg)
	defer closeStore(store)

	rc := runtimeConfig(levelID)
	opts := playOptions(cfg, store)
	back, err := tui.RunPlay(game, rc, opts)
	if err != nil || !back {
		return err
	}

	// Going back from a solved or paused level opens the picker.
	if l, ok := game.Level(); ok {
		rc.LevelID = l.ID
	}
	return tui.RunSession(lvls, rc, opts)
}
