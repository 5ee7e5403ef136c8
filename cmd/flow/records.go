package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/config"
	"github.com/vovakirdan/tui-flow/internal/platform/tui"
)

var (
	flagRecordsLimit  int
	flagRecordsClear  bool
	flagRecordsRecent bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [level-id]",
	Short: "Show solve records",
	Long: `Display the best solves for a level, ranked by moves then time.
Without a level id, opens the interactive records board.

Examples:
  flow records
  flow records 03-classic
  flow records 03-classic --limit 25
  flow records 03-classic --clear
  flow records --recent`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeLevelIDs,
	RunE:              runRecords,
}

func init() {
	recordsCmd.Flags().IntVarP(&flagRecordsLimit, "limit", "n", 10, "Number of records to show")
	recordsCmd.Flags().BoolVar(&flagRecordsClear, "clear", false, "Delete the level's records")
	recordsCmd.Flags().BoolVar(&flagRecordsRecent, "recent", false, "List the latest solves across all levels")
}

func runRecords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Overrides{})
	if err != nil {
		return err
	}
	if !cfg.Records.Enabled {
		return errors.New("records are disabled in the config")
	}

	store := openStore(cfg)
	if store == nil {
		return fmt.Errorf("cannot open records database %s", cfg.Records.DBPath)
	}
	defer closeStore(store)

	out := cmd.OutOrStdout()

	if flagRecordsRecent {
		records, err := store.RecentRecords(flagRecordsLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No solves recorded yet.")
			return nil
		}
		for _, r := range records {
			fmt.Fprintf(out, "  %-16s  %-5d  %-7s  %-12s  %s\n",
				r.LevelID, r.Moves, r.Duration.Round(time.Second), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	}

	if len(args) == 0 {
		lvls, err := loadLevels(cfg)
		if err != nil {
			return err
		}
		rc := runtimeConfig("")
		_, err = tui.RunRecords(lvls, store, tui.ThemeByName(string(cfg.Display.Theme)), cfg.Levels.Start, rc.ScreenW, rc.ScreenH)
		return err
	}

	levelID := args[0]

	if flagRecordsClear {
		if err := store.ClearRecords(levelID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared records for %s\n", levelID)
		return nil
	}

	records, err := store.TopRecords(levelID, flagRecordsLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Records - %s\n\n", levelID)
	if len(records) == 0 {
		fmt.Fprintln(out, "No solves recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'flow play %s' to set the first record!\n", levelID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-7s  %-12s  %s\n", "Rank", "Moves", "Time", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-7s  %-12s  %s\n", "----", "-----", "----", "------", "----")
	for i, r := range records {
		fmt.Fprintf(out, "  %-4d  %-5d  %-7s  %-12s  %s\n",
			i+1, r.Moves, r.Duration.Round(time.Second), r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.LevelStats(levelID)
	if err == nil && stats != nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Solves: %d  Best: %d moves  Average: %.1f moves\n", stats.Solves, stats.BestMoves, stats.AvgMoves)
	}
	return nil
}
