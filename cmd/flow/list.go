package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the levels in the current pack",
	Long:  `Shows every valid level in the configured pack, or the built-in pack.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(config.Overrides{})
	if err != nil {
		return err
	}
	lvls, err := loadLevels(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-5s  %-5s  %s\n", maxIDLen, "ID", "Size", "Flows", "Name")
	fmt.Fprintf(out, "  %-*s  %-5s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")
	for _, l := range lvls {
		s := l.Stats()
		size := fmt.Sprintf("%dx%d", s.Width, s.Height)
		fmt.Fprintf(out, "  %-*s  %-5s  %-5d  %s\n", maxIDLen, l.ID, size, s.Flows, l.Name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'flow play <id>' to play a level.")
	return nil
}
