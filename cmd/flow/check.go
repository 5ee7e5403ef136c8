package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/games/flow/board"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels"
	"github.com/vovakirdan/tui-flow/internal/games/flow/levels/formats"
)

var (
	flagShowLayout bool
	flagExportYAML bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse and validate level files. A level is valid when its layout is a
rectangle of '.' and 'A'-'Z' cells and every flow letter, used contiguously
from A, appears exactly twice.

Exits with status 1 if any file is invalid.

Examples:
  flow check levels/*.yaml
  flow check --layout my-level.txt
  flow check --yaml my-level.txt > my-level.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagShowLayout, "layout", false, "Print each valid level as a framed board")
	checkCmd.Flags().BoolVar(&flagExportYAML, "yaml", false, "Print each valid level in the YAML level format")
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		lvl, err := levels.LoadPath(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL  %s: %v\n", path, err)
			continue
		}

		if flagExportYAML {
			data, err := formats.MarshalYAML(formats.Level{
				ID:       lvl.ID,
				Name:     lvl.Name,
				Author:   lvl.Author,
				Layout:   lvl.Layout(),
				Metadata: lvl.Metadata,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "# %s\n%s", path, data)
			continue
		}

		s := lvl.Stats()
		fmt.Fprintf(out, "ok    %s  (%s, %dx%d, %d flows, %d empty)\n",
			path, lvl.ID, s.Width, s.Height, s.Flows, s.EmptyCells)
		if flagShowLayout {
			fmt.Fprint(out, board.RenderASCII(lvl.NewBoard()))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d level files invalid", failed, len(args))
	}
	return nil
}
