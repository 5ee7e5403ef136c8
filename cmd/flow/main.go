// flow is a terminal path-drawing puzzle: connect every pair of
// same-letter entries with a path so that the paths fill the whole board.
//
// Usage:
//
//	flow list                 - List levels in the current pack
//	flow play [level-id]      - Play a level
//	flow menu                 - Pick levels interactively
//	flow check <file>...      - Validate level files
//	flow records [level-id]   - Show solve records
//	flow serve                - Host Flow over SSH
//	flow config               - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.flow/config.yaml, then ./configs/flow.yaml)
//	--levels <dir>   - Level pack directory (default: built-in pack)
//	--db <path>      - Records database (default: ~/.flow/records.db)
//	--theme <name>   - Color theme: default, neon, pastel, mono
//	--verbose        - Debug logging
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagLevels  string
	flagDBPath  string
	flagTheme   string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "flow",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flow",
	Short: "Flow - connect the dots in your terminal",
	Long: `Flow is a path-drawing puzzle. Each level is a grid with pairs of
lettered entries; draw a path between every pair so that no paths cross
and every cell is filled.

Available commands:
  list     - Show the levels in the current pack
  play     - Play a level directly
  menu     - Interactive level picker
  check    - Validate level files
  records  - View solve records
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flow list
  flow play 03-classic
  flow play --file ./my-level.txt
  flow menu --theme neon
  flow serve --ssh :2323`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level pack directory (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to records database")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme: default, neon, pastel, mono")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
