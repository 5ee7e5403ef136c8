package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flow/internal/config"
	"github.com/vovakirdan/tui-flow/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Flow SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a level picker.
Records are stored per server (all users share the same records).

Host key handling:
  - server.host_key from the config, or --host-key
  - Otherwise, auto-generates a key at ~/.flow/host_key

Examples:
  flow serve                           # Listen on server.address from the config
  flow serve --ssh :2222               # Listen on port 2222
  flow serve --metrics :9090           # Also expose /metrics and /healthz

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Metrics HTTP address (host:port)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(config.Overrides{Address: flagSSHAddr})
	if err != nil {
		return err
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagMetricsAddr != "" {
		cfg.Server.MetricsAddress = flagMetricsAddr
	}

	lvls, err := loadLevels(cfg)
	if err != nil {
		return err
	}
	store := openStore(cfg)
	defer closeStore(store)

	serverLogger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flow-ssh",
		Level:           logger.GetLevel(),
	})

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:        cfg.Server.Address,
		HostKeyPath:    cfg.Server.HostKey,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeoutMinutes) * time.Minute,
		MetricsAddress: cfg.Server.MetricsAddress,
		Levels:         lvls,
		Store:          store,
		Theme:          tui.ThemeByName(string(cfg.Display.Theme)),
		ShowHelp:       cfg.Display.ShowHelp,
		Logger:         serverLogger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
