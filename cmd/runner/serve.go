package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the runner SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session. The high score and the run
history are per-server (all users share the same board).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lanerunner/host_key

Examples:
  runner serve                           # Listen on :23235 with auto-generated key
  runner serve --ssh :2222               # Listen on port 2222
  runner serve --host-key ./my_host_key  # Use specific host key
  runner serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	runnerCfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Runner:      runnerCfg,
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-ssh",
	})

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	fmt.Printf("Starting runner SSH server on %s\n", cfg.Address)
	if _, port, splitErr := net.SplitHostPort(cfg.Address); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
