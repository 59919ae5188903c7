package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a menu and its own game.
All sessions share the server's score file and session history; the
SSH user name is recorded as the player.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetris/host_key

Examples:
  tetris serve                           # Listen on :23235 with auto-generated key
  tetris serve --ssh :2222               # Listen on port 2222
  tetris serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

// serverConfig starts from the server defaults and applies config and flags.
func serverConfig(changed func(name string) bool, tickRate int) tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	if tickRate > 0 {
		cfg.TickRate = tickRate
	}
	if changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	return cfg
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer a.close()

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := serverConfig(cmd.Flags().Changed, a.cfg.TickRate)
	server, err := tui.NewSSHServer(cfg, a.options(store))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting tetris SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		a.logger.Error("server stopped", "error", err)
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
