// Root command for the perkg CLI.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/a-rout/price-calculator-app/internal/paths"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands can
// use them.
var (
	configBackend   string
	configDataDir   string
	configUndoGrace time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "perkg",
	Short:         "perkg converts between price and weight for a local item catalog",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(flagVerbose)

		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configUndoGrace = cfg.GetDuration(cfgKeyUndoGrace)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.perkg-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(recentCmd)
}

// setupLogging routes structured logs to stderr so command output on stdout
// stays clean.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > PERKG_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > PERKG_DATA_DIR env > default
// $(CWD)/.perkg-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
