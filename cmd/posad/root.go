package main

import (
	"fmt"
	"log/slog"
	"os"

	corecfg "github.com/JosephJoshua/posad/internal/core/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *corecfg.Config
)

var rootCmd = &cobra.Command{
	Use:   "posad",
	Short: "Posad tracks perishable products and reminds you before they go bad",
	Long: `posad serves the product and dashboard API and runs the expiration notifier.

Example usage:
  posad serve                      # HTTP API plus the notifier scheduler
  posad notify                     # One notifier pass, for an external cron trigger
  posad migrate up                 # Apply pending database migrations
  posad migrate down --steps 1     # Roll back the latest migration`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd.Root())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "posad.yaml", "path to configuration file")
}

// initConfig loads configuration and installs the default logger.
func initConfig(root *cobra.Command) error {
	path := cfgFile
	if _, err := os.Stat(path); err != nil && !root.PersistentFlags().Changed("config") {
		path = ""
	}

	loaded, err := corecfg.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded

	slog.SetDefault(newLogger(cfg.Log))
	slog.Info("Loaded config",
		"file", path,
		"server", cfg.Server.Addr(),
		"mode", cfg.Server.Mode,
		"messaging_driver", cfg.Messaging.Driver,
		"notifier_enabled", cfg.Notifier.Enabled)
	return nil
}

func newLogger(c corecfg.LogConfig) *slog.Logger {
	var level slog.Level
	switch c.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
