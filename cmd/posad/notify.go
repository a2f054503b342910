package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Run one expiration notifier pass and exit",
	Long: `notify sends reminders for products approaching their expiration date
and records when each product was notified. Schedule it from cron when the
built-in scheduler of "posad serve" is disabled.`,
	RunE: runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(cmd *cobra.Command, args []string) error {
	s, err := openStores(cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer s.Close()

	sender, closer, err := newSender(cfg.Messaging)
	if err != nil {
		return fmt.Errorf("initialize messaging: %w", err)
	}
	defer closer.Close()

	job, err := newNotifierJob(cfg, s, sender)
	if err != nil {
		return err
	}

	result, err := job.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("notifier run: %w", err)
	}

	slog.Info("Notifier pass finished",
		"products", result.Products,
		"notified", result.Notified,
		"messages", result.Messages,
		"sent", result.Sent,
		"failed", result.Failed)
	return nil
}
