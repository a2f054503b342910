package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JosephJoshua/posad/internal/auth"
	"github.com/JosephJoshua/posad/internal/dashboard"
	"github.com/JosephJoshua/posad/internal/products"
	"github.com/JosephJoshua/posad/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the notifier scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	loc, err := cfg.Dashboard.Location()
	if err != nil {
		return err
	}

	s, err := openStores(cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer s.Close()

	productSvc := products.NewService(s.users, s.sections, s.products, loc)
	dashboardSvc := dashboard.NewService(s.products, loc)
	authenticator := auth.NewAuthenticator(cfg.Auth.Secret, cfg.Auth.Issuer)

	srv := server.New(cfg.Server.Addr(), s.users, cfg.Server.Mode)
	api := srv.Engine.Group("/", server.BodyLimit(cfg.Server.MaxBodySizeMB), authenticator.Middleware())
	productSvc.RegisterRoutes(api)
	dashboardSvc.RegisterRoutes(api)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	closer, err := startNotifier(ctx, cfg, s)
	if err != nil {
		return err
	}
	defer closer.Close()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	slog.Info("Shutdown complete")
	return nil
}
