package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	corecfg "github.com/JosephJoshua/posad/internal/core/config"
	"github.com/JosephJoshua/posad/internal/core/storage/postgres"
	"github.com/JosephJoshua/posad/internal/messaging"
	"github.com/JosephJoshua/posad/internal/migrations"
	"github.com/JosephJoshua/posad/internal/notifier"
)

type stores struct {
	users    *postgres.Adapter
	sections *postgres.SectionAdapter
	products *postgres.ProductAdapter
}

func (s *stores) Close() error {
	return s.users.Close()
}

// openStores connects to Postgres, applying migrations first when enabled.
func openStores(c corecfg.DatabaseConfig) (*stores, error) {
	if c.AutoMigrate {
		db, err := postgres.Open(c.DSN)
		if err != nil {
			return nil, err
		}
		err = migrations.RunMigrations(db, true)
		db.Close()
		if err != nil {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	adapter, err := postgres.NewAdapter(c.DSN, c.MaxOpenConns, c.MaxIdleConns, c.ConnMaxLifetimeDuration())
	if err != nil {
		return nil, err
	}

	return &stores{
		users:    adapter,
		sections: postgres.NewSectionAdapter(adapter.DB()),
		products: postgres.NewProductAdapter(adapter.DB()),
	}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newSender builds the configured message sender. The closer releases the
// underlying connection.
func newSender(c corecfg.MessagingConfig) (messaging.Sender, io.Closer, error) {
	var (
		sender messaging.Sender
		closer io.Closer = nopCloser{}
	)

	switch c.Driver {
	case "redis":
		rs, err := messaging.NewRedisStreamSender(c.RedisURL, c.Stream, c.MaxLen)
		if err != nil {
			return nil, nil, err
		}
		sender, closer = rs, rs
	case "log":
		sender = messaging.LogSender{}
	default:
		return nil, nil, fmt.Errorf("unsupported messaging driver %q", c.Driver)
	}

	if c.RatePerSecond > 0 {
		sender = messaging.NewRateLimitedSender(sender, c.RatePerSecond, c.Burst)
	}

	slog.Info("Messaging sender initialized",
		"driver", c.Driver,
		"stream", c.Stream,
		"rate_per_second", c.RatePerSecond)
	return sender, closer, nil
}

func newNotifierJob(c *corecfg.Config, s *stores, sender messaging.Sender) (*notifier.Job, error) {
	loc, err := c.Dashboard.Location()
	if err != nil {
		return nil, err
	}
	return notifier.NewJob(s.users, s.products, sender, c.Tiers, loc, c.Notifier.Link), nil
}

// startNotifier runs the notifier scheduler in the background when enabled.
// The sender is only built for an enabled notifier; the returned closer
// releases it.
func startNotifier(ctx context.Context, c *corecfg.Config, s *stores) (io.Closer, error) {
	if !c.Notifier.Enabled {
		slog.Info("Notifier scheduler disabled by config")
		return nopCloser{}, nil
	}

	sender, closer, err := newSender(c.Messaging)
	if err != nil {
		return nil, fmt.Errorf("initialize messaging: %w", err)
	}

	job, err := newNotifierJob(c, s, sender)
	if err != nil {
		closer.Close()
		return nil, err
	}

	scheduler := notifier.NewScheduler(c.Notifier.IntervalDuration(), job)
	go func() {
		if err := scheduler.Start(ctx); err != nil {
			slog.Error("Scheduler stopped with error", "error", err)
		}
	}()
	return closer, nil
}
