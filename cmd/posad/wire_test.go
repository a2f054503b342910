package main

import (
	"context"
	"log/slog"
	"testing"

	corecfg "github.com/JosephJoshua/posad/internal/core/config"
	"github.com/JosephJoshua/posad/internal/messaging"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "warn", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger := newLogger(corecfg.LogConfig{Level: tc.level, Format: "json"})
			assert.True(t, logger.Enabled(context.Background(), tc.want))
			if tc.want > slog.LevelDebug {
				assert.False(t, logger.Enabled(context.Background(), tc.want-1))
			}
		})
	}
}

func TestNewSender_Log(t *testing.T) {
	sender, closer, err := newSender(corecfg.MessagingConfig{Driver: "log"})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	assert.IsType(t, messaging.LogSender{}, sender)
}

func TestNewSender_RedisWithRateLimit(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	sender, closer, err := newSender(corecfg.MessagingConfig{
		Driver:        "redis",
		RedisURL:      "redis://" + mr.Addr(),
		Stream:        "posad:test",
		RatePerSecond: 10,
		Burst:         2,
	})
	require.NoError(t, err)
	defer closer.Close()
	require.IsType(t, &messaging.RateLimitedSender{}, sender)

	resp, err := sender.SendAll(context.Background(), []messaging.Message{{Token: "t1", Title: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SuccessCount)
	assert.True(t, mr.Exists("posad:test"))
}

func TestNewSender_UnknownDriver(t *testing.T) {
	_, _, err := newSender(corecfg.MessagingConfig{Driver: "smoke-signal"})
	require.Error(t, err)
}

func TestStartNotifier_DisabledSkipsSender(t *testing.T) {
	c := &corecfg.Config{
		Notifier:  corecfg.NotifierConfig{Enabled: false},
		Messaging: corecfg.MessagingConfig{Driver: "smoke-signal"},
	}

	closer, err := startNotifier(context.Background(), c, nil)
	require.NoError(t, err)
	assert.IsType(t, nopCloser{}, closer)
}

func TestStartNotifier_EnabledBuildsSender(t *testing.T) {
	c := &corecfg.Config{
		Notifier:  corecfg.NotifierConfig{Enabled: true},
		Messaging: corecfg.MessagingConfig{Driver: "smoke-signal"},
	}

	_, err := startNotifier(context.Background(), c, nil)
	require.ErrorContains(t, err, "initialize messaging")
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "notify", "migrate"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}
