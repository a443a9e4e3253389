package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/felixbrock/ragassistant/internal/app"
	"github.com/felixbrock/ragassistant/internal/components"
	"github.com/felixbrock/ragassistant/internal/metrics"
)

func logger(config app.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: config.LogLevel}
	if config.Production() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func main() {
	config, err := app.LoadConfig()
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger(config))

	if config.DemoKey == "" {
		slog.Warn("DEMO_KEY environment variable not set, /metrics is public")
	}

	componentBuilder := app.ComponentBuilder{
		Index: components.Index,
		Error: components.Error,
	}

	a := app.App{
		Config:           config,
		ComponentBuilder: componentBuilder,
		Metrics:          metrics.New(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Start(ctx); err != nil {
		slog.Error("app stopped", "error", err)
		os.Exit(1)
	}
}
