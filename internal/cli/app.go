// Package cli implements the switchboard command-line tool.
package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/adwhq/switchboard/internal/agent"
	"github.com/adwhq/switchboard/internal/config"
	"github.com/adwhq/switchboard/internal/health"
	"github.com/adwhq/switchboard/internal/hooks"
	"github.com/adwhq/switchboard/internal/provider"
	"github.com/adwhq/switchboard/internal/provider/anthropic"
	"github.com/adwhq/switchboard/internal/provider/openai"
)

// App wires the loaded configuration to the provider clients and the
// components built on them.
type App struct {
	Config   *config.Config
	Registry *provider.Registry
	Executor *agent.Executor
	Hooks    *hooks.Runner
	Checker  *health.Checker
}

// NewApp loads configuration, configures logging, and constructs both
// provider clients. Clients are always registered; whether one is used
// is the resolver's call at execution time.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	configureLogger(cfg.Logging)

	registry := provider.NewRegistry(
		anthropic.NewClient(cfg.Providers.Anthropic.ClientConfig()),
		openai.NewClient(cfg.Providers.OpenAI.ClientConfig()),
	)
	executor := agent.NewExecutor(registry, cfg.ResolverSnapshot())

	return &App{
		Config:   cfg,
		Registry: registry,
		Executor: executor,
		Hooks:    hooks.NewRunner(executor),
		Checker:  health.NewChecker(cfg, registry),
	}, nil
}

// configureLogger sets up the default slog logger based on config values
func configureLogger(cfg config.LoggingConfig) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}
