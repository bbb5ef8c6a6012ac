package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/mazewalk/internal/config"
	"github.com/vk/mazewalk/internal/ctxlog"
	"github.com/vk/mazewalk/internal/localsession"
	"github.com/vk/mazewalk/internal/metrics"
	"github.com/vk/mazewalk/internal/session"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	model      *config.Model
	factory    session.SessionFactory
	metrics    *metrics.Collector
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It configures an
// isolated logger and loads the maze model: from the configured paths
// through loader, or the built-in sample when no path is given.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var model *config.Model
	if len(cfg.MazePaths) == 0 {
		logger.Debug("No maze path given, using the built-in sample maze.")
		model = config.Sample()
	} else {
		m, err := loader.Load(ctx, cfg.MazePaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load maze: %w", err)
		}
		model = m
	}
	logger.Debug("Maze model loaded.", "nodes", len(model.Nodes), "sources", len(model.Sources))

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		model:   model,
		factory: &localsession.SessionFactory{},
		metrics: metrics.New(),
	}, nil
}

// Model returns the loaded maze model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// Metrics returns the application's metrics collector.
func (a *App) Metrics() *metrics.Collector {
	return a.metrics
}
