package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/lvreuse/boostback/internal/config"
	"github.com/lvreuse/boostback/internal/ctxlog"
	"github.com/lvreuse/boostback/internal/mc"
	"github.com/lvreuse/boostback/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *AppConfig
	registry *registry.Registry
	engine   *mc.Engine

	studies    []*loadedStudy
	httpServer *http.Server
}

// loadedStudy pairs a validated study with its decoded analysis options,
// aligned index for index with the study's Analyses.
type loadedStudy struct {
	path    string
	study   *config.Study
	options []any
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry, and
// with every study loaded, validated, and its options decoded. Startup
// failures are programmer or operator errors, so they panic; the entrypoint
// recovers them into an exit code.
func NewApp(outW io.Writer, appConfig *AppConfig, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All analysis kinds registered.", "count", len(modules))

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		registry: reg,
		engine:   mc.NewEngine(appConfig.Workers),
	}

	// Listing needs no studies, and the path may be absent entirely.
	if appConfig.List {
		return a
	}

	if err := a.loadStudies(ctx, loader); err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("All studies loaded and validated.", "count", len(a.studies))
	return a
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Engine returns the application's Monte Carlo engine. This is primarily
// for testing.
func (a *App) Engine() *mc.Engine {
	return a.engine
}
