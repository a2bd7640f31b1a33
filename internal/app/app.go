// Package app implements the application layer for javelin.
package app

import (
	"context"
	"io"

	"go.trai.ch/javelin/internal/core/domain"
	"go.trai.ch/javelin/internal/core/ports"
	"go.trai.ch/javelin/internal/engine/pipeline"
	"go.trai.ch/javelin/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Operation names registered by Commands.
const (
	CommandBuild        = "build"
	CommandBuildRelease = "buildRelease"
	CommandClean        = "clean"
	CommandRun          = "run"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	pipeline     *pipeline.Pipeline
	logger       ports.Logger
	workDir      string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, p *pipeline.Pipeline, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		pipeline:     p,
		logger:       logger,
		workDir:      ".",
	}
}

// WithWorkDir sets the directory the configuration is loaded from and all
// relative paths are resolved against.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithOutput sets the writer that receives compiler output, verdicts and
// program output.
func (a *App) WithOutput(w io.Writer) *App {
	a.pipeline.WithOutput(w)
	return a
}

// Commands returns a registry holding the build operations.
func (a *App) Commands() *registry.Registry {
	r := registry.New()
	r.MustRegister(CommandBuild, a.Build)
	r.MustRegister(CommandBuildRelease, a.BuildRelease)
	r.MustRegister(CommandClean, a.Clean)
	r.MustRegister(CommandRun, a.Run)
	return r
}

// Build compiles the source tree. A failed compilation is reported by the
// pipeline and is not an error.
func (a *App) Build(ctx context.Context) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	return a.build(ctx, cfg)
}

// BuildRelease compiles the source tree without debug information and stops
// at the first compiler error.
func (a *App) BuildRelease(ctx context.Context) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	return a.build(ctx, cfg.Release())
}

// Clean removes the output directory.
func (a *App) Clean(ctx context.Context) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	return a.pipeline.Clean(ctx, cfg)
}

// Run launches the compiled program. The program's own exit status is logged
// and does not fail the operation.
func (a *App) Run(ctx context.Context) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	a.pipeline.Launch(ctx, cfg)
	return nil
}

func (a *App) build(ctx context.Context, cfg domain.BuildConfiguration) error {
	ok, err := a.pipeline.Build(ctx, cfg)
	if err != nil {
		return err
	}
	if !ok {
		a.logger.Debug("compilation reported errors")
	}
	return nil
}

func (a *App) config() (domain.BuildConfiguration, error) {
	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return domain.BuildConfiguration{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}
