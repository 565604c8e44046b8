// Package app provides the application context for spaces.
// It allows dependency injection for testing.
package app

import (
	"github.com/firefly-engineering/spaces/internal/clone"
	"github.com/firefly-engineering/spaces/internal/config"
	"github.com/firefly-engineering/spaces/internal/logging"
	"github.com/firefly-engineering/spaces/internal/system"
	"github.com/firefly-engineering/spaces/internal/vcs"
)

// App holds the application dependencies
type App struct {
	// FS is used to read the config and scan and purge spaces
	FS system.FileSystem

	// Executor runs the git binary
	Executor system.CommandExecutor

	// Backend overrides the VCS backend chosen from the config
	Backend vcs.Backend

	// Clipboard receives the destination of new spaces
	Clipboard clone.Clipboard
}

// Option is a function that configures the App
type Option func(*App)

// WithFS sets a custom filesystem
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(e system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = e
	}
}

// WithBackend forces a VCS backend regardless of the config
func WithBackend(b vcs.Backend) Option {
	return func(a *App) {
		a.Backend = b
	}
}

// WithClipboard sets a custom clipboard
func WithClipboard(c clone.Clipboard) Option {
	return func(a *App) {
		a.Clipboard = c
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{
		FS:        system.DefaultFS(),
		Executor:  system.DefaultExecutor(),
		Clipboard: clone.SystemClipboard{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// LoadConfig loads the config file at path through the app's filesystem.
func (a *App) LoadConfig(path string) (*config.Config, error) {
	return config.Load(a.FS, path)
}

// VCS returns the backend for cfg: the injected one, else go-git or the
// git binary as the config selects.
func (a *App) VCS(cfg *config.Config) vcs.Backend {
	if a.Backend != nil {
		return a.Backend
	}
	if cfg.UseGoGit() {
		return vcs.GoGit(a.FS)
	}
	return vcs.Git(a.Executor)
}

// Orchestrator returns a clone orchestrator wired for cfg.
func (a *App) Orchestrator(cfg *config.Config) *clone.Orchestrator {
	backend := a.VCS(cfg)
	logging.Debug("selected vcs backend", "backend", backend.Name())
	return clone.New(backend, clone.WithClipboard(a.Clipboard))
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
