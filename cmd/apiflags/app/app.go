// Package app provides the application context and dependency management
// for the apiflags CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/apiflags"
	"github.com/agentstation/apiflags/pkg/apilist"
	"github.com/agentstation/apiflags/pkg/errors"
)

// App represents the apiflags application with all its dependencies.
// It provides a centralized place for configuration, logging, and
// the tag registry, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Tag registry (lazy-initialized, singleton)
	mu       sync.RWMutex
	registry *apilist.Registry
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "failed to load configuration", err)
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Registry returns the tag registry, creating it lazily if needed.
// When the configuration names a registry file it is loaded from there,
// otherwise the built-in default registry is used. This is thread-safe
// and ensures only one instance is created.
func (a *App) Registry() (*apilist.Registry, error) {
	a.mu.RLock()
	if a.registry != nil {
		reg := a.registry
		a.mu.RUnlock()
		return reg, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.registry != nil {
		return a.registry, nil
	}

	reg, err := a.loadRegistry()
	if err != nil {
		return nil, err
	}

	a.registry = reg
	return reg, nil
}

// Pipeline returns a new pipeline bound to the app registry.
// Commands supply their own input and output options; the registry
// always comes from the app configuration so that every command in a
// process agrees on the tag vocabulary.
func (a *App) Pipeline(opts ...apiflags.Option) (apiflags.Pipeline, error) {
	reg, err := a.Registry()
	if err != nil {
		return nil, err
	}

	all := make([]apiflags.Option, 0, len(opts)+1)
	all = append(all, apiflags.WithRegistry(reg))
	all = append(all, opts...)
	return apiflags.New(all...)
}

// loadRegistry resolves the registry from configuration.
// Callers must hold the write lock.
func (a *App) loadRegistry() (*apilist.Registry, error) {
	if a.config.RegistryFile != "" {
		return apilist.LoadRegistry(a.config.RegistryFile)
	}
	return apilist.DefaultRegistry(), nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithRegistry sets a custom tag registry (useful for testing).
func WithRegistry(registry *apilist.Registry) Option {
	return func(a *App) error {
		a.registry = registry
		return nil
	}
}
