// Package appcontext provides the shared application context interface
// used by all commands. This eliminates interface duplication across
// command packages and provides a single source of truth for app dependencies.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/apiflags"
	"github.com/agentstation/apiflags/pkg/apilist"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/apiflags/app automatically implements this interface,
// providing dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
type Interface interface {
	// Registry returns the tag registry the app is configured with,
	// loading it lazily on first use. Without explicit configuration this
	// is the default registry.
	Registry() (*apilist.Registry, error)

	// Pipeline creates a pipeline bound to the app registry with custom options.
	// Use this when a command needs specific inputs (e.g. generate with --public).
	Pipeline(...apiflags.Option) (apiflags.Pipeline, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
