package apiflags

import (
	"github.com/agentstation/apiflags/pkg/apilist"
	"github.com/agentstation/apiflags/pkg/errors"
)

// listInput is one per-tag classification list file.
type listInput struct {
	tag  apilist.Tag
	path string
}

// options configures a pipeline.
type options struct {
	registry     *apilist.Registry
	registryFile string
	publicPath   string
	privatePath  string
	csvPaths     []string
	strict       []listInput
	lenient      []listInput
	outputPath   string
	dryRun       bool
}

func defaultOptions() *options {
	return &options{}
}

// Option is a function that configures a Pipeline.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns pipeline options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// validate checks that the configured inputs form a runnable pipeline.
func (o *options) validate() error {
	if o.publicPath == "" {
		return errors.NewValidationError("public list", nil, "required")
	}
	if o.privatePath == "" {
		return errors.NewValidationError("private list", nil, "required")
	}
	if o.outputPath == "" && !o.dryRun {
		return errors.NewValidationError("output", nil, "required unless dry-run")
	}
	return nil
}

// WithRegistry sets the tag registry directly, overriding any registry file.
func WithRegistry(registry *apilist.Registry) Option {
	return func(o *options) error {
		if registry == nil {
			return &errors.ValidationError{
				Field:   "registry",
				Message: "cannot be nil",
			}
		}
		o.registry = registry
		return nil
	}
}

// WithRegistryFile sets a YAML file to load the tag registry from.
func WithRegistryFile(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "registry file",
				Message: "cannot be empty",
			}
		}
		o.registryFile = path
		return nil
	}
}

// WithPublicList sets the file listing every public API member.
func WithPublicList(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "public list",
				Message: "cannot be empty",
			}
		}
		o.publicPath = path
		return nil
	}
}

// WithPrivateList sets the file listing every private API member.
func WithPrivateList(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "private list",
				Message: "cannot be empty",
			}
		}
		o.privatePath = path
		return nil
	}
}

// WithCSV adds previously generated flag files to merge before any list
// pass runs.
func WithCSV(paths ...string) Option {
	return func(o *options) error {
		for _, path := range paths {
			if path == "" {
				return &errors.ValidationError{
					Field:   "csv",
					Message: "path cannot be empty",
				}
			}
			o.csvPaths = append(o.csvPaths, path)
		}
		return nil
	}
}

// WithStrict adds list files whose entries receive the tag with full
// conflict checking: an entry outside the signature universe fails the run.
func WithStrict(tag apilist.Tag, paths ...string) Option {
	return func(o *options) error {
		if tag == "" {
			return &errors.ValidationError{
				Field:   "strict tag",
				Message: "cannot be empty",
			}
		}
		for _, path := range paths {
			if path == "" {
				return &errors.ValidationError{
					Field:   "strict list",
					Message: "path cannot be empty",
				}
			}
			o.strict = append(o.strict, listInput{tag: tag, path: path})
		}
		return nil
	}
}

// WithLenient adds list files whose entries receive the tag only if they
// exist in the universe and carry no tags yet; everything else is dropped
// silently.
func WithLenient(tag apilist.Tag, paths ...string) Option {
	return func(o *options) error {
		if tag == "" {
			return &errors.ValidationError{
				Field:   "lenient tag",
				Message: "cannot be empty",
			}
		}
		for _, path := range paths {
			if path == "" {
				return &errors.ValidationError{
					Field:   "lenient list",
					Message: "path cannot be empty",
				}
			}
			o.lenient = append(o.lenient, listInput{tag: tag, path: path})
		}
		return nil
	}
}

// WithOutput sets the path the merged flag file is written to.
func WithOutput(path string) Option {
	return func(o *options) error {
		if path == "" {
			return &errors.ValidationError{
				Field:   "output",
				Message: "cannot be empty",
			}
		}
		o.outputPath = path
		return nil
	}
}

// WithDryRun configures whether the run skips writing the output file.
func WithDryRun(enabled bool) Option {
	return func(o *options) error {
		o.dryRun = enabled
		return nil
	}
}
