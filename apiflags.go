// Package apiflags generates access-flag lists for API members. It merges
// public and private member inventories with flag files from earlier
// releases and per-tag classification lists, checks every input for
// conflicts, and produces one deterministic CSV mapping each member
// signature to its set of access tags.
//
// The pipeline runs a fixed sequence of stages: members of the public API
// are pre-tagged with the baseline tag, members matching the Java
// serialization patterns join them, previously generated CSV files are
// merged, strict per-tag lists are applied with full conflict checking,
// lenient lists claim whatever is still unassigned, and every remaining
// untagged member falls back to the registry's fallback tag.
//
// Example usage:
//
//	// Create a pipeline from input files
//	p, err := apiflags.New(
//	    apiflags.WithPublicList("public.txt"),
//	    apiflags.WithPrivateList("private.txt"),
//	    apiflags.WithCSV("prev-flags.csv"),
//	    apiflags.WithStrict(apilist.TagGreylist, "greylist.txt"),
//	    apiflags.WithLenient(apilist.TagBlacklist, "vendor-blacklist.txt"),
//	    apiflags.WithOutput("hiddenapi-flags.csv"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Run every stage and write the merged flag file
//	result, err := p.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Summary())
package apiflags

import (
	"context"

	"github.com/agentstation/apiflags/pkg/apilist"
)

// Compile-time interface check to ensure proper implementation.
var _ Pipeline = (*pipeline)(nil)

// Pipeline merges access-flag inputs into a single classified flag file.
type Pipeline interface {
	// Run executes every classification stage and returns the outcome.
	// The output file is written only when all stages succeed and the
	// pipeline is not in dry-run mode.
	Run(ctx context.Context) (*Result, error)

	// Registry returns the tag registry the pipeline validates against.
	Registry() *apilist.Registry
}

// pipeline is the internal implementation of the Pipeline interface.
type pipeline struct {
	// options are the configured options for the pipeline
	options *options

	// registry is the resolved tag registry
	registry *apilist.Registry
}

// New creates a new Pipeline instance with the given options.
func New(opts ...Option) (Pipeline, error) {
	options, err := newOptions(opts...)
	if err != nil {
		return nil, err
	}

	p := &pipeline{options: options}

	// Resolve the registry: explicit instance, then file, then default.
	switch {
	case options.registry != nil:
		p.registry = options.registry
	case options.registryFile != "":
		registry, err := apilist.LoadRegistry(options.registryFile)
		if err != nil {
			return nil, err
		}
		p.registry = registry
	default:
		p.registry = apilist.DefaultRegistry()
	}

	return p, nil
}

// Registry returns the tag registry the pipeline validates against.
func (p *pipeline) Registry() *apilist.Registry {
	return p.registry
}
