package apiflags

import (
	"context"
	"time"

	"github.com/agentstation/utc"
	"github.com/google/uuid"

	"github.com/agentstation/apiflags/internal/listfile"
	"github.com/agentstation/apiflags/pkg/apilist"
	"github.com/agentstation/apiflags/pkg/logging"
	"github.com/agentstation/apiflags/pkg/merge"
)

// Run executes every classification stage over the configured inputs using
// staged pass execution.
func (p *pipeline) Run(ctx context.Context) (*Result, error) {
	// Step 0: Set context
	if ctx == nil {
		ctx = context.Background()
	}

	// Step 1: Tag the run for log correlation
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	started := utc.Now()

	// Step 2: Validate configured inputs upfront
	if err := p.options.validate(); err != nil {
		return nil, err
	}

	// Step 3: Read the baseline membership lists
	public, err := listfile.ReadEntries(p.options.publicPath)
	if err != nil {
		return nil, err
	}
	private, err := listfile.ReadEntries(p.options.privatePath)
	if err != nil {
		return nil, err
	}
	logging.Ctx(ctx).Debug().
		Int("public", len(public)).
		Int("private", len(private)).
		Msg("Membership lists loaded")

	// Step 4: Build the signature universe, aborting if any member is
	// listed as both public and private
	universe, err := apilist.NewUniverse(public, private, p.registry.Baseline())
	if err != nil {
		return nil, err
	}

	// Step 5: Queue classification passes, attributed to their files
	plan := merge.NewPlan()
	for _, path := range p.options.csvPaths {
		rows, err := listfile.ReadRows(path)
		if err != nil {
			return nil, err
		}
		plan.AddCSV(rows, path)
	}
	for _, in := range p.options.strict {
		entries, err := listfile.ReadEntries(in.path)
		if err != nil {
			return nil, err
		}
		plan.AddStrict(in.tag, entries, in.path)
	}
	for _, in := range p.options.lenient {
		entries, err := listfile.ReadEntries(in.path)
		if err != nil {
			return nil, err
		}
		plan.AddLenient(in.tag, entries, in.path)
	}
	logging.Ctx(ctx).Debug().
		Int("entries", universe.Len()).
		Int("passes", plan.Passes()).
		Msg("Pipeline assembled")

	// Step 6: Execute all stages against the universe
	merger := merge.NewMerger(p.registry, universe)
	summary, err := plan.Execute(ctx, merger)
	if err != nil {
		return nil, err
	}

	// Step 7: Encode the merged flags deterministically
	lines := apilist.Encode(universe)

	// Step 8: Write the output unless this is a dry run
	if p.options.dryRun {
		logging.Ctx(ctx).Info().
			Bool("dry_run", true).
			Msg("Dry run completed - no output written")
	} else {
		if err := listfile.WriteLines(p.options.outputPath, lines); err != nil {
			return nil, err
		}
	}

	// Step 9: Assemble the run result
	result := &Result{
		RunID:      runID,
		StartedAt:  started,
		Duration:   time.Since(started.Time),
		Entries:    universe.Len(),
		Counts:     universe.CountByTag(),
		Passes:     summary.Passes,
		Lines:      len(lines),
		OutputPath: p.options.outputPath,
		DryRun:     p.options.dryRun,
	}

	// Step 10: Log the outcome
	logging.Ctx(ctx).Info().
		Int("entries", result.Entries).
		Int("lines", result.Lines).
		Dur("duration", result.Duration).
		Str("output", result.OutputPath).
		Msg("Flag generation completed")

	return result, nil
}
