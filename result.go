package apiflags

import (
	"fmt"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/apiflags/pkg/apilist"
	"github.com/agentstation/apiflags/pkg/merge"
)

// Result represents the outcome of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs
	RunID string `json:"run_id"`

	// StartedAt is when the run began
	StartedAt utc.Time `json:"started_at"`

	// Duration of the complete run
	Duration time.Duration `json:"duration"`

	// Entries is the number of member signatures in the universe
	Entries int `json:"entries"`

	// Counts holds the number of entries carrying each tag
	Counts map[apilist.Tag]int `json:"counts"`

	// Passes describes every executed classification pass in order
	Passes []merge.PassResult `json:"passes"`

	// Lines is the number of output lines produced
	Lines int `json:"lines"`

	// OutputPath is where the flag file was written
	OutputPath string `json:"output_path,omitempty"`

	// DryRun indicates the output file was not written
	DryRun bool `json:"dry_run"`
}

// Count returns the number of entries carrying the tag.
func (r *Result) Count(tag apilist.Tag) int {
	return r.Counts[tag]
}

// AutoClassified returns the number of entries tagged by the automatic
// serialization pass.
func (r *Result) AutoClassified() int {
	return r.stageTotal(merge.StageAuto)
}

// FallbackAssigned returns the number of entries that reached the final
// pass untagged and received the fallback tag.
func (r *Result) FallbackAssigned() int {
	return r.stageTotal(merge.StageFallback)
}

func (r *Result) stageTotal(stage merge.Stage) int {
	total := 0
	for _, pass := range r.Passes {
		if pass.Stage == stage {
			total += pass.Assigned
		}
	}
	return total
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	s := fmt.Sprintf("classified %d entries across %d passes in %s",
		r.Entries, len(r.Passes), r.Duration.Round(time.Millisecond))
	if r.DryRun {
		return s + " (dry run)"
	}
	return s
}
