package merge

import (
	"context"
	"fmt"
	"sort"

	"github.com/agentstation/apiflags/pkg/apilist"
	"github.com/agentstation/apiflags/pkg/logging"
)

// Stage identifies when a pass runs within a plan. Stages execute in a
// fixed order regardless of the order passes were added.
type Stage string

// String returns the string representation of the stage.
func (s Stage) String() string {
	return string(s)
}

// Plan stages, in execution order.
const (
	// StageAuto assigns the baseline tag to entries matched by built-in
	// patterns. It runs first and is added by the plan itself.
	StageAuto Stage = "auto"

	// StageCSV merges previously generated flag rows.
	StageCSV Stage = "csv"

	// StageStrict applies conflict-checked list assignments.
	StageStrict Stage = "strict"

	// StageLenient applies list assignments restricted to unassigned
	// entries.
	StageLenient Stage = "lenient"

	// StageFallback tags every still-unassigned entry with the registry
	// fallback. It runs last and is added by the plan itself.
	StageFallback Stage = "fallback"
)

// listPass is a single tag assignment read from one source.
type listPass struct {
	tag     apilist.Tag
	entries []apilist.Entry
	source  string
}

// csvPass is a batch of flag rows read from one source.
type csvPass struct {
	rows   []apilist.Row
	source string
}

// Plan collects classification passes and executes them in stage order:
// automatic serialization tagging, CSV merges, strict list passes, lenient
// list passes, and finally the fallback assignment. Within the strict and
// lenient stages, passes run grouped by registry tag order and, within one
// tag, in the order they were added. The first failing pass aborts the
// plan; passes already applied remain applied.
type Plan struct {
	csv     []csvPass
	strict  []listPass
	lenient []listPass
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// AddCSV queues a batch of flag rows for the CSV stage.
func (p *Plan) AddCSV(rows []apilist.Row, source string) {
	if source == "" {
		source = SourceUnknown
	}
	p.csv = append(p.csv, csvPass{rows: rows, source: source})
}

// AddStrict queues a conflict-checked assignment of tag to entries.
func (p *Plan) AddStrict(tag apilist.Tag, entries []apilist.Entry, source string) {
	if source == "" {
		source = SourceUnknown
	}
	p.strict = append(p.strict, listPass{tag: tag, entries: entries, source: source})
}

// AddLenient queues an assignment of tag to whichever of the entries are
// still unassigned at execution time.
func (p *Plan) AddLenient(tag apilist.Tag, entries []apilist.Entry, source string) {
	if source == "" {
		source = SourceUnknown
	}
	p.lenient = append(p.lenient, listPass{tag: tag, entries: entries, source: source})
}

// Passes returns the number of queued passes, excluding the implicit auto
// and fallback stages.
func (p *Plan) Passes() int {
	return len(p.csv) + len(p.strict) + len(p.lenient)
}

// Execute runs every stage against the merger's universe and reports what
// each pass did. The returned summary covers only completed passes; on
// error it is nil and the universe holds all assignments made before the
// failing pass.
func (p *Plan) Execute(ctx context.Context, m *Merger) (*Summary, error) {
	summary := &Summary{}

	// Automatic serialization pass. These members are callable through the
	// serialization machinery no matter how they are flagged, so they join
	// the baseline list up front.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	matches := m.Universe().Filter(apilist.IsSerialization)
	baseline := m.Registry().Baseline()
	assigned, err := m.AssignStrict(baseline, matches, SourceSerialization)
	if err != nil {
		return nil, fmt.Errorf("serialization pass: %w", err)
	}
	summary.record(ctx, StageAuto, baseline, SourceSerialization, len(matches), assigned)

	// CSV merges, in the order added.
	for _, pass := range p.csv {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		applied, err := m.MergeCSV(pass.rows, pass.source)
		if err != nil {
			return nil, fmt.Errorf("csv merge %s: %w", pass.source, err)
		}
		summary.record(ctx, StageCSV, "", pass.source, len(pass.rows), applied)
	}

	// Strict passes, grouped by registry tag order.
	for _, pass := range p.ordered(m.Registry(), p.strict) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		assigned, err := m.AssignStrict(pass.tag, pass.entries, pass.source)
		if err != nil {
			return nil, fmt.Errorf("strict pass %s: %w", pass.source, err)
		}
		summary.record(ctx, StageStrict, pass.tag, pass.source, len(pass.entries), assigned)
	}

	// Lenient passes run only after every strict pass, so their notion of
	// "unassigned" already accounts for all checked input.
	for _, pass := range p.ordered(m.Registry(), p.lenient) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		assigned, err := m.AssignLenient(pass.tag, pass.entries, pass.source)
		if err != nil {
			return nil, fmt.Errorf("lenient pass %s: %w", pass.source, err)
		}
		summary.record(ctx, StageLenient, pass.tag, pass.source, len(pass.entries), assigned)
	}

	// Everything still untagged lands on the fallback list.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rest := m.Universe().Unassigned()
	fallback := m.Registry().Fallback()
	assigned, err = m.AssignStrict(fallback, rest, SourceFallback)
	if err != nil {
		return nil, fmt.Errorf("fallback pass: %w", err)
	}
	summary.record(ctx, StageFallback, fallback, SourceFallback, len(rest), assigned)

	return summary, nil
}

// ordered returns passes sorted by the registry's tag order, preserving
// insertion order within one tag. Tags outside the registry sort last so
// their validation failure still carries the right source.
func (p *Plan) ordered(registry *apilist.Registry, passes []listPass) []listPass {
	index := make(map[apilist.Tag]int, registry.Len())
	for i, tag := range registry.Tags() {
		index[tag] = i
	}
	rank := func(tag apilist.Tag) int {
		if i, ok := index[tag]; ok {
			return i
		}
		return registry.Len()
	}

	out := make([]listPass, len(passes))
	copy(out, passes)
	sort.SliceStable(out, func(i, j int) bool {
		return rank(out[i].tag) < rank(out[j].tag)
	})
	return out
}

// PassResult describes one completed pass.
type PassResult struct {
	Stage     Stage       `json:"stage"`
	Tag       apilist.Tag `json:"tag,omitempty"`
	Source    string      `json:"source"`
	Requested int         `json:"requested"`
	Assigned  int         `json:"assigned"`
}

// Summary reports what an executed plan did, pass by pass.
type Summary struct {
	Passes []PassResult `json:"passes"`
}

// record appends a pass result and logs it.
func (s *Summary) record(ctx context.Context, stage Stage, tag apilist.Tag, source string, requested, assigned int) {
	s.Passes = append(s.Passes, PassResult{
		Stage:     stage,
		Tag:       tag,
		Source:    source,
		Requested: requested,
		Assigned:  assigned,
	})

	event := logging.Ctx(ctx).Debug().
		Str("stage", stage.String()).
		Str("source", source).
		Int("requested", requested).
		Int("assigned", assigned)
	if tag != "" {
		event = event.Str("tag", tag.String())
	}
	event.Msg("pass applied")
}

// StageTotal returns the number of entries assigned across all passes of
// the given stage. For the CSV stage the total counts applied rows.
func (s *Summary) StageTotal(stage Stage) int {
	total := 0
	for _, pass := range s.Passes {
		if pass.Stage == stage {
			total += pass.Assigned
		}
	}
	return total
}

// Total returns the number of assignments made across every stage.
func (s *Summary) Total() int {
	total := 0
	for _, pass := range s.Passes {
		total += pass.Assigned
	}
	return total
}
