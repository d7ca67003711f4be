// Package merge applies classification passes to a universe of API
// entries. A Merger binds one tag registry to one universe and offers the
// three pass kinds: strict list assignment, lenient list assignment, and
// bulk CSV merging. The Plan type sequences passes so that every strict
// pass runs before any lenient pass and the fallback assignment always
// runs last.
package merge

import (
	"github.com/agentstation/apiflags/pkg/apilist"
)

// Source labels for passes that are not backed by an input file.
const (
	// SourceSerialization labels the automatic serialization pass.
	SourceSerialization = "<serialization>"

	// SourceFallback labels the final catch-all assignment.
	SourceFallback = "<unassigned>"

	// SourceUnknown labels passes whose origin was not recorded.
	SourceUnknown = "<unknown>"
)

// Merger applies tag assignment passes to a universe, validating every
// input against the registry and the universe before mutating anything.
type Merger struct {
	registry *apilist.Registry
	universe *apilist.Universe
}

// NewMerger creates a merger bound to the given registry and universe.
func NewMerger(registry *apilist.Registry, universe *apilist.Universe) *Merger {
	return &Merger{
		registry: registry,
		universe: universe,
	}
}

// Universe returns the universe the merger mutates.
func (m *Merger) Universe() *apilist.Universe {
	return m.universe
}

// Registry returns the registry the merger validates against.
func (m *Merger) Registry() *apilist.Registry {
	return m.registry
}

// AssignStrict unions the tag into every listed entry. The tag must be a
// registry member and every entry must exist in the universe; any failure
// aborts the pass before the first mutation. Returns the number of entries
// assigned.
func (m *Merger) AssignStrict(tag apilist.Tag, entries []apilist.Entry, source string) (int, error) {
	if err := m.registry.Validate([]apilist.Tag{tag}, source); err != nil {
		return 0, err
	}
	if err := m.universe.AssignAll(tag, entries, source); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// AssignLenient unions the tag into the subset of listed entries that
// exist in the universe and carry no tags yet. Entries outside the
// universe and entries that already hold any tag are dropped silently,
// including entries that already hold this same tag. The tag itself is
// still validated: an unknown tag fails the pass. Returns the number of
// entries assigned after reduction.
func (m *Merger) AssignLenient(tag apilist.Tag, entries []apilist.Entry, source string) (int, error) {
	if err := m.registry.Validate([]apilist.Tag{tag}, source); err != nil {
		return 0, err
	}
	subset := m.universe.UnassignedSubset(entries)
	if err := m.universe.AssignAll(tag, subset, source); err != nil {
		return 0, err
	}
	return len(subset), nil
}

// MergeCSV applies a batch of parsed CSV rows. All row entries and the
// union of all row tags are validated before any row is applied, so one
// bad record rejects the whole batch with the universe unchanged. A row
// without tags is legal and assigns nothing. Returns the number of rows
// applied.
func (m *Merger) MergeCSV(rows []apilist.Row, source string) (int, error) {
	entries := make([]apilist.Entry, len(rows))
	tagSet := apilist.NewTagSet()
	for i, row := range rows {
		entries[i] = row.Entry
		for _, t := range row.Tags {
			tagSet.Add(t)
		}
	}

	if err := m.universe.CheckKnown(entries, source); err != nil {
		return 0, err
	}
	if err := m.registry.Validate(tagSet.List(), source); err != nil {
		return 0, err
	}

	for _, row := range rows {
		for _, t := range row.Tags {
			if err := m.universe.Assign(row.Entry, t, source); err != nil {
				return 0, err
			}
		}
	}
	return len(rows), nil
}
