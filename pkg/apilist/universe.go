// Package apilist provides the core data model for API access-list
// generation: entries, tags, the tag registry, and the universe of
// classifiable members.
//
// A Universe is built once from two disjoint baseline lists (public and
// private members) and after that its key set never changes. Classification
// passes only add tags to entries; removing an entry or a tag is not
// possible. All iteration helpers return entries in sorted order so that
// runs over the same inputs produce identical results.
//
// Example usage:
//
//	registry := apilist.DefaultRegistry()
//	universe, err := apilist.NewUniverse(public, private, registry.Baseline())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Tag the serialization surface
//	matches := universe.Filter(apilist.IsSerialization)
//	_ = universe.AssignAll(registry.Baseline(), matches, "serialization")
//
//	// Emit the flags file
//	lines := apilist.Encode(universe)
package apilist

import (
	"sort"
	"sync"

	"github.com/agentstation/apiflags/pkg/errors"
)

// Universe holds every classifiable entry and the tags assigned to it so
// far. Construction fixes the key set; all later mutation is limited to
// growing per-entry tag sets.
type Universe struct {
	mu      sync.RWMutex
	entries map[Entry]TagSet
}

// NewUniverse builds a universe from the public and private baseline lists.
// Every public entry starts with the baseline tag, every private entry with
// an empty tag set. Duplicate entries within one list collapse. The two
// lists must be disjoint; any shared entries abort construction with an
// OverlapError naming all of them.
func NewUniverse(public, private []Entry, baseline Tag) (*Universe, error) {
	entries := make(map[Entry]TagSet, len(public)+len(private))
	for _, e := range public {
		if _, ok := entries[e]; !ok {
			entries[e] = NewTagSet(baseline)
		}
	}

	var overlap []string
	for _, e := range private {
		if _, ok := entries[e]; ok {
			overlap = append(overlap, e.String())
			continue
		}
		entries[e] = NewTagSet()
	}
	if len(overlap) > 0 {
		return nil, errors.NewOverlapError("public", "private", dedupe(overlap))
	}

	return &Universe{entries: entries}, nil
}

// Len returns the number of entries in the universe.
func (u *Universe) Len() int {
	u.mu.RLock()
	length := len(u.entries)
	u.mu.RUnlock()
	return length
}

// Has reports whether the entry exists in the universe.
func (u *Universe) Has(e Entry) bool {
	u.mu.RLock()
	_, ok := u.entries[e]
	u.mu.RUnlock()
	return ok
}

// Tags returns a sorted copy of the tags currently assigned to the entry.
// The second return value reports whether the entry exists.
func (u *Universe) Tags(e Entry) ([]Tag, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	set, ok := u.entries[e]
	if !ok {
		return nil, false
	}
	return set.List(), true
}

// HasTag reports whether the entry exists and carries the given tag.
func (u *Universe) HasTag(e Entry, tag Tag) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()

	set, ok := u.entries[e]
	return ok && set.Has(tag)
}

// Entries returns all entries sorted lexicographically.
func (u *Universe) Entries() []Entry {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.sortedKeys()
}

// CheckKnown verifies that every listed entry exists in the universe. It
// returns an UnknownEntryError naming the source and all missing entries,
// or nil when every entry is known. The universe is never modified.
func (u *Universe) CheckKnown(entries []Entry, source string) error {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var unknown []string
	for _, e := range entries {
		if _, ok := u.entries[e]; !ok {
			unknown = append(unknown, e.String())
		}
	}
	if len(unknown) > 0 {
		return errors.NewUnknownEntryError(source, dedupe(unknown))
	}
	return nil
}

// Assign unions the tag into the entry's tag set. Assigning a tag the entry
// already carries is a no-op. Unknown entries fail with an
// UnknownEntryError.
func (u *Universe) Assign(e Entry, tag Tag, source string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	set, ok := u.entries[e]
	if !ok {
		return errors.NewUnknownEntryError(source, []string{e.String()})
	}
	set.Add(tag)
	return nil
}

// AssignAll unions the tag into the tag set of every listed entry. All
// entries are validated before any of them is modified, so a failing call
// leaves the universe unchanged.
func (u *Universe) AssignAll(tag Tag, entries []Entry, source string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	var unknown []string
	for _, e := range entries {
		if _, ok := u.entries[e]; !ok {
			unknown = append(unknown, e.String())
		}
	}
	if len(unknown) > 0 {
		return errors.NewUnknownEntryError(source, dedupe(unknown))
	}

	for _, e := range entries {
		u.entries[e].Add(tag)
	}
	return nil
}

// Filter returns the entries matching the predicate, sorted
// lexicographically.
func (u *Universe) Filter(pred func(Entry) bool) []Entry {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var matched []Entry
	for e := range u.entries {
		if pred(e) {
			matched = append(matched, e)
		}
	}
	sortEntries(matched)
	return matched
}

// Unassigned returns the entries whose tag set is still empty, sorted
// lexicographically.
func (u *Universe) Unassigned() []Entry {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var unassigned []Entry
	for e, set := range u.entries {
		if set.Empty() {
			unassigned = append(unassigned, e)
		}
	}
	sortEntries(unassigned)
	return unassigned
}

// UnassignedSubset reduces the given entries to those that exist in the
// universe and currently carry no tags. Unknown entries and entries that
// already hold any tag are dropped silently. The result is sorted and
// duplicate-free.
func (u *Universe) UnassignedSubset(entries []Entry) []Entry {
	u.mu.RLock()
	defer u.mu.RUnlock()

	seen := make(map[Entry]struct{}, len(entries))
	var subset []Entry
	for _, e := range entries {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		if set, ok := u.entries[e]; ok && set.Empty() {
			subset = append(subset, e)
		}
	}
	sortEntries(subset)
	return subset
}

// CountByTag returns the number of entries carrying each registry tag.
func (u *Universe) CountByTag() map[Tag]int {
	u.mu.RLock()
	defer u.mu.RUnlock()

	counts := make(map[Tag]int)
	for _, set := range u.entries {
		for t := range set {
			counts[t]++
		}
	}
	return counts
}

// sortedKeys returns the entry keys in sorted order. Callers must hold at
// least a read lock.
func (u *Universe) sortedKeys() []Entry {
	keys := make([]Entry, 0, len(u.entries))
	for e := range u.entries {
		keys = append(keys, e)
	}
	sortEntries(keys)
	return keys
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i] < entries[j] })
}

// dedupe collapses duplicate strings, preserving input order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
