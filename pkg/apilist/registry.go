package apilist

import (
	"github.com/agentstation/apiflags/pkg/errors"
)

// Registry is the closed, ordered set of tags a run may assign. Two member
// tags play fixed roles: the baseline tag is granted to every public entry
// when the universe is built, and the fallback tag is assigned to whatever
// remains untagged at the end of a run.
//
// The registry is immutable after construction. Validation never mutates
// any state and can be called concurrently.
type Registry struct {
	tags     []Tag
	members  map[Tag]struct{}
	baseline Tag
	fallback Tag
}

// DefaultRegistry returns the standard access-list vocabulary with
// whitelist as the baseline and blacklist as the fallback.
func DefaultRegistry() *Registry {
	r, err := NewRegistry([]Tag{
		TagWhitelist,
		TagGreylist,
		TagGreylistMaxO,
		TagGreylistMaxP,
		TagBlacklist,
	}, TagWhitelist, TagBlacklist)
	if err != nil {
		// The default vocabulary is well-formed by construction.
		panic(err)
	}
	return r
}

// NewRegistry creates a registry from an ordered tag list and its two role
// tags. The list must be non-empty and duplicate-free, and both roles must
// be members.
func NewRegistry(tags []Tag, baseline, fallback Tag) (*Registry, error) {
	if len(tags) == 0 {
		return nil, errors.NewValidationError("tags", tags, "registry requires at least one tag")
	}

	members := make(map[Tag]struct{}, len(tags))
	ordered := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if t == "" {
			return nil, errors.NewValidationError("tags", t, "tag cannot be empty")
		}
		if _, dup := members[t]; dup {
			return nil, errors.NewValidationError("tags", t, "duplicate tag "+t.String())
		}
		members[t] = struct{}{}
		ordered = append(ordered, t)
	}

	if _, ok := members[baseline]; !ok {
		return nil, errors.NewValidationError("baseline", baseline, "baseline tag "+baseline.String()+" is not a registry member")
	}
	if _, ok := members[fallback]; !ok {
		return nil, errors.NewValidationError("fallback", fallback, "fallback tag "+fallback.String()+" is not a registry member")
	}

	return &Registry{
		tags:     ordered,
		members:  members,
		baseline: baseline,
		fallback: fallback,
	}, nil
}

// Tags returns the member tags in registry order.
func (r *Registry) Tags() []Tag {
	out := make([]Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// Len returns the number of member tags.
func (r *Registry) Len() int {
	return len(r.tags)
}

// Baseline returns the tag granted to public entries at universe
// construction and to auto-classified entries.
func (r *Registry) Baseline() Tag {
	return r.baseline
}

// Fallback returns the catch-all tag assigned to entries left untagged at
// the end of a run.
func (r *Registry) Fallback() Tag {
	return r.fallback
}

// Has reports whether the tag is a registry member.
func (r *Registry) Has(tag Tag) bool {
	_, ok := r.members[tag]
	return ok
}

// Validate checks every tag against the registry. It returns an
// UnknownTagError naming the source and all offending values, or nil when
// every tag is a member.
func (r *Registry) Validate(tags []Tag, source string) error {
	var unknown []string
	for _, t := range tags {
		if _, ok := r.members[t]; !ok {
			unknown = append(unknown, t.String())
		}
	}
	if len(unknown) > 0 {
		return errors.NewUnknownTagError(source, unknown)
	}
	return nil
}
