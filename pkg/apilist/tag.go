package apilist

import "sort"

// Tag represents an access-list category assigned to an entry.
type Tag string

// String returns the string representation of a Tag.
func (tag Tag) String() string {
	return string(tag)
}

// Tags for the default access-list vocabulary.
const (
	// TagWhitelist marks members that stay accessible without restriction.
	TagWhitelist Tag = "whitelist" // public API surface and exemptions

	// TagGreylist marks members accessible with a runtime warning.
	TagGreylist Tag = "greylist"

	// TagGreylistMaxO restricts access to apps targeting O or older.
	TagGreylistMaxO Tag = "greylist-max-o"

	// TagGreylistMaxP restricts access to apps targeting P or older.
	TagGreylistMaxP Tag = "greylist-max-p"

	// TagBlacklist marks members that are never accessible.
	TagBlacklist Tag = "blacklist" // the catch-all, most restrictive category
)

// TagSet is the set of tags assigned to a single entry.
type TagSet map[Tag]struct{}

// NewTagSet creates a TagSet containing the given tags.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts a tag into the set. Adding a tag already present is a no-op.
func (s TagSet) Add(tag Tag) {
	s[tag] = struct{}{}
}

// Has reports whether the set contains the given tag.
func (s TagSet) Has(tag Tag) bool {
	_, ok := s[tag]
	return ok
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	return len(s)
}

// Empty reports whether the set holds no tags.
func (s TagSet) Empty() bool {
	return len(s) == 0
}

// List returns the tags sorted lexicographically.
func (s TagSet) List() []Tag {
	tags := make([]Tag, 0, len(s))
	for t := range s {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// Clone returns an independent copy of the set.
func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}
