package apilist

import (
	"strings"

	"github.com/agentstation/apiflags/pkg/constants"
)

// Row is one parsed CSV record: an entry plus the tags a source wants to
// assign to it. A row with no tags is legal and assigns nothing.
type Row struct {
	Entry Entry
	Tags  []Tag
}

// ParseRow splits a CSV line "entry,tag1,tag2,..." into a Row. The line is
// not validated against any registry or universe; that happens at merge
// time.
func ParseRow(line string) Row {
	fields := strings.Split(line, constants.FieldSeparator)
	row := Row{Entry: Entry(fields[0])}
	if len(fields) > 1 {
		row.Tags = make([]Tag, len(fields)-1)
		for i, f := range fields[1:] {
			row.Tags[i] = Tag(f)
		}
	}
	return row
}

// Encode serializes the universe as CSV lines, one per entry, ordered by
// entry identifier. Tags within a line are sorted lexicographically. An
// entry with no tags encodes as the bare identifier. Equal universes encode
// to byte-identical output.
func Encode(u *Universe) []string {
	entries := u.Entries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		tags, _ := u.Tags(e)
		fields := make([]string, 0, len(tags)+1)
		fields = append(fields, e.String())
		for _, t := range tags {
			fields = append(fields, t.String())
		}
		lines = append(lines, strings.Join(fields, constants.FieldSeparator))
	}
	return lines
}
