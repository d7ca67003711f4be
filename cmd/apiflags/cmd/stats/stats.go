// Package stats implements the stats command, which summarizes the tag
// distribution of a generated flag file.
package stats

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/agentstation/apiflags/internal/appcontext"
	"github.com/agentstation/apiflags/internal/cmdutil/output"
	"github.com/agentstation/apiflags/internal/listfile"
	"github.com/agentstation/apiflags/pkg/apilist"
)

// tagStat is one line of the stats report.
type tagStat struct {
	Tag     string `json:"tag"`
	Members int    `json:"members"`
	Share   string `json:"share"`
}

// NewCommand creates the stats command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "stats <flags-file>",
		GroupID: "management",
		Short:   "Summarize the tag distribution of a flag file",
		Long: `Stats reads a generated flag file and prints how many members carry
each tag. Registry tags are listed first in registry order, followed
by any other tags found in the file. A member carrying several tags is
counted once per tag, so shares may add up to more than 100%.`,
		Example: `  apiflags stats flags.csv
  apiflags stats flags.csv.gz -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0])
		},
	}
}

func run(cmd *cobra.Command, app appcontext.Interface, path string) error {
	rows, err := listfile.ReadRows(path)
	if err != nil {
		return err
	}

	registry, err := app.Registry()
	if err != nil {
		return err
	}

	counts := make(map[apilist.Tag]int)
	untagged := 0
	for _, row := range rows {
		if len(row.Tags) == 0 {
			untagged++
			continue
		}
		for _, tag := range row.Tags {
			counts[tag]++
		}
	}

	stats := make([]tagStat, 0, len(counts)+2)
	for _, tag := range orderedTags(registry, counts) {
		stats = append(stats, newTagStat(tag.String(), counts[tag], len(rows)))
	}
	if untagged > 0 {
		stats = append(stats, newTagStat("(untagged)", untagged, len(rows)))
	}
	stats = append(stats, newTagStat("total", len(rows), len(rows)))

	format := output.DetectFormat(app.OutputFormat())
	return output.Write(cmd.OutOrStdout(), format, stats)
}

// newTagStat builds one report line, computing the share of total members.
func newTagStat(tag string, members, total int) tagStat {
	share := "0.0%"
	if total > 0 {
		share = fmt.Sprintf("%.1f%%", float64(members)/float64(total)*100)
	}
	return tagStat{Tag: tag, Members: members, Share: share}
}

// orderedTags returns registry tags in registry order followed by any
// other counted tags sorted by name. Registry tags always appear, even
// with a zero count.
func orderedTags(registry *apilist.Registry, counts map[apilist.Tag]int) []apilist.Tag {
	tags := registry.Tags()

	var extra []apilist.Tag
	for tag := range counts {
		if !registry.Has(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	return append(tags, extra...)
}
