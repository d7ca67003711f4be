// Package cmdutil provides shared flags and configuration utilities for apiflags commands.
package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/apiflags"
	"github.com/agentstation/apiflags/pkg/apilist"
)

// InputFlags holds the pipeline input flags shared by generate and validate.
type InputFlags struct {
	Public  string
	Private string
	CSV     []string
}

// AddInputFlags adds the shared pipeline input flags to a command.
func AddInputFlags(cmd *cobra.Command) *InputFlags {
	flags := &InputFlags{}

	cmd.Flags().StringVar(&flags.Public, "public", "",
		"File listing members of the public API surface (required)")
	cmd.Flags().StringVar(&flags.Private, "private", "",
		"File listing members outside the public API surface (required)")
	cmd.Flags().StringSliceVar(&flags.CSV, "csv", nil,
		"Existing flag files to merge before list passes")

	_ = cmd.MarkFlagRequired("public")
	_ = cmd.MarkFlagRequired("private")

	return flags
}

// Options converts the parsed input flags into pipeline options.
func (f *InputFlags) Options() []apiflags.Option {
	opts := []apiflags.Option{
		apiflags.WithPublicList(f.Public),
		apiflags.WithPrivateList(f.Private),
	}
	if len(f.CSV) > 0 {
		opts = append(opts, apiflags.WithCSV(f.CSV...))
	}
	return opts
}

// TagFlags holds the per-tag list file flags. One pair of flags is
// registered for every tag in the registry, so the flag surface follows
// the configured tag vocabulary.
type TagFlags struct {
	order   []apilist.Tag
	strict  map[apilist.Tag]*[]string
	lenient map[apilist.Tag]*[]string
}

// AddTagFlags registers a --<tag> flag and a --<tag>-ignore-conflicts
// flag for every registry tag and returns the collected values.
func AddTagFlags(cmd *cobra.Command, registry *apilist.Registry) *TagFlags {
	flags := &TagFlags{
		order:   registry.Tags(),
		strict:  make(map[apilist.Tag]*[]string),
		lenient: make(map[apilist.Tag]*[]string),
	}

	for _, tag := range flags.order {
		flags.strict[tag] = cmd.Flags().StringSlice(tag.String(),
			nil, fmt.Sprintf("List files whose members are assigned %s", tag))
		flags.lenient[tag] = cmd.Flags().StringSlice(tag.String()+"-ignore-conflicts",
			nil, fmt.Sprintf("Like --%s, but skips members already assigned elsewhere", tag))
	}

	return flags
}

// Options converts the parsed per-tag flags into pipeline options,
// in registry tag order.
func (f *TagFlags) Options() []apiflags.Option {
	var opts []apiflags.Option
	for _, tag := range f.order {
		if paths := *f.strict[tag]; len(paths) > 0 {
			opts = append(opts, apiflags.WithStrict(tag, paths...))
		}
	}
	for _, tag := range f.order {
		if paths := *f.lenient[tag]; len(paths) > 0 {
			opts = append(opts, apiflags.WithLenient(tag, paths...))
		}
	}
	return opts
}
