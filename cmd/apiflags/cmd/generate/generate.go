// Package generate implements the generate command, which classifies an
// API universe and writes the resulting flag file.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/apiflags"
	"github.com/agentstation/apiflags/internal/appcontext"
	"github.com/agentstation/apiflags/internal/cmdutil"
	"github.com/agentstation/apiflags/internal/cmdutil/output"
	"github.com/agentstation/apiflags/pkg/apilist"
)

// NewCommand creates the generate command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		inputFlags *cmdutil.InputFlags
		tagFlags   *cmdutil.TagFlags
		outPath    string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		GroupID: "core",
		Short:   "Generate a flag file from API membership lists",
		Long: `Generate classifies every member of the API universe and writes the
result as a flag file, one "signature,tag,..." row per member sorted
by signature.

Classification runs as a fixed pipeline of passes:

1. Serialization API members are assigned the baseline tag
2. Existing flag files given with --csv are merged
3. Per-tag list files are applied, conflict-checked
4. Per-tag *-ignore-conflicts list files claim whatever is still free
5. Anything left unassigned falls back to the registry fallback tag

Any member named by an input that is not part of the universe, and any
conflicting assignment, aborts the run before output is written.`,
		Example: `  apiflags generate --public public.txt --private private.txt --output flags.csv
  apiflags generate --public public.txt --private private.txt \
      --greylist extra.txt --blacklist-ignore-conflicts vendor.txt --output flags.csv
  apiflags generate --public public.txt --private private.txt --csv prev.csv --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := inputFlags.Options()
			opts = append(opts, tagFlags.Options()...)
			if outPath != "" {
				opts = append(opts, apiflags.WithOutput(outPath))
			}
			if dryRun {
				opts = append(opts, apiflags.WithDryRun(true))
			}

			pipeline, err := app.Pipeline(opts...)
			if err != nil {
				return err
			}

			result, err := pipeline.Run(cmd.Context())
			if err != nil {
				return err
			}

			return printResult(cmd, app, pipeline.Registry(), result)
		},
	}

	inputFlags = cmdutil.AddInputFlags(cmd)
	cmd.Flags().StringVar(&outPath, "output", "", "Path of the flag file to write")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Classify without writing the output file")

	// Per-tag flags are derived from the configured registry. When the
	// registry cannot be loaded the command still builds so that help
	// keeps working, and the load error surfaces at run time.
	registry, err := app.Registry()
	if err != nil {
		cmd.RunE = func(*cobra.Command, []string) error { return err }
		return cmd
	}
	tagFlags = cmdutil.AddTagFlags(cmd, registry)

	return cmd
}

// printResult renders the run result in the configured output format.
// Table output shows per-tag member counts; json and yaml emit the full
// result including per-pass detail.
func printResult(cmd *cobra.Command, app appcontext.Interface, registry *apilist.Registry, result *apiflags.Result) error {
	format := output.DetectFormat(app.OutputFormat())
	w := cmd.OutOrStdout()

	if format != output.FormatTable && format != output.FormatWide {
		return output.Write(w, format, result)
	}

	data := output.Data{
		Headers:         []string{"TAG", "MEMBERS"},
		ColumnAlignment: []output.Align{output.AlignLeft, output.AlignRight},
	}
	for _, tag := range registry.Tags() {
		data.Rows = append(data.Rows, []string{tag.String(), fmt.Sprintf("%d", result.Count(tag))})
	}

	if err := output.Write(w, format, data); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, result.Summary())
	return err
}
