// Package validate implements the validate command, which runs the
// classification pipeline without writing output and reports the result
// of every pass.
package validate

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/apiflags"
	"github.com/agentstation/apiflags/internal/appcontext"
	"github.com/agentstation/apiflags/internal/cmdutil"
	"github.com/agentstation/apiflags/internal/cmdutil/output"
)

// NewCommand creates the validate command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		inputFlags *cmdutil.InputFlags
		tagFlags   *cmdutil.TagFlags
	)

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "management",
		Short:   "Check membership lists and flag inputs for conflicts",
		Long: `Validate runs the full classification pipeline in dry-run mode. It
accepts the same inputs as generate, checks every pass for unknown
members, unknown tags and conflicting assignments, and reports what
each pass did. No output file is written.

The exit status is zero only when every pass applied cleanly.`,
		Example: `  apiflags validate --public public.txt --private private.txt
  apiflags validate --public public.txt --private private.txt --csv flags.csv
  apiflags validate --public public.txt --private private.txt --greylist extra.txt -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := inputFlags.Options()
			opts = append(opts, tagFlags.Options()...)
			opts = append(opts, apiflags.WithDryRun(true))

			pipeline, err := app.Pipeline(opts...)
			if err != nil {
				return err
			}

			result, err := pipeline.Run(cmd.Context())
			if err != nil {
				return err
			}

			return printPasses(cmd, app, result)
		},
	}

	inputFlags = cmdutil.AddInputFlags(cmd)

	// Per-tag flags are derived from the configured registry, matching
	// the flag surface of generate.
	registry, err := app.Registry()
	if err != nil {
		cmd.RunE = func(*cobra.Command, []string) error { return err }
		return cmd
	}
	tagFlags = cmdutil.AddTagFlags(cmd, registry)

	return cmd
}

// printPasses renders the per-pass report in the configured output format.
func printPasses(cmd *cobra.Command, app appcontext.Interface, result *apiflags.Result) error {
	format := output.DetectFormat(app.OutputFormat())
	w := cmd.OutOrStdout()

	if format != output.FormatTable && format != output.FormatWide {
		return output.Write(w, format, result)
	}

	data := output.Data{
		Headers: []string{"STAGE", "TAG", "SOURCE", "REQUESTED", "ASSIGNED"},
		ColumnAlignment: []output.Align{
			output.AlignLeft,
			output.AlignLeft,
			output.AlignLeft,
			output.AlignRight,
			output.AlignRight,
		},
	}
	for _, pass := range result.Passes {
		data.Rows = append(data.Rows, []string{
			pass.Stage.String(),
			pass.Tag.String(),
			pass.Source,
			strconv.Itoa(pass.Requested),
			strconv.Itoa(pass.Assigned),
		})
	}

	if err := output.Write(w, format, data); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "OK: %s\n", result.Summary())
	return err
}
