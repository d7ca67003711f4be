package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/apiflags/cmd/apiflags/cmd/generate"
	"github.com/agentstation/apiflags/cmd/apiflags/cmd/stats"
	"github.com/agentstation/apiflags/cmd/apiflags/cmd/validate"
)

// NewGenerateCommand creates the generate command with app dependencies.
func (a *App) NewGenerateCommand() *cobra.Command {
	return generate.NewCommand(a)
}

// NewValidateCommand creates the validate command with app dependencies.
func (a *App) NewValidateCommand() *cobra.Command {
	return validate.NewCommand(a)
}

// NewStatsCommand creates the stats command with app dependencies.
func (a *App) NewStatsCommand() *cobra.Command {
	return stats.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("apiflags %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
