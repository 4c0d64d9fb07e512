// Package cli provides the command-line interface for workdigest.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"workdigest/internal/cli/commands"
	"workdigest/internal/cli/plugins"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	// Check if the first argument might be a plugin command
	if len(os.Args) > 1 {
		potentialCommand := os.Args[1]
		// Skip flags (start with -)
		if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
			if !isBuiltinCommand(rootCmd, potentialCommand) {
				// Try to find and execute a plugin
				if pluginPath, err := plugins.FindPlugin(potentialCommand); err == nil {
					return plugins.Execute(pluginPath, os.Args[2:])
				}
				// Plugin not found - will fall through to Cobra which will show error
			}
		}
	}

	if err := rootCmd.Execute(); err != nil {
		// Check if this was an unknown command that could be a plugin
		if len(os.Args) > 1 {
			potentialCommand := os.Args[1]
			if len(potentialCommand) > 0 && potentialCommand[0] != '-' {
				if !isBuiltinCommand(rootCmd, potentialCommand) {
					_, _ = fmt.Fprintln(os.Stderr, plugins.FormatNotFoundError(potentialCommand))
					return 2
				}
			}
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// isBuiltinCommand checks if a command name is a built-in cobra command.
func isBuiltinCommand(rootCmd *cobra.Command, name string) bool {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == name || cmd.HasAlias(name) {
			return true
		}
	}
	// Also check for special commands like help and completion
	return name == "help" || name == "completion"
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workdigest",
		Short: "Turn pasted work-item rows into a grouped digest",
		Long: `workdigest ingests tab-delimited work-item rows, pasted from a
spreadsheet, and produces a copy-ready digest grouped by category.

It recognizes:
  - Meetings (회의), rendered with their extracted time
  - QA/deployment items (JIRA, QMS), rendered with the live date
  - Personal items, rendered with the target date
  - Untyped rows, appended bare at the end

Dates in slash/dash/dot or Korean 년/월/일 notation are normalized to
a compact M/D form; 오전/오후 and 24-hour clocks are preserved as
display text.

PLUGINS:
  workdigest supports plugins for extended functionality. Plugins are
  standalone binaries named workdigest-<command> that are automatically
  discovered and invoked.

  Plugin locations (searched in order):
    1. Same directory as the workdigest binary
    2. ~/.workdigest/plugins/
    3. Anywhere in PATH`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewDigestCommand())
	rootCmd.AddCommand(commands.NewPreviewCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
