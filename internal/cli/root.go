// Package cli implements the Cobra command hierarchy for the scry CLI tool.
// The root command defined here is the entry point for all subcommands and
// handles cross-cutting concerns like logging initialization and error handling.
package cli

import (
	"errors"
	"log/slog"

	"github.com/scrycli/scry/internal/config"
	"github.com/scrycli/scry/internal/pipeline"
	"github.com/spf13/cobra"
)

// flagValues holds the parsed global flag values, populated by config.BindFlags
// during command initialization and validated in PersistentPreRunE.
var flagValues *config.FlagValues

var rootCmd = &cobra.Command{
	Use:   "scry",
	Short: "Extract and summarize JSON without loading it all into memory.",
	Long: `Scry pulls a single value out of a JSON document by path, or reduces
a document (or a stream of NDJSON documents) to a type-only schema.

Small inputs are parsed in memory via a SIMD JSON engine; files of
4 GiB or more, or any input when --streaming is given, fall back to a
token-at-a-time navigator that never builds an in-memory tree of the
document.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Validate all global flags.
		if err := config.ValidateFlags(flagValues, cmd); err != nil {
			return err
		}

		// Initialize logging with validated flag values.
		level := config.ResolveLogLevel(flagValues.Verbose, flagValues.Quiet)
		format := config.ResolveLogFormat()
		config.SetupLogging(level, format)

		slog.Debug("logging initialized", "level", level, "format", format)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return pipeline.Run(cmd.Context(), flagValues, cmd.OutOrStdout())
	},
}

func init() {
	flagValues = config.BindFlags(rootCmd)
}

// Execute runs the root command and returns an appropriate exit code.
// If the error is a *pipeline.ScryError, its Code() is used.
// Generic errors return ExitError (1). Nil returns ExitSuccess (0).
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		return extractExitCode(err)
	}
	return int(pipeline.ExitSuccess)
}

// extractExitCode determines the process exit code from an error.
// If the error is a *pipeline.ScryError, its Code() is used.
// Otherwise, ExitError (1) is returned for any non-nil error.
func extractExitCode(err error) int {
	if err == nil {
		return int(pipeline.ExitSuccess)
	}
	var scryErr *pipeline.ScryError
	if errors.As(err, &scryErr) {
		return scryErr.Code()
	}
	return int(pipeline.ExitError)
}

// RootCmd returns the root cobra.Command for use in testing and subcommand registration.
func RootCmd() *cobra.Command {
	return rootCmd
}

// GlobalFlags returns the parsed global flag values. This is available after
// PersistentPreRunE has run.
func GlobalFlags() *config.FlagValues {
	return flagValues
}
