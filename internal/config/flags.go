package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// DefaultChunkSize is the default streaming reader chunk size when
// --buffsize is not specified.
const DefaultChunkSize = 1 << 20 // 1 MiB

// FlagValues collects all parsed global flag values from the CLI. This
// struct is populated by BindFlags and passed to the dispatcher/summarizer.
type FlagValues struct {
	Data      string
	File      string
	Path      string
	Streaming bool
	Unionize  bool
	BuffSize  int
	Workers   int

	Verbose bool
	Quiet   bool
}

// BindFlags registers all global persistent flags on the given Cobra
// command and returns a FlagValues pointer populated when the command is
// executed. Callers should access the returned struct after flag parsing.
func BindFlags(cmd *cobra.Command) *FlagValues {
	fv := &FlagValues{}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&fv.Data, "data", "d", "", "supply input inline as a JSON string")
	pf.StringVarP(&fv.File, "file", "f", "", "supply input as a file path")
	pf.StringVarP(&fv.Path, "path", "p", "", "dotted/bracketed path to extract; omit to summarize")
	pf.BoolVarP(&fv.Streaming, "streaming", "s", false, "force the fallback streaming navigator")
	pf.BoolVarP(&fv.Unionize, "unionize", "u", false, "union top-level arrays during summarization")
	pf.IntVarP(&fv.BuffSize, "buffsize", "b", DefaultChunkSize, "override the streaming reader chunk size, in bytes")
	pf.IntVar(&fv.Workers, "workers", runtime.NumCPU(), "worker count for NDJSON summarization")
	pf.BoolVarP(&fv.Verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&fv.Quiet, "quiet", "q", false, "suppress all output except errors")

	return fv
}

// ValidateFlags resolves SCRY_* environment variable fallbacks for flags not
// explicitly set on the command line (via Resolve's defaults-then-env-
// then-flags layering), then checks the result for correctness and mutual
// exclusion. Call this from PersistentPreRunE after Cobra has parsed flags.
func ValidateFlags(fv *FlagValues, cmd *cobra.Command) error {
	resolved, err := Resolve(changedFlags(fv, cmd))
	if err != nil {
		return err
	}
	fv.BuffSize = resolved.BuffSize
	fv.Workers = resolved.Workers
	fv.Verbose = resolved.Verbose
	fv.Quiet = resolved.Quiet

	if fv.Verbose && fv.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}
	if fv.Data != "" && fv.File != "" {
		return fmt.Errorf("--data and --file are mutually exclusive")
	}
	if fv.BuffSize <= 0 {
		return fmt.Errorf("--buffsize: must be positive, got %d", fv.BuffSize)
	}
	if fv.File != "" {
		if _, err := os.Stat(fv.File); err != nil {
			return fmt.Errorf("--file: %w", err)
		}
	}

	return nil
}

// changedFlags returns only the flag values the user explicitly set on the
// command line, keyed for Resolve's CLI-flags layer. A flag left at its
// cobra default is omitted so it doesn't shadow an env override.
func changedFlags(fv *FlagValues, cmd *cobra.Command) map[string]any {
	m := make(map[string]any)
	if cmd.Flags().Changed("buffsize") {
		m["buffsize"] = fv.BuffSize
	}
	if cmd.Flags().Changed("workers") {
		m["workers"] = fv.Workers
	}
	if cmd.Flags().Changed("verbose") {
		m["verbose"] = fv.Verbose
	}
	if cmd.Flags().Changed("quiet") {
		m["quiet"] = fv.Quiet
	}
	return m
}
