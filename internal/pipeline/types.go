// Package pipeline defines the data types shared across scry's command
// layer and its path-extraction / schema-summary engines: exit codes and
// the structured error type used to carry them back to main.
//
// This package has zero external dependencies -- only stdlib types.
package pipeline

// ExitCode represents the process exit code returned by the scry CLI.
type ExitCode int

const (
	// ExitSuccess indicates the requested value or schema was produced.
	ExitSuccess ExitCode = 0

	// ExitError indicates a fatal error: bad input, bad path, I/O failure,
	// or malformed JSON.
	ExitError ExitCode = 1

	// ExitNotFound indicates the path was well-formed but the document was
	// exhausted before it was satisfied.
	ExitNotFound ExitCode = 4
)

// Mode selects what scry does with the resolved input.
type Mode string

const (
	// ModeExtract returns the single value located at a compiled path.
	ModeExtract Mode = "extract"

	// ModeSummarize reduces the document to a type-only schema.
	ModeSummarize Mode = "summarize"
)
