package config

import "runtime"

// Settings holds the tunables that flow through the koanf-layered
// resolution pipeline: built-in defaults, then SCRY_* env vars, then
// explicit CLI flags.
type Settings struct {
	BuffSize int
	Workers  int
	Verbose  bool
	Quiet    bool
}

// DefaultSettings returns the built-in baseline, used as the lowest-priority
// layer in Resolve.
func DefaultSettings() *Settings {
	return &Settings{
		BuffSize: DefaultChunkSize,
		Workers:  runtime.NumCPU(),
		Verbose:  false,
		Quiet:    false,
	}
}
