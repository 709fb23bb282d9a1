package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/confmap"
	koanf "github.com/knadh/koanf/v2"
)

// Resolve runs the 3-layer configuration resolution pipeline:
//  1. Built-in defaults
//  2. SCRY_* environment variables
//  3. Explicit CLI flags (highest precedence; cliFlags holds only flags the
//     user actually set, so an unset flag never shadows an env override)
//
// This is a trimmed form of the layered resolution a larger CLI needs for
// profile/config-file precedence: scry has no config files or named
// profiles, so the file layers drop out and only defaults, env, and flags
// remain.
func Resolve(cliFlags map[string]any) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(settingsToFlatMap(DefaultSettings()), "."), nil); err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}

	if env := buildEnvMap(); len(env) > 0 {
		if err := k.Load(confmap.Provider(env, "."), nil); err != nil {
			return nil, fmt.Errorf("loading env overrides: %w", err)
		}
	}

	if len(cliFlags) > 0 {
		if err := k.Load(confmap.Provider(cliFlags, "."), nil); err != nil {
			return nil, fmt.Errorf("loading cli flag overrides: %w", err)
		}
	}

	return &Settings{
		BuffSize: k.Int("buffsize"),
		Workers:  k.Int("workers"),
		Verbose:  k.Bool("verbose"),
		Quiet:    k.Bool("quiet"),
	}, nil
}

// settingsToFlatMap converts a Settings to a flat map for koanf's confmap
// provider.
func settingsToFlatMap(s *Settings) map[string]any {
	return map[string]any{
		"buffsize": s.BuffSize,
		"workers":  s.Workers,
		"verbose":  s.Verbose,
		"quiet":    s.Quiet,
	}
}
