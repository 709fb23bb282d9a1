package config

import (
	"os"
	"strconv"
)

// Environment variable name constants for SCRY_ prefixed overrides.
const (
	// EnvBuffSize overrides the streaming reader chunk size, in bytes.
	EnvBuffSize = "SCRY_BUFFSIZE"
	// EnvWorkers overrides the NDJSON summarization worker count.
	EnvWorkers = "SCRY_WORKERS"
	// EnvVerbose enables debug logging.
	EnvVerbose = "SCRY_VERBOSE"
	// EnvQuiet suppresses all output except errors.
	EnvQuiet = "SCRY_QUIET"
	// EnvDebug is a higher-priority debug switch, checked ahead of --verbose.
	EnvDebug = "SCRY_DEBUG"
	// EnvLogFormat overrides the log output format ("json" or "text").
	EnvLogFormat = "SCRY_LOG_FORMAT"
)

// buildEnvMap reads SCRY_* environment variables and returns a flat map
// suitable for use with a koanf confmap provider. Only non-empty env vars
// that parse successfully are included; invalid values are silently skipped
// so a bad env var does not block the rest of the resolution pipeline.
func buildEnvMap() map[string]any {
	m := make(map[string]any)

	if v := os.Getenv(EnvBuffSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			m["buffsize"] = n
		}
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			m["workers"] = n
		}
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			m["verbose"] = b
		}
	}
	if v := os.Getenv(EnvQuiet); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			m["quiet"] = b
		}
	}

	return m
}
